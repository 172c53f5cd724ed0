package app

import (
	"embed"
	"html/template"
)

// templateFS contains the HTML templates bundled with the binary.
//
//go:embed templates/*
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("base").ParseFS(templateFS, "templates/layout.gohtml", "templates/error.gohtml")
}

type navItem struct {
	Title  string
	Slug   string
	Active bool
}
