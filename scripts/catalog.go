//go:build ignore

package main

import (
	"flag"
	"log"

	"pubguide/internal/content"
	"pubguide/internal/tools/catalog"
)

func main() {
	outPath := flag.String("out", "static/catalog.json", "path to write catalog JSON")
	flag.Parse()

	lib, err := content.Load()
	if err != nil {
		log.Fatalf("load content: %v", err)
	}

	cat, err := catalog.Build(lib)
	if err != nil {
		log.Fatalf("build catalog: %v", err)
	}

	if err := cat.WriteFile(*outPath, catalog.FormatJSON); err != nil {
		log.Fatalf("write catalog: %v", err)
	}

	log.Printf("wrote catalog to %s (%d registries, %d topics, %d pages)", *outPath, cat.Totals.Registries, cat.Totals.Topics, cat.Totals.Pages)
}
