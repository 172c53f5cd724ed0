package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"pubguide/internal/content"
	"pubguide/internal/guide"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the guide's pages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := newTable("#", "Page", "Slug")
		for i, id := range guide.Pages() {
			t.Row(fmt.Sprint(i+1), string(id), guide.Slug(id))
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return err
	},
}

var topicsCmd = &cobra.Command{
	Use:   "topics [registry]",
	Short: "List topics of a registry, or the registries when none is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTopics,
}

func init() {
	rootCmd.AddCommand(pagesCmd, topicsCmd)
}

func runTopics(cmd *cobra.Command, args []string) error {
	lib, err := content.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		t := newTable("Registry", "Topics", "Fields")
		for _, reg := range lib.Registries() {
			t.Row(reg.Name(), fmt.Sprint(len(reg.Names())), strings.Join(reg.Schema(), ", "))
		}
		_, err = fmt.Fprintln(out, t.Render())
		return err
	}

	reg, err := lib.Registry(args[0])
	if err != nil {
		return err
	}
	t := newTable("#", "Topic")
	for i, name := range reg.Names() {
		t.Row(fmt.Sprint(i+1), name)
	}
	_, err = fmt.Fprintln(out, t.Render())
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
