package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pubguide/internal/guide"
	"pubguide/internal/terminal"
)

var showCmd = &cobra.Command{
	Use:   "show <page>",
	Short: "Print a page to the terminal",
	Long: `Print a page by title or slug. Selectors show their first topic unless
--choice key=value picks another, e.g.

  pubguide show publication_types --choice type="Review Article"`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the guide interactively",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	showCmd.Flags().StringArray("choice", nil, "selector choice as key=value (repeatable)")
	showCmd.Flags().Int("width", 80, "wrap width")
	showCmd.Flags().String("style", "auto", "glamour style (auto, dark, light, notty)")
	browseCmd.Flags().String("style", "auto", "glamour style (auto, dark, light, notty)")
	browseCmd.Flags().String("page", "", "page to open first")
	rootCmd.AddCommand(showCmd, browseCmd)
}

func parseChoices(raw []string) (map[string]string, error) {
	choices := make(map[string]string, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("choice %q: want key=value", kv)
		}
		choices[key] = value
	}
	return choices, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := resolvePage(args[0])
	if err != nil {
		return err
	}
	raw, _ := cmd.Flags().GetStringArray("choice")
	choices, err := parseChoices(raw)
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetInt("width")
	style, _ := cmd.Flags().GetString("style")

	renderer, err := loadRenderer()
	if err != nil {
		return err
	}
	surface, err := terminal.NewSurface(cmd.OutOrStdout(), terminal.Options{
		Width:   width,
		Style:   style,
		Choices: choices,
	})
	if err != nil {
		return err
	}
	if err := renderer.Render(id, surface); err != nil {
		return err
	}
	site := renderer.Library().Site()
	surface.WriteAbout(site)
	surface.WriteFooter(site)
	return surface.Err()
}

func runBrowse(cmd *cobra.Command, args []string) error {
	renderer, err := loadRenderer()
	if err != nil {
		return err
	}
	nav := guide.NewNavigator()
	if page, _ := cmd.Flags().GetString("page"); page != "" {
		id, err := resolvePage(page)
		if err != nil {
			return err
		}
		if err := nav.Select(id); err != nil {
			return err
		}
	}
	style, _ := cmd.Flags().GetString("style")

	_, err = tea.NewProgram(terminal.NewBrowser(renderer, nav, style), tea.WithAltScreen()).Run()
	return err
}
