package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pubguide/internal/guide"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("pubguide %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestResolvePage(t *testing.T) {
	cases := map[string]guide.PageID{
		"Understanding Journal Metrics": guide.PageJournalMetrics,
		"understanding_journal_metrics": guide.PageJournalMetrics,
		"Submission_Peer_Review":        guide.PageSubmissionReview,
		"Publishing Ethics":             guide.PageEthics,
	}
	for in, want := range cases {
		got, err := resolvePage(in)
		if err != nil {
			t.Fatalf("resolvePage(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("resolvePage(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := resolvePage("Nonexistent Page"); err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestParseChoices(t *testing.T) {
	got, err := parseChoices([]string{"type=Review Article", "metric=h-index=x"})
	if err != nil {
		t.Fatalf("parseChoices: %v", err)
	}
	if got["type"] != "Review Article" || got["metric"] != "h-index=x" {
		t.Fatalf("unexpected choices %v", got)
	}
	if _, err := parseChoices([]string{"novalue"}); err == nil {
		t.Fatal("expected error for missing '='")
	}
}

func TestPagesCommand(t *testing.T) {
	out := execute(t, "pages")
	for _, id := range guide.Pages() {
		if !strings.Contains(out, guide.Slug(id)) {
			t.Fatalf("pages output missing %q:\n%s", guide.Slug(id), out)
		}
	}
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	out := execute(t, "export", "--out", path)
	if !strings.Contains(out, "11 pages") {
		t.Fatalf("unexpected output %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "publication-types") {
		t.Fatalf("export missing registry:\n%s", data)
	}
}

func TestShowCommandPrintsSiteNotes(t *testing.T) {
	out := execute(t, "show", "introduction_to_academic_publishing", "--style", "notty", "--width", "100")
	for _, want := range []string{"Introduction to Academic Publishing", "beginners", "educational purposes only"} {
		if !strings.Contains(out, want) {
			t.Fatalf("show output missing %q:\n%s", want, out)
		}
	}
}
