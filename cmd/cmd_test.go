package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/imgopt/internal/pipeline"
	"github.com/AnyUserName/imgopt/internal/report"
	"github.com/spf13/cobra"
)

func TestResolveRoot_Flag(t *testing.T) {
	dir := t.TempDir()
	rootDir = dir
	defer func() { rootDir = "" }()

	got, err := resolveRoot()
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Errorf("got %q, want %q", got, dir)
	}
}

func TestResolveRoot_Default(t *testing.T) {
	rootDir = ""
	got, err := resolveRoot()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(filepath.ToSlash(got), "public/images") {
		t.Errorf("default root: got %q", got)
	}
}

func TestRunOptimize_MissingRoot(t *testing.T) {
	rootDir = filepath.Join(t.TempDir(), "missing")
	defer func() { rootDir = "" }()

	c := &cobra.Command{}
	var out bytes.Buffer
	c.SetOut(&out)

	err := runOptimize(c, nil)
	if !errors.Is(err, pipeline.ErrDirectoryNotFound) {
		t.Fatalf("want ErrDirectoryNotFound, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("no report may be printed on a fatal error, got:\n%s", out.String())
	}
}

func TestRunStats(t *testing.T) {
	s := report.New("/srv/images")
	s.FilesDiscovered = 2
	s.Add(report.FileEntry{
		RelPath: "hero1.jpg", Role: "hero", OriginalBytes: 300 * 1024,
		Outputs: []report.Output{{Format: "webp", Size: 100 * 1024}},
		Errors:  []string{"avif: encode hero1.jpg as avif: no encoder available"},
	})
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := report.WriteJSON(s, path); err != nil {
		t.Fatal(err)
	}

	c := &cobra.Command{}
	var out bytes.Buffer
	c.SetOut(&out)
	if err := runStats(c, []string{path}); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{"Processed:        1 of 2", "hero", "300 KiB", "webp", "Warnings (1)", "no encoder available"} {
		if !strings.Contains(got, want) {
			t.Errorf("stats output missing %q:\n%s", want, got)
		}
	}
}
