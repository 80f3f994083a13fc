package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AnyUserName/imgopt/internal/pipeline"
	"github.com/AnyUserName/imgopt/internal/report"
	"github.com/spf13/cobra"
)

var (
	optWorkers  int
	optManifest string
)

func init() {
	rootCmd.Flags().IntVarP(&optWorkers, "workers", "w", 1, "parallel workers (0 = NumCPU)")
	rootCmd.Flags().StringVar(&optManifest, "manifest", "", "also write the summary as JSON to this path")
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	start := time.Now()
	log := newLogger()

	root, err := resolveRoot()
	if err != nil {
		return err
	}
	log.Debug("root:    %s", root)
	log.Debug("workers: %d", optWorkers)

	p := pipeline.New(pipeline.Config{
		Root:    root,
		Workers: optWorkers,
		Logger:  log,
	})

	s, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if optManifest != "" {
		if err := report.WriteJSON(s, optManifest); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		log.Debug("summary written to %s", optManifest)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, report.Render(s))
	fmt.Fprintf(out, "  Time:       %s\n\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// resolveRoot returns the --root flag, or public/images one level above
// the directory holding the binary.
func resolveRoot() (string, error) {
	if rootDir != "" {
		return filepath.Abs(rootDir)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", "public", "images"), nil
}
