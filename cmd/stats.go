package cmd

import (
	"fmt"
	"io"

	"github.com/AnyUserName/imgopt/internal/report"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <summary.json>",
	Short: "Display a breakdown of a summary written with --manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := report.ReadJSON(args[0])
	if err != nil {
		return err
	}
	printStats(cmd.OutOrStdout(), s)
	return nil
}

func printStats(w io.Writer, s *report.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Generated:        %s\n", s.GeneratedAt)
	fmt.Fprintf(w, "  Root:             %s\n", s.Root)
	fmt.Fprintf(w, "  Processed:        %d of %d discovered\n", s.Processed(), s.FilesDiscovered)
	fmt.Fprintf(w, "  Input size:       %s\n", report.FormatBytes(s.TotalOriginalBytes))
	fmt.Fprintf(w, "  Output size:      %s\n", report.FormatBytes(s.TotalNewBytes))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Role breakdown:")
	for _, b := range report.ByRole(s) {
		fmt.Fprintf(w, "    %-9s %4d files  %s\n", b.Key, b.Count, report.FormatBytes(b.Bytes))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Format breakdown:")
	for _, b := range report.ByFormat(s) {
		fmt.Fprintf(w, "    %-9s %4d files  %s\n", b.Key, b.Count, report.FormatBytes(b.Bytes))
	}

	// Files that missed an output.
	var warnings []string
	for _, f := range s.Files {
		for _, e := range f.Errors {
			warnings = append(warnings, fmt.Sprintf("%s: %s", f.RelPath, e))
		}
	}
	if len(warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Warnings (%d):\n", len(warnings))
		for _, msg := range warnings {
			fmt.Fprintf(w, "    ⚠ %s\n", msg)
		}
	}
	fmt.Fprintln(w)
}
