package cmd

import (
	"fmt"

	"github.com/AnyUserName/imgopt/internal/pipeline"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every convertible image has WebP and AVIF siblings",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	root, err := resolveRoot()
	if err != nil {
		return err
	}

	problems, err := pipeline.Verify(root)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(problems) == 0 {
		fmt.Fprintf(out, "  ✓ %s — all outputs present\n", root)
		return nil
	}

	fmt.Fprintf(out, "  ✗ %d problem(s):\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(out, "    • %s\n", p)
	}
	return fmt.Errorf("verification failed with %d problems", len(problems))
}
