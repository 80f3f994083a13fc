package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/AnyUserName/imgopt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "imgopt",
	Short: "Convert storefront images to WebP and AVIF",
	Long: `imgopt scans the storefront image tree, sizes every PNG/JPEG by its
role (hero, category, icon, default), writes WebP and AVIF siblings next to
the source and prints the savings.

Runs are idempotent: files under 50 KiB and files that already have both
siblings are skipped.`,
	Version:       version,
	Args:          cobra.NoArgs,
	RunE:          runOptimize,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "image root (default: ../public/images next to the binary)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgopt %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

func newLogger() *logging.Logger {
	return logging.New(os.Stderr, verbose)
}
