package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version     = "0.1.0"
	configFile  string
	showVersion bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:     "gaaqoo",
	Short:   "Convert photos for digital photo frames",
	Version: Version,
	Long: `gaaqoo converts a directory tree of photos into a mirrored tree of
frame-ready JPEGs. Each image is rotated per its EXIF orientation, resized
to fit the frame and stamped with its capture date.

Already converted photos are skipped, and outputs whose source is gone or
has changed are removed from the destination.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")

	rootCmd.Flags().StringVarP(&configFile, "config", "f", "", "Path to config file (default: ~/.config/gaaqoo/default.yml)")
	// Declared here so cobra binds -V instead of its default -v.
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "Show version")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-file details")
}
