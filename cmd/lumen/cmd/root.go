package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Offline CPU ray tracer",
	Long: `lumen — a BVH-accelerated offline ray tracer.

Loads a triangle mesh from STL or GLB, builds a bounding volume
hierarchy over it, and renders it under a pinhole or thin-lens camera
with direct lighting, shadow rays and ambient occlusion.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"lumen %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[lumen] "+format+"\n", args...)
	}
}
