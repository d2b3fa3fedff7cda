package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/taigrr/lumen/pkg/scene"
)

var (
	previewOutPath string
	previewMaxSize int
)

var previewCmd = &cobra.Command{
	Use:   "preview-texture <model.glb>",
	Short: "Extract and downsample a GLB's embedded texture as a sanity-check thumbnail",
	Long: `Decodes the first image embedded in a GLB document and writes a
downsampled thumbnail to a PNG file. The renderer itself never samples
textures during shading; this is purely a way to confirm the right
asset and texture loaded.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutPath, "out", "o", "preview.png", "output PNG path")
	previewCmd.Flags().IntVar(&previewMaxSize, "max-size", 256, "longest edge of the thumbnail, in pixels")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	img, err := scene.PreviewTexture(args[0], previewMaxSize)
	if err != nil {
		return fmt.Errorf("preview texture: %w", err)
	}

	f, err := os.Create(previewOutPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", previewOutPath, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode preview png: %w", err)
	}

	logVerbose("wrote texture preview to %s", previewOutPath)
	fmt.Printf("wrote %s\n", previewOutPath)
	return nil
}
