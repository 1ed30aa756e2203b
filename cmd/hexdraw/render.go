package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexdraw/internal/render"
)

var (
	flagScale         int
	flagRenderOut     string
	flagRenderProgram bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a raster to a PNG image",
	Long: `Render a raster text file to a PNG through the 16-entry palette.
With --program the input is a drawing program, executed first.

Examples:
  hexdraw render image.hex --out image.png
  hexdraw render sprite.draw --program --out sprite.png --scale 4
  hexdraw render image.hex --out image.png --palette mypalette.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagRenderOut, "out", "", "Output PNG path (required)")
	renderCmd.Flags().IntVar(&flagScale, "scale", 10, "PNG pixels per cell")
	renderCmd.Flags().BoolVar(&flagRenderProgram, "program", false, "Treat the input as a program, not raster text")
	//nolint:errcheck // Flag exists, declared just above
	renderCmd.MarkFlagRequired("out")
}

func runRender(cmd *cobra.Command, args []string) {
	r, err := loadRaster(args[0], flagRenderProgram)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(flagRenderOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := render.WritePNG(f, r, loadPalette(), flagScale); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("wrote PNG", "path", flagRenderOut, "scale", flagScale)
}
