package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexdraw/internal/render"
)

var (
	flagDrawOut string
	flagDrawPNG string
)

var drawCmd = &cobra.Command{
	Use:   "draw <program>",
	Short: "Execute a drawing program into a raster",
	Long: `Interpret a program file and print the resulting raster as text,
one hex digit per pixel.

The program file format:
  line 1: height
  line 2: width
  line 3: background color (hex digit)
  then one command per line, e.g. "down 2 1" or "up 3".

Examples:
  hexdraw draw sprite.draw
  hexdraw draw sprite.draw --out sprite.hex
  hexdraw draw sprite.draw --png sprite.png`,
	Args: cobra.ExactArgs(1),
	Run:  runDraw,
}

func init() {
	drawCmd.Flags().StringVar(&flagDrawOut, "out", "", "Write raster text to a file instead of stdout")
	drawCmd.Flags().StringVar(&flagDrawPNG, "png", "", "Also render the raster to a PNG file")
	drawCmd.Flags().IntVar(&flagScale, "scale", 10, "PNG pixels per cell")
}

func runDraw(cmd *cobra.Command, args []string) {
	d, err := loadProgram(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r, err := d.Draw()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("interpreted program", "commands", len(d.Commands), "size", fmt.Sprintf("%dx%d", r.Height(), r.Width()))

	if err := writeOutput(flagDrawOut, r.String()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDrawPNG != "" {
		f, err := os.Create(flagDrawPNG)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := render.WritePNG(f, r, loadPalette(), flagScale); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
