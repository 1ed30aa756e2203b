package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexdraw/internal/render"
)

var flagViewProgram bool

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Preview a raster in the terminal",
	Long: `Print a raster using colored half-block characters, two pixel rows
per terminal line. With --program the input is a drawing program,
executed first.

Examples:
  hexdraw view image.hex
  hexdraw view sprite.draw --program`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().BoolVar(&flagViewProgram, "program", false, "Treat the input as a program, not raster text")
}

func runView(cmd *cobra.Command, args []string) {
	r, err := loadRaster(args[0], flagViewProgram)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && r.Width() > w {
		logger.Warn("raster is wider than the terminal, lines will wrap", "raster", r.Width(), "terminal", w)
	}

	fmt.Println(render.TermString(r, loadPalette()))
}
