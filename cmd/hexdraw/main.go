// hexdraw interprets and compresses drawings in a small 4-bit raster
// drawing language.
//
// Usage:
//
//	hexdraw draw <program>       - Execute a program into a raster
//	hexdraw compress <raster>    - Compress a raster into a program
//	hexdraw verify <raster>      - Check compression round-trips
//	hexdraw render <file>        - Render to a PNG image
//	hexdraw view <file>          - Preview in the terminal
//	hexdraw play <program>       - Replay a program step by step
//	hexdraw gallery              - Manage saved drawings
//
// Global flags:
//
//	--palette <path>  - Custom palette YAML (default: built-in EGA)
//	--db <path>       - Gallery database path (default: ~/.hexdraw/gallery.db)
//	--verbose         - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexdraw/internal/config"
	"github.com/vovakirdan/hexdraw/internal/drawing"
	"github.com/vovakirdan/hexdraw/internal/raster"
	"github.com/vovakirdan/hexdraw/internal/storage"
)

var (
	// Global flags
	flagPalette string
	flagDBPath  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "hexdraw",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexdraw",
	Short: "A 4-bit raster drawing language",
	Long: `hexdraw executes programs in a small drawing language into 16-color
rasters, and compresses rasters back into short programs.

A program moves a cursor over the grid, painting axis-aligned runs of
cells. A raster is plain text: one hex digit per pixel, one line per row.

Examples:
  hexdraw draw sprite.draw
  hexdraw compress image.hex --out image.draw
  hexdraw verify image.hex
  hexdraw render image.hex --out image.png --scale 10
  hexdraw view image.hex
  hexdraw play sprite.draw --rate 20
  hexdraw gallery save logo image.hex`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagPalette, "palette", "", "Path to custom palette YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexdraw/gallery.db", "Path to gallery database")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(galleryCmd)
}

// loadPalette resolves the rendering palette.
func loadPalette() config.Palette {
	pal, err := config.LoadPalette(flagPalette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return pal
}

// openStore opens the gallery database.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

// loadRaster reads a file as raster text, or as a program to execute when
// asProgram is set.
func loadRaster(path string, asProgram bool) (*raster.Raster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if asProgram {
		d, err := drawing.Parse(string(data))
		if err != nil {
			return nil, err
		}
		return d.Draw()
	}
	return raster.Parse(string(data))
}

// loadProgram reads and parses a program file.
func loadProgram(path string) (*drawing.Drawing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return drawing.Parse(string(data))
}

// writeOutput writes text to a file, or stdout when path is empty.
func writeOutput(path, text string) error {
	if path == "" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
