package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexdraw/internal/compress"
)

var (
	flagCompressOut  string
	flagCompressSave string
)

var compressCmd = &cobra.Command{
	Use:   "compress <raster>",
	Short: "Compress a raster into a drawing program",
	Long: `Read a raster text file and produce the shortest program the scan
strategies can find that redraws it exactly. Every candidate program is
verified by re-interpretation before it is considered.

Examples:
  hexdraw compress image.hex
  hexdraw compress image.hex --out image.draw
  hexdraw compress image.hex --save logo`,
	Args: cobra.ExactArgs(1),
	Run:  runCompress,
}

func init() {
	compressCmd.Flags().StringVar(&flagCompressOut, "out", "", "Write the program to a file instead of stdout")
	compressCmd.Flags().StringVar(&flagCompressSave, "save", "", "Also save the program to the gallery under this name")
}

func runCompress(cmd *cobra.Command, args []string) {
	r, err := loadRaster(args[0], false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cands := compress.Candidates(r)
	for _, c := range cands {
		logger.Debug("strategy result", "strategy", c.Name, "commands", len(c.Drawing.Commands), "ok", c.OK)
	}

	d, err := compress.Pick(cands)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("compressed", "commands", len(d.Commands), "cells", r.Height()*r.Width())

	if err := writeOutput(flagCompressOut, d.String()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagCompressSave != "" {
		store := openStore()
		defer store.Close()
		if _, err := store.Save(flagCompressSave, d); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("saved to gallery", "name", flagCompressSave)
	}
}
