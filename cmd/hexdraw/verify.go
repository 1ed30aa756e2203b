package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexdraw/internal/compress"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <raster>",
	Short: "Check that compression round-trips a raster",
	Long: `Compress a raster with every scan strategy, replay each candidate
program, and report whether it reproduces the input pixel for pixel.

Exits non-zero if no strategy round-trips.`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) {
	r, err := loadRaster(args[0], false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cells := r.Height() * r.Width()
	fmt.Printf("raster: %dx%d, %d cells\n\n", r.Height(), r.Width(), cells)
	fmt.Printf("  %-10s  %-10s  %s\n", "strategy", "commands", "round-trip")
	fmt.Printf("  %-10s  %-10s  %s\n", "--------", "--------", "----------")

	cands := compress.Candidates(r)
	anyOK := false
	for _, c := range cands {
		verdict := "FAIL"
		if c.OK {
			verdict = "ok"
			anyOK = true
		}
		fmt.Printf("  %-10s  %-10d  %s\n", c.Name, len(c.Drawing.Commands), verdict)
	}

	if !anyOK {
		fmt.Fprintln(os.Stderr, "\nError: no strategy reproduced the raster")
		os.Exit(1)
	}

	best, err := compress.Pick(cands)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nbest: %d commands for %d cells (%.1f%%)\n",
		len(best.Commands), cells, 100*float64(len(best.Commands))/float64(cells))
}
