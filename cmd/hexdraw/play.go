package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexdraw/internal/platform/tui"
)

var flagPlayRate int

var playCmd = &cobra.Command{
	Use:   "play <program>",
	Short: "Replay a program command by command",
	Long: `Animate the interpretation of a drawing program in the terminal,
applying one command per tick.

Controls:
  Space/P    - Pause/resume
  N          - Step one command (while paused)
  R          - Restart
  Q/Ctrl+C   - Quit

Examples:
  hexdraw play sprite.draw
  hexdraw play sprite.draw --rate 30`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayRate, "rate", 10, "Commands applied per second")
}

func runPlay(cmd *cobra.Command, args []string) {
	d, err := loadProgram(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(d, loadPalette(), flagPlayRate); err != nil {
		fmt.Fprintf(os.Stderr, "Error running player: %v\n", err)
		os.Exit(1)
	}
}
