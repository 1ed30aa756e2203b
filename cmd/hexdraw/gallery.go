package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexdraw/internal/compress"
	"github.com/vovakirdan/hexdraw/internal/render"
)

var flagGalleryView bool

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Manage saved drawings",
	Long: `The gallery keeps compressed drawings in a local SQLite database.

Examples:
  hexdraw gallery save logo image.hex
  hexdraw gallery list
  hexdraw gallery show logo
  hexdraw gallery show logo --view
  hexdraw gallery rm logo`,
}

var gallerySaveCmd = &cobra.Command{
	Use:   "save <name> <raster>",
	Short: "Compress a raster and save it under a name",
	Args:  cobra.ExactArgs(2),
	Run:   runGallerySave,
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved drawings",
	Run:   runGalleryList,
}

var galleryShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved drawing's program",
	Args:  cobra.ExactArgs(1),
	Run:   runGalleryShow,
}

var galleryRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved drawing",
	Args:  cobra.ExactArgs(1),
	Run:   runGalleryRm,
}

func init() {
	galleryShowCmd.Flags().BoolVar(&flagGalleryView, "view", false, "Execute the program and preview the raster")

	galleryCmd.AddCommand(gallerySaveCmd)
	galleryCmd.AddCommand(galleryListCmd)
	galleryCmd.AddCommand(galleryShowCmd)
	galleryCmd.AddCommand(galleryRmCmd)
}

func runGallerySave(cmd *cobra.Command, args []string) {
	name := args[0]

	r, err := loadRaster(args[1], false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d, err := compress.Compress(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()
	if _, err := store.Save(name, d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %q: %dx%d, %d commands\n", name, d.Height, d.Width, len(d.Commands))
}

func runGalleryList(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("Gallery is empty.")
		return
	}

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Printf("  %-*s  %-9s  %-9s  %s\n", maxNameLen, "Name", "Size", "Commands", "Saved")
	fmt.Printf("  %-*s  %-9s  %-9s  %s\n", maxNameLen, "----", "----", "--------", "-----")
	for _, e := range entries {
		fmt.Printf("  %-*s  %-9s  %-9d  %s\n",
			maxNameLen, e.Name,
			fmt.Sprintf("%dx%d", e.Height, e.Width),
			e.CommandCount,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GalleryStats()
	if err == nil {
		fmt.Printf("\n%d drawings, %d commands for %d cells\n", stats.Drawings, stats.TotalCommands, stats.TotalCells)
	}
}

func runGalleryShow(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	d, err := store.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if d == nil {
		fmt.Fprintf(os.Stderr, "Error: no drawing named %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'hexdraw gallery list' to see saved drawings.")
		os.Exit(1)
	}

	if !flagGalleryView {
		fmt.Print(d.String())
		return
	}

	r, err := d.Draw()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(render.TermString(r, loadPalette()))
}

func runGalleryRm(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	removed, err := store.Delete(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !removed {
		fmt.Fprintf(os.Stderr, "Error: no drawing named %q\n", args[0])
		os.Exit(1)
	}
	fmt.Printf("Deleted %q\n", args[0])
}
