package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/hexdraw/internal/config"
	"github.com/vovakirdan/hexdraw/internal/raster"
)

func mustParse(t *testing.T, text string) *raster.Raster {
	t.Helper()
	r, err := raster.Parse(text)
	if err != nil {
		t.Fatalf("raster.Parse() failed: %v", err)
	}
	return r
}

func TestWritePNG(t *testing.T) {
	r := mustParse(t, "0f\nf0\n")
	pal := config.DefaultPalette()

	var buf bytes.Buffer
	if err := WritePNG(&buf, r, pal, 3); err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output does not decode as PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 6 || bounds.Dy() != 6 {
		t.Fatalf("image is %dx%d, expected 6x6", bounds.Dx(), bounds.Dy())
	}

	// Top-left block is palette 0 (black), its right neighbor palette 15 (white).
	if r8, g8, b8, _ := img.At(0, 0).RGBA(); r8>>8 != 0 || g8>>8 != 0 || b8>>8 != 0 {
		t.Errorf("pixel (0,0) = %v, expected black", img.At(0, 0))
	}
	if r8, g8, b8, _ := img.At(5, 0).RGBA(); r8>>8 != 0xff || g8>>8 != 0xff || b8>>8 != 0xff {
		t.Errorf("pixel (5,0) = %v, expected white", img.At(5, 0))
	}
	// Scaling keeps whole blocks solid.
	if img.At(1, 1) != img.At(0, 0) {
		t.Error("cells should scale into solid blocks")
	}
}

func TestWritePNGBadScale(t *testing.T) {
	r := mustParse(t, "0\n")
	if err := WritePNG(&bytes.Buffer{}, r, config.DefaultPalette(), 0); err == nil {
		t.Error("WritePNG() with scale 0 should fail")
	}
}

func TestTermString(t *testing.T) {
	// Force a colorless profile so the output shape is deterministic.
	orig := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	defer lipgloss.SetColorProfile(orig)

	pal := config.DefaultPalette()

	// 5 rows pack into 3 text rows (two pixel rows per line).
	out := TermString(mustParse(t, "012\n345\n678\n9ab\ncde\n"), pal)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, "▀"); n != 3 {
			t.Errorf("line %d has %d half blocks, expected 3", i, n)
		}
	}
}
