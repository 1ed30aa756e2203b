// Package config loads the rendering palette, the table mapping the 16
// color indices to RGB values. The drawing core never sees RGB; only the
// PNG exporter and terminal preview consume a palette.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/palette.yaml
var defaultPaletteYAML []byte

// Palette maps each palette index to an opaque RGB color.
type Palette [16]color.RGBA

// Hex returns the "#rrggbb" form of a palette entry.
func (p Palette) Hex(i int) string {
	c := p[i&0xf]
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// paletteFile is the on-disk YAML shape.
type paletteFile struct {
	Colors []string `yaml:"colors"`
}

// LoadPalette loads the palette.
// Search order: customPath -> ~/.hexdraw/palette.yaml -> embedded default.
func LoadPalette(customPath string) (Palette, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Palette{}, fmt.Errorf("failed to read palette %s: %w", customPath, err)
		}
		p, err := ParsePalette(data)
		if err != nil {
			return Palette{}, fmt.Errorf("failed to parse palette %s: %w", customPath, err)
		}
		return p, nil
	}

	if userPath := userPalettePath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if p, err := ParsePalette(data); err == nil {
				return p, nil
			}
		}
	}

	if p, err := ParsePalette(defaultPaletteYAML); err == nil {
		return p, nil
	}
	return DefaultPalette(), nil // Fallback to hardcoded if embed fails
}

// userPalettePath returns the path to the user palette file, or empty if
// home is unavailable.
func userPalettePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexdraw", "palette.yaml")
}

// ParsePalette reads a palette from its YAML form: a "colors" list of
// exactly 16 "#rrggbb" strings.
func ParsePalette(data []byte) (Palette, error) {
	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Palette{}, err
	}
	if len(file.Colors) != 16 {
		return Palette{}, fmt.Errorf("palette has %d colors, want 16", len(file.Colors))
	}

	var p Palette
	for i, s := range file.Colors {
		c, err := parseHexColor(s)
		if err != nil {
			return Palette{}, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p[i] = c
	}
	return p, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// DefaultPalette returns the standard 4-bit EGA palette.
func DefaultPalette() Palette {
	rgb := [16]uint32{
		0x000000, 0x0000aa, 0x00aa00, 0x00aaaa,
		0xaa0000, 0xaa00aa, 0xaa5500, 0xaaaaaa,
		0x555555, 0x5555ff, 0x55ff55, 0x55ffff,
		0xff5555, 0xff55ff, 0xffff55, 0xffffff,
	}

	var p Palette
	for i, v := range rgb {
		p[i] = color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
	return p
}
