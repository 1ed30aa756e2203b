package core

import "fmt"

// Color is a 4-bit palette index. Rasters and drawing commands never carry
// RGB values; mapping an index to an actual colour is a rendering concern.
type Color uint8

// MaxColor is the highest valid palette index.
const MaxColor Color = 15

// Valid reports whether the color is a legal palette index.
func (c Color) Valid() bool {
	return c <= MaxColor
}

// Hex returns the single lowercase hex digit for the color.
func (c Color) Hex() byte {
	const digits = "0123456789abcdef"
	return digits[c&0xf]
}

// String returns the color's textual form, a single hex digit.
func (c Color) String() string {
	return string(c.Hex())
}

// ParseColor converts a single hex digit (0-9, a-f, A-F) to a Color.
func ParseColor(b byte) (Color, error) {
	switch {
	case b >= '0' && b <= '9':
		return Color(b - '0'), nil
	case b >= 'a' && b <= 'f':
		return Color(b-'a') + 10, nil
	case b >= 'A' && b <= 'F':
		return Color(b-'A') + 10, nil
	}
	return 0, fmt.Errorf("invalid color digit %q (want 0-9 or a-f)", string(b))
}
