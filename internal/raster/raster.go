// Package raster implements the 4-bit pixel grid that drawing programs
// execute against. A raster has fixed dimensions, a background color, and
// one palette index per cell. Its text form is one hex digit per cell, one
// line per row; Parse and String are exact inverses.
package raster

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hexdraw/internal/core"
)

// FormatError reports malformed raster text.
type FormatError struct {
	Line   int // 1-based line number, 0 if the whole input is at fault
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("raster: %s", e.Reason)
	}
	return fmt.Sprintf("raster: line %d: %s", e.Line, e.Reason)
}

// OutOfBoundsError reports a paint outside the raster.
type OutOfBoundsError struct {
	Pos           core.Position
	Height, Width int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("raster: paint at %s outside %dx%d grid", e.Pos, e.Height, e.Width)
}

// Raster is a height x width grid of palette colors.
// Dimensions are fixed for the raster's lifetime.
type Raster struct {
	height     int
	width      int
	background core.Color
	cells      [][]core.Color
}

// New creates a raster with every cell set to the background color.
// Dimensions must be positive.
func New(height, width int, background core.Color) *Raster {
	r := &Raster{
		height:     height,
		width:      width,
		background: background,
	}
	r.cells = make([][]core.Color, height)
	for y := range r.cells {
		r.cells[y] = make([]core.Color, width)
		for x := range r.cells[y] {
			r.cells[y][x] = background
		}
	}
	return r
}

// Height returns the number of rows.
func (r *Raster) Height() int {
	return r.height
}

// Width returns the number of columns.
func (r *Raster) Width() int {
	return r.width
}

// Background returns the color cells start as.
func (r *Raster) Background() core.Color {
	return r.background
}

// In reports whether (row, col) lies inside the grid.
func (r *Raster) In(row, col int) bool {
	return row >= 0 && row < r.height && col >= 0 && col < r.width
}

// Set paints a single cell. The only failure mode is painting outside
// the grid, reported as an OutOfBoundsError.
func (r *Raster) Set(row, col int, c core.Color) error {
	if !r.In(row, col) {
		return &OutOfBoundsError{
			Pos:    core.Position{Row: row, Col: col},
			Height: r.height,
			Width:  r.width,
		}
	}
	r.cells[row][col] = c
	return nil
}

// Get returns the color at (row, col).
// Out-of-bounds reads return the background color.
func (r *Raster) Get(row, col int) core.Color {
	if !r.In(row, col) {
		return r.background
	}
	return r.cells[row][col]
}

// Equal reports whether two rasters have identical dimensions and cells.
// The background color is not compared; it is a construction detail.
func (r *Raster) Equal(other *Raster) bool {
	if other == nil || r.height != other.height || r.width != other.width {
		return false
	}
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			if r.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Histogram counts how many cells hold each palette index.
func (r *Raster) Histogram() [16]int {
	var h [16]int
	for y := range r.cells {
		for x := range r.cells[y] {
			h[r.cells[y][x]]++
		}
	}
	return h
}

// String serializes the raster to its text form, one hex digit per cell,
// one newline-terminated line per row. Exact inverse of Parse.
func (r *Raster) String() string {
	var sb strings.Builder
	sb.Grow(r.height * (r.width + 1))

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			sb.WriteByte(r.cells[y][x].Hex())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads raster text. Every line must have the same length and
// contain only hex color digits. The raster's background is set to its
// most frequent color, the cheapest starting point for compression.
func Parse(text string) (*Raster, error) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, &FormatError{Reason: "empty input"}
	}

	lines := strings.Split(text, "\n")
	width := len(lines[0])

	r := &Raster{
		height: len(lines),
		width:  width,
		cells:  make([][]core.Color, len(lines)),
	}

	for y, line := range lines {
		if len(line) != width {
			return nil, &FormatError{
				Line:   y + 1,
				Reason: fmt.Sprintf("inconsistent line length %d (line 1 has %d)", len(line), width),
			}
		}
		r.cells[y] = make([]core.Color, width)
		for x := 0; x < width; x++ {
			c, err := core.ParseColor(line[x])
			if err != nil {
				return nil, &FormatError{Line: y + 1, Reason: err.Error()}
			}
			r.cells[y][x] = c
		}
	}

	r.background = dominant(r.Histogram())
	return r, nil
}

// dominant picks the most frequent color, lowest index on ties.
func dominant(hist [16]int) core.Color {
	best := 0
	for i, n := range hist {
		if n > hist[best] {
			best = i
		}
	}
	return core.Color(best)
}
