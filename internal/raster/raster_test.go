package raster

import (
	"errors"
	"strings"
	"testing"
)

func TestNewFillsBackground(t *testing.T) {
	r := New(3, 4, 7)

	if r.Height() != 3 {
		t.Errorf("Height() = %d, expected 3", r.Height())
	}
	if r.Width() != 4 {
		t.Errorf("Width() = %d, expected 4", r.Width())
	}
	if r.Background() != 7 {
		t.Errorf("Background() = %d, expected 7", r.Background())
	}

	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if r.Get(y, x) != 7 {
				t.Errorf("New raster should be filled with background, got %d at (%d,%d)", r.Get(y, x), y, x)
			}
		}
	}
}

func TestSetGet(t *testing.T) {
	r := New(2, 2, 0)

	if err := r.Set(1, 0, 9); err != nil {
		t.Fatalf("Set(1, 0, 9) failed: %v", err)
	}
	if r.Get(1, 0) != 9 {
		t.Errorf("Get(1, 0) = %d, expected 9", r.Get(1, 0))
	}

	// Only the one cell changes
	if r.Get(0, 0) != 0 || r.Get(0, 1) != 0 || r.Get(1, 1) != 0 {
		t.Error("Set should not touch other cells")
	}
}

func TestSetOutOfBounds(t *testing.T) {
	r := New(2, 2, 0)

	cases := []struct{ row, col int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5},
	}
	for _, tc := range cases {
		err := r.Set(tc.row, tc.col, 1)
		if err == nil {
			t.Errorf("Set(%d, %d) should fail", tc.row, tc.col)
			continue
		}
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Errorf("Set(%d, %d) error should be OutOfBoundsError, got %T", tc.row, tc.col, err)
			continue
		}
		if oob.Pos.Row != tc.row || oob.Pos.Col != tc.col {
			t.Errorf("error position = %v, expected (%d,%d)", oob.Pos, tc.row, tc.col)
		}
	}
}

func TestParseString(t *testing.T) {
	text := "04\n10\n12\n00\n"

	r, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if r.Height() != 4 || r.Width() != 2 {
		t.Fatalf("dimensions = %dx%d, expected 4x2", r.Height(), r.Width())
	}
	if r.Get(0, 1) != 4 || r.Get(1, 0) != 1 || r.Get(2, 1) != 2 || r.Get(3, 0) != 0 {
		t.Error("parsed cells do not match input")
	}

	if got := r.String(); got != text {
		t.Errorf("String() = %q, expected %q", got, text)
	}
}

func TestParseNoTrailingNewline(t *testing.T) {
	r, err := Parse("ab\ncd")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if r.String() != "ab\ncd\n" {
		t.Errorf("String() = %q", r.String())
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		line int
	}{
		{"empty", "", 0},
		{"only newlines", "\n\n", 0},
		{"ragged lines", "00\n000\n", 2},
		{"bad digit", "0g\n00\n", 1},
		{"uppercase rejected by raster if not hex", "0X\n00\n", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tc.text)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error should be FormatError, got %T", err)
			}
			if fe.Line != tc.line {
				t.Errorf("FormatError.Line = %d, expected %d", fe.Line, tc.line)
			}
		})
	}
}

func TestParseBackgroundIsDominantColor(t *testing.T) {
	r, err := Parse("111\n101\n111\n")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if r.Background() != 1 {
		t.Errorf("Background() = %d, expected dominant color 1", r.Background())
	}
}

func TestParseSerializeIdempotent(t *testing.T) {
	texts := []string{
		"0\n",
		"ffff\n0000\nffff\n",
		"0123456789abcdef\n",
		strings.Repeat("7a7\n", 10),
	}

	for _, text := range texts {
		r, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", text, err)
		}
		if got := r.String(); got != text {
			t.Errorf("serialize(load(%q)) = %q", text, got)
		}
	}
}

func TestEqual(t *testing.T) {
	a := New(2, 3, 0)
	b := New(2, 3, 0)

	if !a.Equal(b) {
		t.Error("identical rasters should be equal")
	}

	b.Set(1, 2, 5)
	if a.Equal(b) {
		t.Error("rasters with different cells should not be equal")
	}

	if a.Equal(New(3, 2, 0)) {
		t.Error("rasters with different dimensions should not be equal")
	}
	if a.Equal(nil) {
		t.Error("raster should not equal nil")
	}

	// Background does not participate in equality
	c := New(2, 3, 9)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c.Set(y, x, 0)
		}
	}
	if !a.Equal(c) {
		t.Error("rasters with equal cells should be equal regardless of background")
	}
}

func TestHistogram(t *testing.T) {
	r, err := Parse("0011\nff00\n")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	h := r.Histogram()
	if h[0] != 4 || h[1] != 2 || h[15] != 2 {
		t.Errorf("Histogram() = %v", h)
	}
}
