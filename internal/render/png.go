// Package render turns a finished raster into something viewable: a PNG
// file or a styled terminal string. It is pure presentation; nothing in
// the drawing core depends on it.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/vovakirdan/hexdraw/internal/config"
	"github.com/vovakirdan/hexdraw/internal/raster"
)

// WritePNG encodes the raster as a paletted PNG, each cell drawn as a
// scale x scale block.
func WritePNG(w io.Writer, r *raster.Raster, pal config.Palette, scale int) error {
	if scale < 1 {
		return fmt.Errorf("render: scale %d is not positive", scale)
	}

	colors := make(color.Palette, len(pal))
	for i, c := range pal {
		colors[i] = c
	}

	img := image.NewPaletted(image.Rect(0, 0, r.Width()*scale, r.Height()*scale), colors)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			idx := uint8(r.Get(y, x))
			for dy := 0; dy < scale; dy++ {
				row := (y*scale + dy) * img.Stride
				for dx := 0; dx < scale; dx++ {
					img.Pix[row+x*scale+dx] = idx
				}
			}
		}
	}

	return png.Encode(w, img)
}
