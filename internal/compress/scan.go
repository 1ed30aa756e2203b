package compress

import (
	"github.com/vovakirdan/hexdraw/internal/core"
	"github.com/vovakirdan/hexdraw/internal/drawing"
	"github.com/vovakirdan/hexdraw/internal/raster"
)

// Both scans establish every cell exactly once. The program background is
// the raster's background color, so background cells need no paint: runs
// of background become movement-only commands, and any trailing movement
// is dropped entirely. The cell the cursor occupies when entering a row
// (or column) is painted by the entry step itself; the rest of the line is
// covered by maximal equal-color runs. Serpentine order keeps the cursor
// at the correct end of each line, so no repositioning commands are spent.

// RowScan encodes the raster as horizontal runs, alternating scan
// direction every row.
type RowScan struct{}

func (RowScan) Name() string { return "rows" }

func (RowScan) Compress(r *raster.Raster) *drawing.Drawing {
	bg := r.Background()
	d := drawing.New(r.Height(), r.Width(), bg)

	// The scan never paints the top-left cell; fix it up front if it is
	// not already the background.
	if c := r.Get(0, 0); c != bg {
		d.Add(drawing.Stroke(core.Down, 0, c))
	}

	col := 0
	for row := 0; row < r.Height(); row++ {
		if row > 0 {
			d.Add(run(core.Down, 1, r.Get(row, col), bg))
		}
		if row%2 == 0 {
			col = scanRow(d, r, row, col, 1)
		} else {
			col = scanRow(d, r, row, col, -1)
		}
	}

	trimTrailingMoves(d)
	return d
}

// scanRow emits runs for the cells after col in direction dc and returns
// the column the cursor ends on.
func scanRow(d *drawing.Drawing, r *raster.Raster, row, col, dc int) int {
	dir := core.Right
	if dc < 0 {
		dir = core.Left
	}

	end := col
	x := col + dc
	for x >= 0 && x < r.Width() {
		c := r.Get(row, x)
		n := 0
		for x >= 0 && x < r.Width() && r.Get(row, x) == c {
			n++
			x += dc
		}
		d.Add(run(dir, n, c, r.Background()))
		end = x - dc
	}
	return end
}

// ColumnScan is the transpose of RowScan: vertical runs, serpentine by
// column.
type ColumnScan struct{}

func (ColumnScan) Name() string { return "columns" }

func (ColumnScan) Compress(r *raster.Raster) *drawing.Drawing {
	bg := r.Background()
	d := drawing.New(r.Height(), r.Width(), bg)

	if c := r.Get(0, 0); c != bg {
		d.Add(drawing.Stroke(core.Right, 0, c))
	}

	row := 0
	for col := 0; col < r.Width(); col++ {
		if col > 0 {
			d.Add(run(core.Right, 1, r.Get(row, col), bg))
		}
		if col%2 == 0 {
			row = scanColumn(d, r, col, row, 1)
		} else {
			row = scanColumn(d, r, col, row, -1)
		}
	}

	trimTrailingMoves(d)
	return d
}

// scanColumn emits runs for the cells after row in direction dr and
// returns the row the cursor ends on.
func scanColumn(d *drawing.Drawing, r *raster.Raster, col, row, dr int) int {
	dir := core.Down
	if dr < 0 {
		dir = core.Up
	}

	end := row
	y := row + dr
	for y >= 0 && y < r.Height() {
		c := r.Get(y, col)
		n := 0
		for y >= 0 && y < r.Height() && r.Get(y, col) == c {
			n++
			y += dr
		}
		d.Add(run(dir, n, c, r.Background()))
		end = y - dr
	}
	return end
}

// run builds a command covering n cells of color c: a paint for foreground
// colors, a plain move over cells that are already the background.
func run(dir core.Direction, n int, c, bg core.Color) drawing.Command {
	if c == bg {
		return drawing.Move(dir, n)
	}
	return drawing.Stroke(dir, n, c)
}

// trimTrailingMoves drops movement-only commands at the end of the
// program. The cells they skip were never painted, so they stay
// background either way.
func trimTrailingMoves(d *drawing.Drawing) {
	cmds := d.Commands
	for len(cmds) > 0 && !cmds[len(cmds)-1].Paint {
		cmds = cmds[:len(cmds)-1]
	}
	d.Commands = cmds
}
