// Package compress turns a finished raster back into a drawing program.
//
// Several independent scan strategies each produce a candidate program;
// every candidate is re-interpreted and checked against the input, and the
// shortest correct one wins. Ties go to the earliest strategy in the list.
package compress

import (
	"errors"
	"sync"

	"github.com/vovakirdan/hexdraw/internal/drawing"
	"github.com/vovakirdan/hexdraw/internal/raster"
)

// Strategy is a deterministic scan producing a program that redraws the
// raster. Strategies only read the raster and may run concurrently.
type Strategy interface {
	Name() string
	Compress(r *raster.Raster) *drawing.Drawing
}

// Candidate is one strategy's output plus its verification verdict.
type Candidate struct {
	Name    string
	Drawing *drawing.Drawing
	OK      bool // replaying the program reproduced the raster exactly
}

// Strategies returns the candidate scans in tie-break order.
func Strategies() []Strategy {
	return []Strategy{RowScan{}, ColumnScan{}}
}

// Candidates runs every strategy over the raster and verifies each result
// by interpretation. Strategies run concurrently on the shared read-only
// raster; results are joined in strategy order.
func Candidates(r *raster.Raster) []Candidate {
	strategies := Strategies()
	out := make([]Candidate, len(strategies))

	var wg sync.WaitGroup
	for i, s := range strategies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := s.Compress(r)
			redrawn, err := d.Draw()
			out[i] = Candidate{
				Name:    s.Name(),
				Drawing: d,
				OK:      err == nil && redrawn.Equal(r),
			}
		}()
	}
	wg.Wait()
	return out
}

// Pick selects the shortest verified candidate, first one on ties.
func Pick(cands []Candidate) (*drawing.Drawing, error) {
	var best *drawing.Drawing
	for _, c := range cands {
		if !c.OK {
			continue
		}
		if best == nil || len(c.Drawing.Commands) < len(best.Commands) {
			best = c.Drawing
		}
	}
	if best == nil {
		return nil, errors.New("compress: no strategy reproduced the raster")
	}
	return best, nil
}

// Compress returns the shortest verified program that redraws the raster.
func Compress(r *raster.Raster) (*drawing.Drawing, error) {
	return Pick(Candidates(r))
}
