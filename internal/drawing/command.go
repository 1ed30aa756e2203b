package drawing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/hexdraw/internal/core"
	"github.com/vovakirdan/hexdraw/internal/raster"
)

// Command is a single drawing instruction: move the cursor some distance
// in a direction, optionally painting every cell stepped onto. A negative
// distance moves the opposite way. Distance zero with paint recolors the
// cell under the cursor and is the only way to repaint a command's
// starting cell.
type Command struct {
	Dir      core.Direction
	Distance int
	Paint    bool
	Color    core.Color // meaningful only when Paint is true
}

// Move builds a movement-only command.
func Move(dir core.Direction, distance int) Command {
	return Command{Dir: dir, Distance: distance}
}

// Stroke builds a painting command.
func Stroke(dir core.Direction, distance int, c core.Color) Command {
	return Command{Dir: dir, Distance: distance, Paint: true, Color: c}
}

// String formats the command in program-file syntax:
// "<direction> <distance>" or "<direction> <distance> <colour>".
func (c Command) String() string {
	if c.Paint {
		return fmt.Sprintf("%s %d %s", c.Dir, c.Distance, c.Color)
	}
	return fmt.Sprintf("%s %d", c.Dir, c.Distance)
}

// ParseCommand parses one program line into a Command.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 3 {
		return Command{}, fmt.Errorf("expected 2 or 3 fields, got %d", len(fields))
	}

	dir, err := core.ParseDirection(fields[0])
	if err != nil {
		return Command{}, err
	}

	distance, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("invalid distance %q (want an integer)", fields[1])
	}

	cmd := Command{Dir: dir, Distance: distance}
	if len(fields) == 3 {
		if len(fields[2]) != 1 {
			return Command{}, fmt.Errorf("invalid color %q (want a single hex digit)", fields[2])
		}
		c, err := core.ParseColor(fields[2][0])
		if err != nil {
			return Command{}, err
		}
		cmd.Paint = true
		cmd.Color = c
	}
	return cmd, nil
}

// Apply executes the command against a raster from the given cursor
// position and returns the new cursor position. The cursor may leave the
// raster freely; only painting out of bounds fails, and the raster may be
// partially painted when it does (Draw discards it in that case).
func (c Command) Apply(r *raster.Raster, pos core.Position) (core.Position, error) {
	if c.Distance == 0 {
		if c.Paint {
			if err := r.Set(pos.Row, pos.Col, c.Color); err != nil {
				return pos, err
			}
		}
		return pos, nil
	}

	step := c.Dir.Step()
	if c.Distance < 0 {
		step = step.Neg()
	}
	for i := 0; i < core.Abs(c.Distance); i++ {
		pos = pos.Add(step)
		if c.Paint {
			if err := r.Set(pos.Row, pos.Col, c.Color); err != nil {
				return pos, err
			}
		}
	}
	return pos, nil
}
