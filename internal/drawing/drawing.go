// Package drawing implements the drawing language: commands, program text,
// and the interpreter that executes a program into a raster.
//
// A program file is three header lines (height, width, background color)
// followed by one command per line. The cursor starts at the top-left
// corner; each command moves it and optionally paints the cells it steps
// onto. See Command for the exact movement and painting rules.
package drawing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/hexdraw/internal/core"
	"github.com/vovakirdan/hexdraw/internal/raster"
)

// ParseError reports malformed program text.
type ParseError struct {
	Line   int // 1-based
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("drawing: line %d: %s", e.Line, e.Reason)
}

// CommandError reports a command that painted outside the raster during
// interpretation. It wraps the underlying raster.OutOfBoundsError.
type CommandError struct {
	Index int // position of the failing command in the program
	Cmd   Command
	Err   error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("drawing: command %d (%s): %v", e.Index+1, e.Cmd, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Drawing is a complete program: raster dimensions, the background color
// every cell starts as, and an ordered command list.
type Drawing struct {
	Height     int
	Width      int
	Background core.Color
	Commands   []Command
}

// New creates an empty drawing for a raster of the given shape.
func New(height, width int, background core.Color) *Drawing {
	return &Drawing{Height: height, Width: width, Background: background}
}

// Add appends commands to the program.
func (d *Drawing) Add(cmds ...Command) {
	d.Commands = append(d.Commands, cmds...)
}

// String serializes the drawing in program-file syntax.
// Exact inverse of Parse.
func (d *Drawing) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n%d\n%s\n", d.Height, d.Width, d.Background)
	for _, cmd := range d.Commands {
		sb.WriteString(cmd.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads a program file: height, width, and background color on the
// first three lines, then one command per line.
func Parse(text string) (*Drawing, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 3 {
		return nil, &ParseError{Line: len(lines), Reason: "incomplete header (want height, width, background)"}
	}

	height, err := parseDimension(lines[0])
	if err != nil {
		return nil, &ParseError{Line: 1, Reason: fmt.Sprintf("expected the height: %v", err)}
	}
	width, err := parseDimension(lines[1])
	if err != nil {
		return nil, &ParseError{Line: 2, Reason: fmt.Sprintf("expected the width: %v", err)}
	}

	bgLine := strings.TrimSpace(lines[2])
	if len(bgLine) != 1 {
		return nil, &ParseError{Line: 3, Reason: fmt.Sprintf("expected the background color, a single hex digit, got %q", lines[2])}
	}
	background, err := core.ParseColor(bgLine[0])
	if err != nil {
		return nil, &ParseError{Line: 3, Reason: err.Error()}
	}

	d := New(height, width, background)
	for i, line := range lines[3:] {
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, &ParseError{Line: i + 4, Reason: err.Error()}
		}
		d.Add(cmd)
	}
	return d, nil
}

func parseDimension(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not a positive dimension", n)
	}
	return n, nil
}

// Draw interprets the program into a fresh raster. The cursor starts at
// (0,0) and every command is applied in order. If any command paints out
// of bounds the whole interpretation fails with a CommandError and no
// raster is returned; callers never observe a partially drawn result.
func (d *Drawing) Draw() (*raster.Raster, error) {
	r := raster.New(d.Height, d.Width, d.Background)
	pos := core.Position{}

	for i, cmd := range d.Commands {
		var err error
		pos, err = cmd.Apply(r, pos)
		if err != nil {
			return nil, &CommandError{Index: i, Cmd: cmd, Err: err}
		}
	}
	return r, nil
}
