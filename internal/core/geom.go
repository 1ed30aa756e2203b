// Package core provides the fundamental types of the drawing language:
// palette colors, grid positions, and the four cursor directions.
// It contains no external dependencies to keep the interpreter and
// compressor pure and testable.
package core

import "fmt"

// Position is a cell coordinate. Row grows downward, Col grows rightward,
// with (0,0) the top-left corner of a raster. A position is free to leave
// the raster while the cursor merely moves; only painting is bounded.
type Position struct {
	Row, Col int
}

// Add returns the position shifted by a step vector.
func (p Position) Add(step Position) Position {
	return Position{Row: p.Row + step.Row, Col: p.Col + step.Col}
}

// Neg returns the opposite step vector.
func (p Position) Neg() Position {
	return Position{Row: -p.Row, Col: -p.Col}
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four axis-aligned cursor movements.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Step returns the unit step vector for the direction.
func (d Direction) Step() Position {
	switch d {
	case Up:
		return Position{Row: -1}
	case Down:
		return Position{Row: 1}
	case Left:
		return Position{Col: -1}
	case Right:
		return Position{Col: 1}
	}
	return Position{}
}

// String returns the direction keyword used in program files.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseDirection converts a program keyword to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("invalid direction %q (want up, down, left, or right)", s)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
