// Package core provides the fundamental board types for the word hunt engine.
// It contains no external dependencies to keep game logic pure and testable.
package core

import "fmt"

// Pos is a cell position on the grid, 0-indexed from the top-left corner.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the position n steps away in the given direction.
func (p Pos) Step(d Dir, n int) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

// Chebyshev returns the king-move distance to another position.
func (p Pos) Chebyshev(other Pos) int {
	return Max(Abs(p.Row-other.Row), Abs(p.Col-other.Col))
}

// Adjacent reports whether other touches p on a side or corner.
// A position is never adjacent to itself.
func (p Pos) Adjacent(other Pos) bool {
	return p != other && p.Chebyshev(other) <= 1
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
