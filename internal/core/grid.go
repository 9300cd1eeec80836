package core

import "strings"

// Blank marks a cell that has not been assigned a letter yet.
const Blank byte = 0

// Grid is a square board of letters.
// Cells are stored in row-major order: index = row*Size + col.
type Grid struct {
	size  int
	cells []byte
}

// NewGrid creates an empty size×size grid with every cell Blank.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		size:  size,
		cells: make([]byte, size*size),
	}
}

// GridFromRows builds a grid from equal-length rows of letters.
// Short rows are padded with Blank; extra columns are ignored.
func GridFromRows(rows ...string) *Grid {
	g := NewGrid(len(rows))
	for r, row := range rows {
		for c := 0; c < g.size && c < len(row); c++ {
			g.Set(P(r, c), row[c])
		}
	}
	return g
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// index converts a position to a flat array index.
func (g *Grid) index(p Pos) int {
	return p.Row*g.size + p.Col
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// At returns the letter at the given position, or Blank if out of bounds.
func (g *Grid) At(p Pos) byte {
	if !g.InBounds(p) {
		return Blank
	}
	return g.cells[g.index(p)]
}

// Set writes a letter at the given position.
// Out-of-bounds positions are silently ignored.
func (g *Grid) Set(p Pos, letter byte) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = letter
	}
}

// Filled returns true if every cell holds a letter.
func (g *Grid) Filled() bool {
	for _, c := range g.cells {
		if c == Blank {
			return false
		}
	}
	return true
}

// CellCount returns the number of cells in the grid.
func (g *Grid) CellCount() int {
	return len(g.cells)
}

// Word concatenates the letters along a path.
func (g *Grid) Word(path []Pos) string {
	var sb strings.Builder
	sb.Grow(len(path))
	for _, p := range path {
		sb.WriteByte(g.At(p))
	}
	return sb.String()
}

// Rows returns the grid contents one string per row.
// Blank cells render as '.'.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	for r := 0; r < g.size; r++ {
		row := make([]byte, g.size)
		for c := 0; c < g.size; c++ {
			ch := g.At(P(r, c))
			if ch == Blank {
				ch = '.'
			}
			row[c] = ch
		}
		rows[r] = string(row)
	}
	return rows
}

// String returns the rows joined with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}
