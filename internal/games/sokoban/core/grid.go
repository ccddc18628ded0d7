package core

import (
	"fmt"
	"strings"
)

// Grid is the live board of a level.
// Cells are stored in row-major order: index = row*Cols + col.
// Dimensions are fixed at construction.
type Grid struct {
	rows  int
	cols  int
	cells []CellType
}

// NewGrid creates an all-empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellType, rows*cols),
	}
}

// GridFromInts builds a grid from level file values.
// Every row must have the requested number of columns and every value must
// be a live cell type.
func GridFromInts(data [][]int, rows, cols int) (*Grid, error) {
	if len(data) != rows {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrDimensionMismatch, len(data), rows)
	}
	g := NewGrid(rows, cols)
	for r, line := range data {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, r, len(line), cols)
		}
		for c, v := range line {
			if v < 0 || v > int(SolutionMarker) || !CellType(v).Live() {
				return nil, fmt.Errorf("%w: %d at %s", ErrInvalidCell, v, C(r, c))
			}
			g.cells[g.index(r, c)] = CellType(v)
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("core: cell %s outside %dx%d grid", C(row, col), g.rows, g.cols))
	}
	return row*g.cols + col
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// CellType returns the type of the cell at (row, col).
// Out-of-range access is a programmer error and panics.
func (g *Grid) CellType(row, col int) CellType {
	return g.cells[g.index(row, col)]
}

// SetCellType overwrites the cell at (row, col).
// Out-of-range access is a programmer error and panics.
func (g *Grid) SetCellType(row, col int, t CellType) {
	g.cells[g.index(row, col)] = t
}

// At is CellType addressed by coordinate.
func (g *Grid) At(c Coord) CellType {
	return g.CellType(c.Row, c.Col)
}

// Set is SetCellType addressed by coordinate.
func (g *Grid) Set(c Coord, t CellType) {
	g.SetCellType(c.Row, c.Col, t)
}

// Find returns the coordinates of all cells of the given type in row-major order.
func (g *Grid) Find(t CellType) []Coord {
	var coords []Coord
	for i, cell := range g.cells {
		if cell == t {
			coords = append(coords, C(i/g.cols, i%g.cols))
		}
	}
	return coords
}

// Count returns the number of cells of the given type.
func (g *Grid) Count(t CellType) int {
	n := 0
	for _, cell := range g.cells {
		if cell == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellType, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// Ints returns the grid in level file encoding.
func (g *Grid) Ints() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			out[r][c] = int(g.CellType(r, c))
		}
	}
	return out
}

// String renders the grid one row per line using the digits of the file encoding.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteByte('0' + byte(g.CellType(r, c)))
		}
	}
	return sb.String()
}
