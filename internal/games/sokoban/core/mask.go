package core

import "fmt"

// SolutionMask marks the target cells of a level.
// It is immutable once built.
type SolutionMask struct {
	rows    int
	cols    int
	target  []bool
	targets []Coord
}

// MaskFromInts builds a solution mask from solution file values.
// A value of 1 marks a target; any other value is a non-target.
func MaskFromInts(data [][]int, rows, cols int) (*SolutionMask, error) {
	if len(data) != rows {
		return nil, fmt.Errorf("%w: solution has %d rows, want %d", ErrDimensionMismatch, len(data), rows)
	}
	m := &SolutionMask{
		rows:   rows,
		cols:   cols,
		target: make([]bool, rows*cols),
	}
	for r, line := range data {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: solution row %d has %d columns, want %d", ErrDimensionMismatch, r, len(line), cols)
		}
		for c, v := range line {
			if v == 1 {
				m.target[r*cols+c] = true
				m.targets = append(m.targets, C(r, c))
			}
		}
	}
	return m, nil
}

// IsTarget reports whether (row, col) is a target cell.
// Out-of-range coordinates are never targets.
func (m *SolutionMask) IsTarget(row, col int) bool {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return false
	}
	return m.target[row*m.cols+col]
}

// Targets returns the target coordinates in row-major order.
// The returned slice is shared and must not be modified.
func (m *SolutionMask) Targets() []Coord {
	return m.targets
}
