// Package core provides the grid model and rules of the block-pushing puzzle.
// This package is UI-agnostic, deterministic and single-threaded.
package core

import "fmt"

// CellType is the role a grid cell currently plays.
// The numeric values match the level file encoding.
type CellType uint8

const (
	Empty CellType = iota
	Player
	Wall
	Pushable
	// SolutionMarker only appears in solution files, never in a live grid.
	SolutionMarker
)

// String returns the string representation of a cell type.
func (t CellType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Player:
		return "Player"
	case Wall:
		return "Wall"
	case Pushable:
		return "Pushable"
	case SolutionMarker:
		return "SolutionMarker"
	default:
		return fmt.Sprintf("CellType(%d)", uint8(t))
	}
}

// Live reports whether the type may appear in a grid during play.
func (t CellType) Live() bool {
	return t <= Pushable
}

// Dir is a requested movement direction.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (row, col) offset for one step in this direction.
// Up decreases the row. DirNone and unknown values return (0, 0).
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Coord is a (row, col) position on the grid.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the coordinate one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}
