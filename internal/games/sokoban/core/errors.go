package core

import "errors"

var (
	// ErrPlayerCount means a level does not contain exactly one player cell.
	ErrPlayerCount = errors.New("level must contain exactly one player")

	// ErrDimensionMismatch means level data does not match the session grid size.
	ErrDimensionMismatch = errors.New("level dimensions do not match grid size")

	// ErrInvalidCell means a level grid holds a value that is not a live cell type.
	ErrInvalidCell = errors.New("invalid cell value")

	// ErrLevelOutOfRange means a level number outside 1..LastLevel was requested.
	ErrLevelOutOfRange = errors.New("level out of range")
)
