// Package pwp parses PushWorld puzzle files (§6): a whitespace-separated
// grid of tagged cells describing the agent, walls, movable objects, and
// goals, from which it builds a board.Puzzle.
package pwp

import "errors"

var (
	// ErrMissingFile is returned when the puzzle file cannot be opened.
	ErrMissingFile = errors.New("pwp: unable to open puzzle file")
	// ErrRowWidth is returned when a puzzle's rows do not all contain the
	// same number of cells.
	ErrRowWidth = errors.New("pwp: rows do not contain the same number of cells")
	// ErrEmptyPuzzle is returned when a puzzle file contains no rows.
	ErrEmptyPuzzle = errors.New("pwp: puzzle file has no rows")
	// ErrMissingAgent is returned when no cell is tagged "a".
	ErrMissingAgent = errors.New("pwp: puzzle has no agent cell (tag \"a\")")
)
