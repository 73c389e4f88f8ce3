package board

import "errors"

// Sentinel errors for puzzle construction, mirroring the idiom used
// throughout the AleutianAI codebase (sentinel + fmt.Errorf("%w: ...")).
var (
	ErrNoAgent            = errors.New("pushworld: puzzle has no agent object")
	ErrGoalWithoutMovable = errors.New("pushworld: goal has no associated movable object")
	ErrPositionOutOfRange = errors.New("pushworld: position exceeds the coordinate limit")
	ErrBoardTooLarge      = errors.New("pushworld: board width or height exceeds the position limit")
	ErrEmptyObject        = errors.New("pushworld: object has no pixels")
)
