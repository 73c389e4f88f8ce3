package board

import (
	"fmt"
	"log/slog"

	"pushworld/position"
)

// Puzzle is the static description of one PushWorld puzzle: its initial
// state, goal, and the collision tables that govern its transitions (§3).
// A Puzzle and its ObjectCollisions are immutable after construction and
// may be shared by reference with arbitrarily many readers (§5).
type Puzzle struct {
	InitialState position.State
	Goal         position.Goal
	Collisions   *ObjectCollisions

	logger *slog.Logger
}

// Option configures Puzzle construction.
type Option func(*Puzzle)

// WithLogger attaches a structured logger to the puzzle for construction
// diagnostics. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Puzzle) { p.logger = l }
}

// NewPuzzle validates and assembles a Puzzle from an initial state, goal,
// and precomputed collision tables.
//
// Invariants enforced (§3): the agent occupies index 0, every goal index
// refers to a non-agent object, and the state length matches the collision
// tables' object count.
func NewPuzzle(initial position.State, goal position.Goal, collisions *ObjectCollisions, opts ...Option) (*Puzzle, error) {
	if len(initial) == 0 {
		return nil, ErrNoAgent
	}
	if collisions != nil && len(initial) != collisions.NumObjects() {
		return nil, fmt.Errorf("pushworld: state has %d objects but collisions were built for %d", len(initial), collisions.NumObjects())
	}
	if len(goal) >= len(initial) {
		return nil, fmt.Errorf("%w: %d goal entries for %d objects", ErrGoalWithoutMovable, len(goal), len(initial))
	}
	for _, p := range initial {
		if p.X < 0 || p.Y < 0 || p.X >= position.Base || p.Y >= position.Base {
			return nil, fmt.Errorf("%w: %s", ErrPositionOutOfRange, p)
		}
	}

	p := &Puzzle{
		InitialState: initial,
		Goal:         goal,
		Collisions:   collisions,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger.Debug("constructed puzzle", "objects", len(initial), "goals", len(goal))
	return p, nil
}

// NumObjects returns the number of objects in the puzzle, agent included.
func (p *Puzzle) NumObjects() int { return len(p.InitialState) }

// SatisfiesGoal reports whether every goal object occupies its target
// position in state (§3: goal[k] is the target of state[k+1]).
func (p *Puzzle) SatisfiesGoal(state position.State) bool {
	for k, target := range p.Goal {
		if state[k+1] != target {
			return false
		}
	}
	return true
}
