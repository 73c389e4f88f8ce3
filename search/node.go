// Package search implements the best-first search driver (§4.8): the
// frontier loop, plan reconstruction by replay, and the search
// configuration knobs.
package search

import (
	"errors"

	"pushworld/position"
)

// ErrBacktrackInvariant is raised when BacktrackPlan cannot find any action
// that reproduces a child state from its parent's state, which would mean
// the search tree was built inconsistently with the transition function.
var ErrBacktrackInvariant = errors.New("search: no action reproduces child state from parent")

// SearchNode is one node of the search tree: a state plus a pointer to the
// node it was expanded from. The root node has a nil Parent. Plans are
// reconstructed by replay rather than by recording the producing action
// (§4.8), so nodes need not store it.
type SearchNode struct {
	Parent *SearchNode
	State  position.State
}
