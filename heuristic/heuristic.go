// Package heuristic implements the PushWorld planner's cost estimators: the
// novelty heuristic (§4.5), the Recursive Graph Distance heuristic (§4.4),
// and the weighted-sum combinator (§4.6).
package heuristic

import (
	"errors"

	"pushworld/position"
)

// Heuristic estimates the cost to reach the goal from a RelativeState. The
// search driver calls Estimate once for every state it pushes onto the
// frontier (the root and each new child); implementations may
// mutate internal caches on every call and are not safe for concurrent use
// (§5).
type Heuristic interface {
	Estimate(rs position.RelativeState) float64
}

// ErrEmptyHeuristicList is returned by NewWeightedSum when constructed with
// no child heuristics (§4.6).
var ErrEmptyHeuristicList = errors.New("heuristic: weighted sum requires at least one child heuristic")
