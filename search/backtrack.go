package search

import (
	"pushworld/board"
	"pushworld/position"
	"pushworld/transition"
)

// BacktrackPlan walks from node to the root by following Parent pointers,
// and for each step replays all four actions against the parent's state to
// find which one reproduces the child's state (§4.8). It returns
// ErrBacktrackInvariant if no action reproduces a child at any step.
func BacktrackPlan(puzzle *board.Puzzle, node *SearchNode) (position.Plan, error) {
	var reversed position.Plan

	for node.Parent != nil {
		parent := node.Parent
		action, err := actionBetween(puzzle, parent.State, node.State)
		if err != nil {
			return nil, err
		}
		reversed = append(reversed, action)
		node = parent
	}

	plan := make(position.Plan, len(reversed))
	for i, a := range reversed {
		plan[len(reversed)-1-i] = a
	}
	return plan, nil
}

func actionBetween(puzzle *board.Puzzle, from, to position.State) (position.Action, error) {
	for _, a := range position.All {
		if transition.Next(puzzle, from, a).State.Equal(to) {
			return a, nil
		}
	}
	return 0, ErrBacktrackInvariant
}
