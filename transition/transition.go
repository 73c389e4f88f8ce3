// Package transition implements the deterministic PushWorld transition
// function: given a state and an action, it produces the next state and the
// set of objects that moved, simulating multi-body pushing in one step
// (§4.2).
package transition

import (
	"pushworld/board"
	"pushworld/position"
)

// Next computes the state that results from performing action in state,
// against puzzle's collision tables. It implements transitive pushing with
// transitive stopping: if any member of a pushing chain would collide with
// a wall, the entire action is cancelled and the returned RelativeState
// carries the original state with an empty Moved list.
//
// For identical (puzzle, state, action) inputs, Next always returns
// identical results (§4.2's determinism contract).
func Next(puzzle *board.Puzzle, state position.State, action position.Action) position.RelativeState {
	collisions := puzzle.Collisions
	agentPos := state[0]

	if collisions.IsStaticCollision(action, 0, agentPos) {
		return position.RelativeState{State: state}
	}

	numObjects := len(state)
	pushed := make([]bool, numObjects)
	pushed[0] = true

	frontier := make([]int, 1, numObjects)
	frontier[0] = 0

	for len(frontier) > 0 {
		o := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		objectPos := state[o]

		for q := 1; q < numObjects; q++ {
			if pushed[q] {
				continue
			}
			rel := objectPos.Sub(state[q])
			if !collisions.IsDynamicCollision(action, o, q, rel) {
				continue
			}

			if collisions.IsStaticCollision(action, q, state[q]) {
				// Transitive stopping: nothing in the chain moves.
				return position.RelativeState{State: state}
			}

			pushed[q] = true
			frontier = append(frontier, q)
		}
	}

	d := action.Displacement()
	next := make(position.State, numObjects)
	moved := make([]int, 0, numObjects)

	for i, p := range state {
		if pushed[i] {
			next[i] = p.Add(d)
			moved = append(moved, i)
		} else {
			next[i] = p
		}
	}

	return position.RelativeState{State: next, Moved: moved}
}

// IsValidPlan replays plan from puzzle's initial state and reports whether
// the resulting state satisfies the goal.
func IsValidPlan(puzzle *board.Puzzle, plan position.Plan) bool {
	state := puzzle.InitialState
	for _, a := range plan {
		state = Next(puzzle, state, a).State
	}
	return puzzle.SatisfiesGoal(state)
}

// Replay applies plan to the initial state and returns the resulting
// state, without checking the goal.
func Replay(puzzle *board.Puzzle, plan position.Plan) position.State {
	state := puzzle.InitialState
	for _, a := range plan {
		state = Next(puzzle, state, a).State
	}
	return state
}
