package heuristic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pushworld/board"
	"pushworld/position"
)

func buildOpenPuzzle(t *testing.T, size int, initial position.State, goal position.Goal) *board.Puzzle {
	t.Helper()

	var wall board.PixelSet
	for x := 0; x < size; x++ {
		wall = append(wall, position.Position{X: x, Y: 0}, position.Position{X: x, Y: size - 1})
	}
	for y := 0; y < size; y++ {
		wall = append(wall, position.Position{X: 0, Y: y}, position.Position{X: size - 1, Y: y})
	}

	movables := make([]board.PixelSet, len(initial)-1)
	for i := range movables {
		movables[i] = board.PixelSet{{X: 0, Y: 0}}
	}

	oc, err := board.NewObjectCollisions(board.Objects{
		AgentPixels:   board.PixelSet{{X: 0, Y: 0}},
		MovablePixels: movables,
		Wall:          wall,
		Width:         size,
		Height:        size,
	})
	require.NoError(t, err)

	p, err := board.NewPuzzle(initial, goal, oc)
	require.NoError(t, err)
	return p
}

func TestRGDZeroAtGoal(t *testing.T) {
	initial := position.State{{X: 1, Y: 1}, {X: 3, Y: 3}}
	goal := position.Goal{{X: 3, Y: 3}}
	p := buildOpenPuzzle(t, 5, initial, goal)

	r := NewRGD(p, false)
	assert.Equal(t, 0.0, r.Estimate(position.RelativeState{State: initial}))
}

func TestRGDFiniteForReachableGoal(t *testing.T) {
	// Agent directly left of the movable object, goal one step to its right.
	initial := position.State{{X: 1, Y: 1}, {X: 2, Y: 1}}
	goal := position.Goal{{X: 3, Y: 1}}
	p := buildOpenPuzzle(t, 5, initial, goal)

	r := NewRGD(p, false)
	cost := r.Estimate(position.RelativeState{State: initial})
	require.False(t, math.IsInf(cost, 1))
	assert.Greater(t, cost, 0.0)
}

func TestRGDFewestToolsAgreesWithDirectPush(t *testing.T) {
	initial := position.State{{X: 1, Y: 1}, {X: 2, Y: 1}}
	goal := position.Goal{{X: 3, Y: 1}}
	p := buildOpenPuzzle(t, 5, initial, goal)

	fewest := NewRGD(p, true)
	full := NewRGD(p, false)

	rs := position.RelativeState{State: initial}
	assert.Equal(t, full.Estimate(rs), fewest.Estimate(rs))
}

func TestRGDNonNegative(t *testing.T) {
	initial := position.State{{X: 1, Y: 1}, {X: 2, Y: 2}}
	goal := position.Goal{{X: 3, Y: 3}}
	p := buildOpenPuzzle(t, 5, initial, goal)

	r := NewRGD(p, false)
	for _, s := range []position.State{
		initial,
		{{X: 2, Y: 1}, {X: 2, Y: 2}},
		{{X: 1, Y: 2}, {X: 2, Y: 2}},
	} {
		cost := r.Estimate(position.RelativeState{State: s})
		assert.GreaterOrEqual(t, cost, 0.0)
	}
}
