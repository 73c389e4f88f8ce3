package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pushworld/position"
)

func singlePixelCollisions(t *testing.T, width, height int) *ObjectCollisions {
	t.Helper()
	oc, err := NewObjectCollisions(Objects{
		AgentPixels:   PixelSet{{X: 0, Y: 0}},
		MovablePixels: []PixelSet{{{X: 0, Y: 0}}},
		Width:         width,
		Height:        height,
	})
	require.NoError(t, err)
	return oc
}

func TestNewPuzzleRejectsMissingAgent(t *testing.T) {
	_, err := NewPuzzle(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoAgent)
}

func TestNewPuzzleRejectsGoalWithoutMovable(t *testing.T) {
	initial := position.State{{X: 0, Y: 0}, {X: 1, Y: 1}}
	goal := position.Goal{{X: 2, Y: 2}, {X: 3, Y: 3}}
	oc := singlePixelCollisions(t, 5, 5)
	_, err := NewPuzzle(initial, goal, oc)
	assert.ErrorIs(t, err, ErrGoalWithoutMovable)
}

func TestNewPuzzleRejectsOutOfRangePosition(t *testing.T) {
	initial := position.State{{X: -1, Y: 0}, {X: 1, Y: 1}}
	oc := singlePixelCollisions(t, 5, 5)
	_, err := NewPuzzle(initial, nil, oc)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
}

func TestSatisfiesGoal(t *testing.T) {
	oc := singlePixelCollisions(t, 5, 5)
	initial := position.State{{X: 0, Y: 0}, {X: 2, Y: 2}}
	goal := position.Goal{{X: 2, Y: 2}}
	p, err := NewPuzzle(initial, goal, oc)
	require.NoError(t, err)

	assert.True(t, p.SatisfiesGoal(initial))
	assert.False(t, p.SatisfiesGoal(position.State{{X: 0, Y: 0}, {X: 3, Y: 3}}))
}

func TestStaticCollisionAtBoundary(t *testing.T) {
	// Static collisions come from wall pixels only, so the board's left
	// boundary is modelled as a wall column at x = 0.
	oc, err := NewObjectCollisions(Objects{
		AgentPixels:   PixelSet{{X: 0, Y: 0}},
		MovablePixels: []PixelSet{{{X: 0, Y: 0}}},
		Wall:          PixelSet{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
		Width:         3,
		Height:        3,
	})
	require.NoError(t, err)
	assert.True(t, oc.IsStaticCollision(position.Left, 0, position.Position{X: 1, Y: 1}))
	assert.False(t, oc.IsStaticCollision(position.Right, 0, position.Position{X: 1, Y: 1}))
}

func TestDynamicCollisionDirectlyAdjacent(t *testing.T) {
	oc := singlePixelCollisions(t, 5, 5)
	// Pushing right, the pusher must sit one cell left of the pushee.
	assert.True(t, oc.IsDynamicCollision(position.Right, 0, 1, position.Position{X: -1, Y: 0}))
	assert.False(t, oc.IsDynamicCollision(position.Right, 0, 1, position.Position{X: 0, Y: -1}))
}

func TestAgentNeverAPushee(t *testing.T) {
	oc := singlePixelCollisions(t, 5, 5)
	rel := oc.DynamicRelatives(position.Right, 1, 0)
	assert.Empty(t, rel, "the agent should never appear as a pushee")
}

func TestBoardTooLarge(t *testing.T) {
	_, err := NewObjectCollisions(Objects{
		AgentPixels: PixelSet{{X: 0, Y: 0}},
		Width:       position.Base + 1,
		Height:      10,
	})
	assert.ErrorIs(t, err, ErrBoardTooLarge)
}
