package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pushworld/position"
)

type constHeuristic float64

func (c constHeuristic) Estimate(position.RelativeState) float64 { return float64(c) }

func TestWeightedSumRejectsEmptyList(t *testing.T) {
	_, err := NewWeightedSum(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyHeuristicList)
}

func TestWeightedSumCombinesWeights(t *testing.T) {
	ws, err := NewWeightedSum(
		[]Heuristic{constHeuristic(2), constHeuristic(3)},
		[]float64{1e6, 1},
	)
	require.NoError(t, err)

	got := ws.Estimate(position.RelativeState{})
	assert.Equal(t, 2e6+3, got)
}

func TestWeightedSumDefaultsMissingWeightsToOne(t *testing.T) {
	ws, err := NewWeightedSum([]Heuristic{constHeuristic(5), constHeuristic(7)}, nil)
	require.NoError(t, err)

	got := ws.Estimate(position.RelativeState{})
	assert.Equal(t, 12.0, got)
}
