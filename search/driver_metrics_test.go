package search

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pushworld/heuristic"
	"pushworld/metrics"
	"pushworld/pq"
	"pushworld/position"
)

func TestDriverReportsMetrics(t *testing.T) {
	initial := position.State{{X: 1, Y: 1}, {X: 2, Y: 1}}
	goal := position.Goal{{X: 3, Y: 1}}
	p := buildOpenPuzzle(t, 5, initial, goal)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	driver := NewDriver(DefaultOptions(), WithMetrics(collector))
	h := heuristic.NewRGD(p, false, heuristic.WithMetrics(collector))
	frontier := pq.NewFibonacciQueue[*SearchNode]()

	plan, found, err := driver.Run(p, h, frontier)
	require.NoError(t, err)
	require.True(t, found)
	require.NotEmpty(t, plan)

	assert.Greater(t, testutil.ToFloat64(collector.NodesExpanded), 0.0)
	assert.Greater(t, testutil.ToFloat64(collector.StatesVisited), 0.0)
	assert.Equal(t, 1, testutil.CollectAndCount(collector.SearchDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Outcomes.WithLabelValues("solved")))
	assert.Greater(t, testutil.ToFloat64(collector.RGDCacheLookups.WithLabelValues("miss")), 0.0)
}

func TestDriverWithNilMetricsIsANoOp(t *testing.T) {
	initial := position.State{{X: 1, Y: 1}, {X: 2, Y: 1}}
	goal := position.Goal{{X: 3, Y: 1}}
	p := buildOpenPuzzle(t, 5, initial, goal)

	driver := NewDriver(DefaultOptions())
	h := heuristic.NewRGD(p, false)
	frontier := pq.NewFibonacciQueue[*SearchNode]()

	_, found, err := driver.Run(p, h, frontier)
	require.NoError(t, err)
	assert.True(t, found)
}
