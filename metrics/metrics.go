// Package metrics exposes the planner's Prometheus instrumentation: nodes
// expanded, distinct successor states added to the visited set, search
// wall time, and
// the RGD heuristic's pushing-cost cache hit ratio, all optional and safe
// to leave unregistered in tests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the counters and histograms a Driver and an RGD
// heuristic report to.
type Collector struct {
	NodesExpanded  prometheus.Counter
	StatesVisited  prometheus.Counter
	SearchDuration prometheus.Histogram
	Outcomes       *prometheus.CounterVec
	RGDCacheLookups *prometheus.CounterVec
}

// NewCollector builds a Collector and registers its metrics with reg. Pass
// a fresh prometheus.NewRegistry() in tests to avoid colliding with the
// default global registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		NodesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pushworld",
			Subsystem: "search",
			Name:      "nodes_expanded_total",
			Help:      "Number of search nodes popped from the frontier and expanded.",
		}),
		StatesVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pushworld",
			Subsystem: "search",
			Name:      "states_visited_total",
			Help:      "Number of distinct successor states inserted into the visited set (the initial state is not counted).",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pushworld",
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall-clock time spent inside a single best-first search run.",
			Buckets:   prometheus.DefBuckets,
		}),
		Outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pushworld",
			Subsystem: "search",
			Name:      "outcomes_total",
			Help:      "Search run outcomes, labeled by result.",
		}, []string{"result"}),
		RGDCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pushworld",
			Subsystem: "heuristic",
			Name:      "rgd_cache_lookups_total",
			Help:      "RGD pushing-cost cache lookups, labeled by hit or miss.",
		}, []string{"result"}),
	}

	if reg != nil {
		reg.MustRegister(c.NodesExpanded, c.StatesVisited, c.SearchDuration, c.Outcomes, c.RGDCacheLookups)
	}
	return c
}

// IncNodesExpanded increments the nodes-expanded counter.
func (c *Collector) IncNodesExpanded() {
	if c == nil {
		return
	}
	c.NodesExpanded.Inc()
}

// IncStatesVisited increments the states-visited counter.
func (c *Collector) IncStatesVisited() {
	if c == nil {
		return
	}
	c.StatesVisited.Inc()
}

// ObserveDuration records how long a search run took.
func (c *Collector) ObserveDuration(d time.Duration) {
	if c == nil {
		return
	}
	c.SearchDuration.Observe(d.Seconds())
}

// RecordOutcome increments the outcome counter for result, one of "solved",
// "unsolved", or "error".
func (c *Collector) RecordOutcome(result string) {
	if c == nil {
		return
	}
	c.Outcomes.WithLabelValues(result).Inc()
}

// IncRGDCacheHit records a pushing-cost cache hit in RGD.getPushingCosts.
func (c *Collector) IncRGDCacheHit() {
	if c == nil {
		return
	}
	c.RGDCacheLookups.WithLabelValues("hit").Inc()
}

// IncRGDCacheMiss records a pushing-cost cache miss in RGD.getPushingCosts.
func (c *Collector) IncRGDCacheMiss() {
	if c == nil {
		return
	}
	c.RGDCacheLookups.WithLabelValues("miss").Inc()
}
