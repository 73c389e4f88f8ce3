package dtg

import "math"

// Reverse returns a new graph with every edge inverted. Used so that
// PathDistances can answer "distance from source to target in g" via a
// single-source BFS rooted at target in the reversed graph.
func Reverse(g FeasibleMovementGraph) FeasibleMovementGraph {
	reversed := newGraph()
	for from, edges := range g {
		reversed.ensureNode(from)
		for to := range edges {
			reversed.ensureNode(to)
			reversed[to][from] = struct{}{}
		}
	}
	return reversed
}

// SingleSourcePathDistances lazily runs a breadth-first search from one
// source position over a FeasibleMovementGraph, expanding one BFS level at
// a time only as far as getDistance demands (§4.3).
type SingleSourcePathDistances struct {
	graph     FeasibleMovementGraph
	frontier  []int
	depth     int
	distances map[int]int
}

// NewSingleSourcePathDistances seeds a lazy BFS rooted at source.
func NewSingleSourcePathDistances(graph FeasibleMovementGraph, source int) *SingleSourcePathDistances {
	return &SingleSourcePathDistances{
		graph:     graph,
		frontier:  []int{source},
		distances: map[int]int{source: 0},
	}
}

// GetDistance returns the BFS hop count from the source to target, or +Inf
// if no path exists. Repeated calls reuse and extend the cached BFS state.
func (s *SingleSourcePathDistances) GetDistance(target int) float64 {
	if d, ok := s.distances[target]; ok {
		return float64(d)
	}

	for len(s.frontier) > 0 {
		s.depth++
		var next []int

		for _, p := range s.frontier {
			for q := range s.graph[p] {
				if _, seen := s.distances[q]; seen {
					continue
				}
				s.distances[q] = s.depth
				next = append(next, q)
			}
		}

		s.frontier = next
		if d, ok := s.distances[target]; ok {
			return float64(d)
		}
	}

	return math.Inf(1)
}

// PathDistances answers getDistance(source, target) queries over a
// FeasibleMovementGraph by running a lazy BFS from every position in the
// graph's reversal (§4.3).
type PathDistances struct {
	reversed FeasibleMovementGraph
	perNode  map[int]*SingleSourcePathDistances
}

// NewPathDistances builds the reversed graph once; per-position BFS state
// is allocated lazily on first use.
func NewPathDistances(graph FeasibleMovementGraph) *PathDistances {
	return &PathDistances{
		reversed: Reverse(graph),
		perNode:  make(map[int]*SingleSourcePathDistances),
	}
}

// GetDistance returns the shortest-path hop count from source to target in
// the original (non-reversed) graph, or +Inf if target is unreachable or
// absent from the graph entirely.
func (pd *PathDistances) GetDistance(source, target int) float64 {
	if _, ok := pd.reversed[target]; !ok {
		return math.Inf(1)
	}

	ssd, ok := pd.perNode[target]
	if !ok {
		ssd = NewSingleSourcePathDistances(pd.reversed, target)
		pd.perNode[target] = ssd
	}
	return ssd.GetDistance(source)
}
