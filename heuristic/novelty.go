package heuristic

import "pushworld/position"

// noveltyCore holds the visited-set bookkeeping shared by both novelty
// variants (§4.5): per-object visited singleton positions, and per
// unordered index pair, visited position pairs.
type noveltyCore struct {
	stateSize int
	positions []map[int]struct{}
	pairs     [][]map[[2]int]struct{} // only pairs[i][j] with i<j are used
}

func newNoveltyCore(stateSize int) *noveltyCore {
	positions := make([]map[int]struct{}, stateSize)
	for i := range positions {
		positions[i] = make(map[int]struct{})
	}

	pairs := make([][]map[[2]int]struct{}, stateSize)
	for i := range pairs {
		pairs[i] = make([]map[[2]int]struct{}, stateSize)
		for j := range pairs[i] {
			pairs[i][j] = make(map[[2]int]struct{})
		}
	}

	return &noveltyCore{stateSize: stateSize, positions: positions, pairs: pairs}
}

// observe visits every index in touched, updating the visited sets, and
// returns 1 if a singleton position is new, else 2 if a position pair is
// new, else 3. touched need not be sorted.
func (c *noveltyCore) observe(state position.State, touched []int) int {
	novelty := 3

	for _, i := range touched {
		pi := state[i].Encode()
		if _, seen := c.positions[i][pi]; !seen {
			c.positions[i][pi] = struct{}{}
			novelty = 1
		}

		for j := 0; j < c.stateSize; j++ {
			if j == i {
				continue
			}
			lo, hi := i, j
			if lo > hi {
				lo, hi = hi, lo
			}
			key := [2]int{state[lo].Encode(), state[hi].Encode()}
			set := c.pairs[lo][hi]
			if _, seen := set[key]; !seen {
				set[key] = struct{}{}
				if novelty > 2 {
					novelty = 2
				}
			}
		}
	}

	return novelty
}

// NoveltyRelative is the RelativeState-taking novelty heuristic: it scans
// only the objects a transition actually moved, and returns a value in
// {1, 2, 3} (lowest is most novel).
type NoveltyRelative struct {
	core *noveltyCore
}

// NewNoveltyRelative constructs a novelty heuristic for a puzzle with the
// given number of objects.
func NewNoveltyRelative(stateSize int) *NoveltyRelative {
	return &NoveltyRelative{core: newNoveltyCore(stateSize)}
}

// Estimate implements Heuristic.
func (n *NoveltyRelative) Estimate(rs position.RelativeState) float64 {
	return float64(n.core.observe(rs.State, rs.Moved))
}

// NoveltyState is the legacy plain-State novelty variant used by older
// tests. Because it has no moved-object list to consult, it scans every
// index on each call; its return range is {0, 1, 2}, exactly one less than
// NoveltyRelative's for an equivalent observation (§4.5 Open Question: the
// offset between variants is intentional, not a bug).
type NoveltyState struct {
	core *noveltyCore
	all  []int
}

// NewNoveltyState constructs the legacy novelty heuristic for a puzzle with
// the given number of objects.
func NewNoveltyState(stateSize int) *NoveltyState {
	all := make([]int, stateSize)
	for i := range all {
		all[i] = i
	}
	return &NoveltyState{core: newNoveltyCore(stateSize), all: all}
}

// EstimateState returns the {0, 1, 2} novelty value for state.
func (n *NoveltyState) EstimateState(state position.State) int {
	return n.core.observe(state, n.all) - 1
}

// Estimate implements Heuristic by discarding rs.Moved and scanning every
// index, matching EstimateState's semantics.
func (n *NoveltyState) Estimate(rs position.RelativeState) float64 {
	return float64(n.EstimateState(rs.State))
}
