package search

import (
	"math/rand"

	"pushworld/position"
)

// RandomActionIterator hands out permutations of the four actions, cycling
// through a fixed precomputed pool so that expansion order is randomized
// without systematic bias but remains reproducible across runs (§4.8).
type RandomActionIterator struct {
	groups []([position.NumActions]position.Action)
	next   int
}

// NewRandomActionIterator builds numGroups permutations of position.All
// using a PRNG seeded with seed.
func NewRandomActionIterator(numGroups int, seed int64) *RandomActionIterator {
	rng := rand.New(rand.NewSource(seed))
	groups := make([]([position.NumActions]position.Action), numGroups)

	for i := range groups {
		perm := position.All
		rng.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })
		groups[i] = perm
	}

	return &RandomActionIterator{groups: groups}
}

// Next returns the next action-permutation group, cycling back to the start
// once every group has been handed out.
func (it *RandomActionIterator) Next() [position.NumActions]position.Action {
	g := it.groups[it.next]
	it.next = (it.next + 1) % len(it.groups)
	return g
}
