package search

// Options configures a search Driver (ambient configuration layer). The
// zero value is not valid; use DefaultOptions and override individual
// fields.
type Options struct {
	// FewestTools selects the RGD heuristic's tool-counting mode. The
	// Driver itself never reads this field; it exists so a caller building
	// both a Driver and an RGD heuristic from one Options value (as
	// cmd/pushworld does) has a single place to set it.
	FewestTools bool

	// NumActionGroups is the number of action permutations the
	// RandomActionIterator precomputes (§4.8).
	NumActionGroups int

	// Seed is the fixed PRNG seed used to build the action permutations,
	// so that runs are reproducible.
	Seed int64
}

// DefaultOptions returns the driver's default configuration: 1000 action
// groups built from seed 42 (§4.8), fewest-tools mode off.
func DefaultOptions() Options {
	return Options{
		FewestTools:     false,
		NumActionGroups: 1000,
		Seed:            42,
	}
}
