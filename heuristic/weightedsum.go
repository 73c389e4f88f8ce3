package heuristic

import "pushworld/position"

// weightedChild pairs a child heuristic with its contribution weight.
type weightedChild struct {
	heuristic Heuristic
	weight    float64
}

// WeightedSum combines several heuristics into one by summing their
// weighted estimates (§4.6). The canonical "N+RGD" heuristic is a
// WeightedSum of a NoveltyRelative and an RGD.
type WeightedSum struct {
	children []weightedChild
}

// NewWeightedSum returns a combinator over the given (heuristic, weight)
// pairs, evaluated and summed in the given order. It returns
// ErrEmptyHeuristicList if heuristics is empty.
func NewWeightedSum(heuristics []Heuristic, weights []float64) (*WeightedSum, error) {
	if len(heuristics) == 0 {
		return nil, ErrEmptyHeuristicList
	}

	children := make([]weightedChild, len(heuristics))
	for i, h := range heuristics {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		children[i] = weightedChild{heuristic: h, weight: w}
	}

	return &WeightedSum{children: children}, nil
}

// Estimate implements Heuristic.
func (w *WeightedSum) Estimate(rs position.RelativeState) float64 {
	total := 0.0
	for _, c := range w.children {
		total += c.weight * c.heuristic.Estimate(rs)
	}
	return total
}
