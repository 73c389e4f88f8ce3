package heuristic

import (
	"log/slog"
	"math"

	"pushworld/board"
	"pushworld/dtg"
	"pushworld/metrics"
	"pushworld/position"
)

// pushingCostKey memoizes RGD.getPushingCosts by its five defining
// arguments (§3 PushingCostCache).
type pushingCostKey struct {
	pusherID       int
	pusherPosition int
	pusheeID       int
	pusheeStart    int
	pusheeEnd      int
}

var actionByDisplacement = map[position.Position]position.Action{
	position.Left.Displacement():  position.Left,
	position.Right.Displacement(): position.Right,
	position.Up.Displacement():    position.Up,
	position.Down.Displacement():  position.Down,
}

// RGD is the Recursive Graph Distance heuristic (§4.4): it estimates the
// cost to push each goal object to its target by recursively decomposing
// pushes into "tool" pushes over per-object feasibility graphs.
type RGD struct {
	puzzle      *board.Puzzle
	fewestTools bool

	graphs        map[int]dtg.FeasibleMovementGraph
	pathDistances map[int]*dtg.PathDistances
	pushingCosts  map[pushingCostKey]map[int]float64

	logger  *slog.Logger
	metrics *metrics.Collector
}

// RGDOption configures an RGD heuristic.
type RGDOption func(*RGD)

// WithMetrics attaches a metrics.Collector that the heuristic reports
// pushing-cost cache hits and misses to.
func WithMetrics(c *metrics.Collector) RGDOption {
	return func(r *RGD) { r.metrics = c }
}

// NewRGD builds the per-object domain transition graphs for puzzle and
// returns an RGD heuristic over them. When fewestTools is true, each goal
// object's cost is computed with the smallest number of intermediate tool
// objects that yields a finite cost; when false, costs are computed
// permitting as many tool objects as the puzzle has (§4.4).
func NewRGD(puzzle *board.Puzzle, fewestTools bool, opts ...RGDOption) *RGD {
	logger := slog.Default()
	graphs := dtg.Build(puzzle, logger)

	pathDistances := make(map[int]*dtg.PathDistances, len(graphs))
	for id, g := range graphs {
		pathDistances[id] = dtg.NewPathDistances(g)
	}

	r := &RGD{
		puzzle:        puzzle,
		fewestTools:   fewestTools,
		graphs:        graphs,
		pathDistances: pathDistances,
		pushingCosts:  make(map[pushingCostKey]map[int]float64),
		logger:        logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Estimate implements Heuristic. It sums, over every goal object, the
// estimated cost of pushing that object from its current position to its
// goal position; an infinite cost for any goal object makes the whole
// estimate infinite (§4.4's "contracts").
func (r *RGD) Estimate(rs position.RelativeState) float64 {
	state := rs.State
	total := 0.0

	for k, goalPos := range r.puzzle.Goal {
		objectID := k + 1
		goalEncoded := goalPos.Encode()

		var cost float64
		if r.fewestTools {
			cost = r.fewestToolsGoalCost(state, objectID, goalEncoded)
		} else {
			cost = r.getGoalCost(state, objectID, goalEncoded, r.puzzle.NumObjects()-2)
		}

		if math.IsInf(cost, 1) {
			return math.Inf(1)
		}
		total += cost
	}

	return total
}

// fewestToolsGoalCost tries increasing pushing depths until the first
// finite cost is found, giving the cost achievable with the fewest tools.
func (r *RGD) fewestToolsGoalCost(state position.State, objectID, goalEncoded int) float64 {
	maxDepth := r.puzzle.NumObjects() - 2
	for depth := 0; depth <= maxDepth; depth++ {
		if cost := r.getGoalCost(state, objectID, goalEncoded, depth); !math.IsInf(cost, 1) {
			return cost
		}
	}
	return math.Inf(1)
}

// getGoalCost estimates the cost to move objectID from its position in
// state to goalEncoded, using at most pushingDepth intermediate tools
// (§4.4).
func (r *RGD) getGoalCost(state position.State, objectID, goalEncoded, pushingDepth int) float64 {
	startEncoded := state[objectID].Encode()
	if startEncoded == goalEncoded {
		return 0
	}

	minCost := math.Inf(1)
	graph := r.graphs[objectID]
	distances := r.pathDistances[objectID]

	for effectEncoded := range graph[startEncoded] {
		d := distances.GetDistance(effectEncoded, goalEncoded)
		if d >= minCost {
			continue
		}

		rec := r.getRecursivePushingCost(state, objectID, startEncoded, effectEncoded, nil, pushingDepth, minCost-d)
		total := d + rec
		if total < minCost {
			minCost = total
		}
	}

	return minCost
}

// getRecursivePushingCost estimates the cost of moving objectID from
// currentPosition to the adjacent effectPosition, considering every
// candidate pusher not already in skippedIDs, down to pushingDepth levels
// of indirection (§4.4).
func (r *RGD) getRecursivePushingCost(state position.State, objectID, currentPosition, effectPosition int, skippedIDs map[int]struct{}, pushingDepth int, costUpperBound float64) float64 {
	nextSkipped := make(map[int]struct{}, len(skippedIDs)+1)
	for id := range skippedIDs {
		nextSkipped[id] = struct{}{}
	}
	nextSkipped[objectID] = struct{}{}

	var pushers []int
	if pushingDepth == 0 {
		pushers = []int{0}
	} else {
		for id := 1; id < r.puzzle.NumObjects(); id++ {
			if _, skip := nextSkipped[id]; skip {
				continue
			}
			pushers = append(pushers, id)
		}
	}

	minCost := costUpperBound

	for _, pusherID := range pushers {
		costs := r.getPushingCosts(pusherID, state[pusherID].Encode(), objectID, currentPosition, effectPosition)

		for pusherNextPosition, pusherDistanceCost := range costs {
			if pusherDistanceCost >= minCost {
				continue
			}

			var total float64
			if pusherID == 0 {
				total = pusherDistanceCost + 1
			} else {
				rec := r.getRecursivePushingCost(state, pusherID, state[pusherID].Encode(), pusherNextPosition, nextSkipped, pushingDepth-1, minCost-pusherDistanceCost)
				total = pusherDistanceCost + rec
			}

			if total < minCost {
				minCost = total
			}
		}
	}

	return minCost
}

// getPushingCosts returns, for the given pusher and the push it must
// perform (moving pusheeID from pusheeStart to the adjacent pusheeEnd), a
// map from each position adjacent to pusherPosition in the pusher's DTG to
// the cost of the pusher reaching a spot from which it executes that push
// (§4.4). Results are memoized by the five arguments.
func (r *RGD) getPushingCosts(pusherID, pusherPosition, pusheeID, pusheeStart, pusheeEnd int) map[int]float64 {
	key := pushingCostKey{
		pusherID:       pusherID,
		pusherPosition: pusherPosition,
		pusheeID:       pusheeID,
		pusheeStart:    pusheeStart,
		pusheeEnd:      pusheeEnd,
	}
	if cached, ok := r.pushingCosts[key]; ok {
		r.metrics.IncRGDCacheHit()
		return cached
	}
	r.metrics.IncRGDCacheMiss()

	displacement := position.Decode(pusheeEnd).Sub(position.Decode(pusheeStart))
	result := make(map[int]float64)

	action, ok := actionByDisplacement[displacement]
	if !ok {
		r.pushingCosts[key] = result
		return result
	}

	pusherGraph := r.graphs[pusherID]
	neighbors := pusherGraph[pusherPosition]
	pusherDistances := r.pathDistances[pusherID]

	for _, rel := range r.puzzle.Collisions.DynamicRelatives(action, pusherID, pusheeID) {
		pushStart := position.Decode(pusheeStart).Add(rel).Encode()
		pushEnd := position.Decode(pushStart).Add(displacement).Encode()

		if !pusherGraph.Has(pushStart, pushEnd) {
			continue
		}

		for nextPos := range neighbors {
			var cost float64
			if pushStart == pusherPosition && pushEnd == nextPos {
				cost = 0
			} else {
				d := pusherDistances.GetDistance(nextPos, pushStart)
				if math.IsInf(d, 1) {
					continue
				}
				cost = d + 1
			}

			if existing, ok := result[nextPos]; !ok || cost < existing {
				result[nextPos] = cost
			}
		}
	}

	r.pushingCosts[key] = result
	return result
}
