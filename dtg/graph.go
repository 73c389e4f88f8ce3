// Package dtg builds the per-object Domain Transition Graphs (DTGs) that the
// RGD heuristic relies on: for every object, a graph mapping positions to
// adjacent positions reachable under some feasible combination of pushers
// (§4.3).
package dtg

import (
	"log/slog"

	"pushworld/board"
	"pushworld/position"
)

// FeasibleMovementGraph maps a position to the set of adjacent positions
// reachable from it in one feasible push. Absence of an edge proves
// infeasibility; presence does not prove feasibility (§3).
type FeasibleMovementGraph map[int]map[int]struct{}

func newGraph() FeasibleMovementGraph { return make(FeasibleMovementGraph) }

func (g FeasibleMovementGraph) ensureNode(p int) {
	if _, ok := g[p]; !ok {
		g[p] = make(map[int]struct{})
	}
}

// Has reports whether the edge from -> to is present.
func (g FeasibleMovementGraph) Has(from, to int) bool {
	edges, ok := g[from]
	if !ok {
		return false
	}
	_, ok = edges[to]
	return ok
}

// Neighbors returns the destinations reachable in one feasible step from p.
// The zero value is returned (a nil map) if p has no recorded node.
func (g FeasibleMovementGraph) Neighbors(p int) map[int]struct{} { return g[p] }

// transition is one candidate edge: object moving from start to end.
type transition struct {
	object     int
	start, end int
}

// frontierItem is a (object, position) pair awaiting expansion.
type frontierItem struct {
	object   int
	position int
}

// builder runs the work-list fixed-point algorithm of §4.3.
type builder struct {
	puzzle   *board.Puzzle
	graphs   map[int]FeasibleMovementGraph
	frontier []frontierItem
	pending  map[transition][]transition
	queued   map[frontierItem]struct{}
	logger   *slog.Logger
}

// Build constructs a FeasibleMovementGraph for every object in puzzle.
func Build(puzzle *board.Puzzle, logger *slog.Logger) map[int]FeasibleMovementGraph {
	if logger == nil {
		logger = slog.Default()
	}
	b := &builder{
		puzzle:  puzzle,
		graphs:  make(map[int]FeasibleMovementGraph, puzzle.NumObjects()),
		pending: make(map[transition][]transition),
		queued:  make(map[frontierItem]struct{}),
		logger:  logger,
	}

	for i, p := range puzzle.InitialState {
		g := newGraph()
		g.ensureNode(p.Encode())
		b.graphs[i] = g
		b.pushFrontier(frontierItem{object: i, position: p.Encode()})
	}

	for len(b.frontier) > 0 {
		item := b.frontier[len(b.frontier)-1]
		b.frontier = b.frontier[:len(b.frontier)-1]
		delete(b.queued, item)
		b.expand(item)
	}

	b.logger.Debug("domain transition graphs built", "objects", len(b.graphs))
	return b.graphs
}

func (b *builder) pushFrontier(item frontierItem) {
	if _, ok := b.queued[item]; ok {
		return
	}
	b.queued[item] = struct{}{}
	b.frontier = append(b.frontier, item)
}

func (b *builder) expand(item frontierItem) {
	collisions := b.puzzle.Collisions
	pos := position.Decode(item.position)

	for a := 0; a < position.NumActions; a++ {
		action := position.Action(a)

		if item.object == 0 {
			if collisions.IsStaticCollision(action, 0, pos) {
				continue
			}
			t := transition{object: 0, start: item.position, end: pos.Add(action.Displacement()).Encode()}
			b.addTransition(t)
			continue
		}

		if collisions.IsStaticCollision(action, item.object, pos) {
			continue
		}

		end := pos.Add(action.Displacement()).Encode()
		t := transition{object: item.object, start: item.position, end: end}

		justified := false
		for pusher := 0; pusher < b.puzzle.NumObjects(); pusher++ {
			if pusher == item.object {
				continue
			}
			for _, rel := range collisions.DynamicRelatives(action, pusher, item.object) {
				pushStart := pos.Add(rel).Encode()
				pushEnd := position.Decode(pushStart).Add(action.Displacement()).Encode()

				if b.graphs[pusher].Has(pushStart, pushEnd) {
					b.addTransition(t)
					justified = true
					break
				}

				pusherTransition := transition{object: pusher, start: pushStart, end: pushEnd}
				b.pending[pusherTransition] = append(b.pending[pusherTransition], t)
			}
			if justified {
				break
			}
		}
	}
}

// addTransition is the §4.3 add_transition primitive: idempotent insertion
// that recursively justifies every dependent transition once the key edge
// is proven feasible.
func (b *builder) addTransition(t transition) {
	g := b.graphs[t.object]
	edges := g[t.start]
	if edges == nil {
		edges = make(map[int]struct{})
		g[t.start] = edges
	}
	if _, exists := edges[t.end]; exists {
		return
	}
	edges[t.end] = struct{}{}

	for _, dependent := range b.pending[t] {
		b.addTransition(dependent)
	}
	delete(b.pending, t)

	if _, ok := g[t.end]; !ok {
		g.ensureNode(t.end)
		b.pushFrontier(frontierItem{object: t.object, position: t.end})
	}
}
