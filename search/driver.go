package search

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pushworld/board"
	"pushworld/heuristic"
	"pushworld/metrics"
	"pushworld/pq"
	"pushworld/position"
	"pushworld/transition"
)

// Driver runs the best-first search of §4.8 against a Puzzle with a
// caller-supplied heuristic.
type Driver struct {
	opts    Options
	logger  *slog.Logger
	metrics *metrics.Collector
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithLogger attaches a structured logger for per-run milestones.
func WithLogger(l *slog.Logger) DriverOption {
	return func(d *Driver) { d.logger = l }
}

// WithMetrics attaches a metrics.Collector that the driver reports
// expansion counts and run duration to.
func WithMetrics(c *metrics.Collector) DriverOption {
	return func(d *Driver) { d.metrics = c }
}

// NewDriver builds a Driver with the given options.
func NewDriver(opts Options, driverOpts ...DriverOption) *Driver {
	d := &Driver{opts: opts, logger: slog.Default()}
	for _, opt := range driverOpts {
		opt(d)
	}
	return d
}

// Run performs a best-first search of puzzle's state space using the given
// heuristic and frontier queue, returning the found plan and true, an empty
// plan and false if the frontier is exhausted with no solution, or an error
// if the search's internal invariants are violated.
func (d *Driver) Run(puzzle *board.Puzzle, h heuristic.Heuristic, frontier pq.Queue[*SearchNode]) (position.Plan, bool, error) {
	runID := uuid.NewString()
	start := time.Now()
	d.logger.Debug("search started", "run", runID)

	defer func() {
		d.metrics.ObserveDuration(time.Since(start))
	}()

	if puzzle.SatisfiesGoal(puzzle.InitialState) {
		d.metrics.RecordOutcome("solved")
		return position.Plan{}, true, nil
	}

	frontier.Clear()
	visited := map[string]struct{}{puzzle.InitialState.Key(): {}}

	root := &SearchNode{State: puzzle.InitialState}
	frontier.Push(root, h.Estimate(position.RelativeState{State: puzzle.InitialState}))

	actions := NewRandomActionIterator(d.opts.NumActionGroups, d.opts.Seed)

	for !frontier.Empty() {
		node := frontier.Pop()
		d.metrics.IncNodesExpanded()

		for _, action := range actions.Next() {
			rs := transition.Next(puzzle, node.State, action)
			key := rs.State.Key()
			if _, seen := visited[key]; seen {
				continue
			}

			child := &SearchNode{Parent: node, State: rs.State}

			if puzzle.SatisfiesGoal(rs.State) {
				plan, err := BacktrackPlan(puzzle, child)
				if err != nil {
					d.metrics.RecordOutcome("error")
					return nil, false, err
				}
				d.logger.Debug("search solved", "run", runID, "plan_length", len(plan))
				d.metrics.RecordOutcome("solved")
				return plan, true, nil
			}

			visited[key] = struct{}{}
			d.metrics.IncStatesVisited()
			frontier.Push(child, h.Estimate(rs))
		}
	}

	d.logger.Debug("search exhausted frontier", "run", runID, "visited", len(visited))
	d.metrics.RecordOutcome("unsolved")
	return position.Plan{}, false, nil
}
