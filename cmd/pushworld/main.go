// Command pushworld solves a .pwp puzzle file and prints the resulting
// plan's action codes, or reports that no solution exists (§6).
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"pushworld/board"
	"pushworld/heuristic"
	"pushworld/metrics"
	"pushworld/pq"
	"pushworld/pwp"
	"pushworld/search"
)

// noveltyRGDWeight is the weight novelty carries over RGD in "N+RGD" mode
// (§6): heavily favoring novelty keeps the search exploring instead of
// committing early to a promising-looking but wrong branch.
const noveltyRGDWeight = 1e6

var errUnknownMode = errors.New("pushworld: mode must be RGD or N+RGD")

func main() {
	root := &cobra.Command{
		Use:   "pushworld <mode> <puzzle_path>",
		Short: "Solve a PushWorld puzzle",
		Long:  "Solve a PushWorld puzzle using a best-first search over the RGD or N+RGD heuristic.",
		Args:  cobra.ExactArgs(2),
		RunE:  run,
	}
	root.Flags().Bool("fewest-tools", false, "compute RGD costs with the fewest intermediate tool objects that yield a finite cost")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	mode, puzzlePath := args[0], args[1]

	fewestTools, err := cmd.Flags().GetBool("fewest-tools")
	if err != nil {
		return err
	}

	opts := search.DefaultOptions()
	opts.FewestTools = fewestTools

	puzzle, err := pwp.Load(puzzlePath)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	h, err := buildHeuristic(puzzle, mode, opts.FewestTools, collector)
	if err != nil {
		return err
	}

	driver := search.NewDriver(opts, search.WithLogger(slog.Default()), search.WithMetrics(collector))
	frontier := pq.NewFibonacciQueue[*search.SearchNode]()

	plan, found, err := driver.Run(puzzle, h, frontier)
	if err != nil {
		return err
	}

	if !found {
		fmt.Println("NO SOLUTION")
		return nil
	}

	fmt.Println(plan.String())
	return nil
}

func buildHeuristic(puzzle *board.Puzzle, mode string, fewestTools bool, collector *metrics.Collector) (heuristic.Heuristic, error) {
	rgd := heuristic.NewRGD(puzzle, fewestTools, heuristic.WithMetrics(collector))

	switch mode {
	case "RGD":
		return rgd, nil
	case "N+RGD":
		novelty := heuristic.NewNoveltyRelative(puzzle.NumObjects())
		return heuristic.NewWeightedSum(
			[]heuristic.Heuristic{novelty, rgd},
			[]float64{noveltyRGDWeight, 1},
		)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownMode, mode)
	}
}
