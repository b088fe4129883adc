// Package app runs solve jobs: it loads each job's risk map, expands it when
// asked to, and computes the lowest total risk from the top-left to the
// bottom-right cell.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/riskpath/dijkstra"
	"github.com/katalvlaran/riskpath/gridgraph"
	"github.com/katalvlaran/riskpath/internal/config"
	"github.com/katalvlaran/riskpath/riskmap"
)

// Result is the outcome of one job.
type Result struct {
	Job  config.Job
	Cost int64
}

// Run executes jobs with at most workers solves in flight and returns their
// results in job order. The first failing job cancels jobs that have not yet
// started; its error is returned.
//
// Each solve is synchronous and cannot be interrupted once running.
func Run(ctx context.Context, jobs []config.Job, workers int, logger zerolog.Logger) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cost, err := Solve(job, logger.With().Str("job", job.Name).Logger())
			if err != nil {
				return fmt.Errorf("job %q: %w", job.Name, err)
			}
			results[i] = Result{Job: job, Cost: cost}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Solve runs a single job.
func Solve(job config.Job, logger zerolog.Logger) (int64, error) {
	start := time.Now()

	base, err := riskmap.LoadFile(job.Input)
	if err != nil {
		return 0, err
	}

	var grid gridgraph.Grid = base
	if job.Expanded() {
		grid, err = gridgraph.Expand(base, job.TileRows, job.TileCols)
		if err != nil {
			return 0, err
		}
	}

	cost, err := dijkstra.ShortestPath(grid,
		dijkstra.WithMemoryMode(job.Memory),
		dijkstra.WithLogger(logger),
	)
	if err != nil {
		return 0, err
	}

	logger.Info().
		Str("input", job.Input).
		Int("rows", grid.Rows()).
		Int("cols", grid.Cols()).
		Int64("cost", cost).
		Dur("elapsed", time.Since(start)).
		Msg("job solved")

	return cost, nil
}
