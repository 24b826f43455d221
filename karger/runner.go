// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: Validation, trial scheduling (sequential loop / errgroup workers) and
//       reduction of trial cuts to the run minimum.
// Concurrency:
//   - Workers never share mutable state: each contracts its own relabeled
//     copy of the input graph with its own *rand.Rand, and writes a single
//     slot of the results slice.
//   - errgroup.Wait is the join point; results are read only after it.
// Determinism:
//   - Trial i always uses PCG(seed, i). With WithSeed the outcome does not
//     depend on goroutine scheduling.

package karger

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mincut/bfs"
	"github.com/katalvlaran/mincut/core"
)

// runner holds the state of one estimator run.
type runner struct {
	g    *core.Graph
	mode Mode
	cfg  config
	log  zerolog.Logger
	res  *Result
}

// run validates inputs, handles the disconnected short-cut and dispatches to
// the mode's scheduler.
func run(g *core.Graph, n int, mode Mode, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveTrials, n)
	}
	if g.NumVertices() < 2 {
		return nil, fmt.Errorf("%w: |V|=%d", ErrTooFewVertices, g.NumVertices())
	}

	cfg := newConfig(opts...)
	if !cfg.seeded {
		cfg.seed = rand.Uint64()
	}
	r := &runner{
		g:    g,
		mode: mode,
		cfg:  cfg,
		res:  &Result{RunID: uuid.NewString(), Mode: mode, Seed: cfg.seed},
	}
	r.log = cfg.logger.With().
		Str("run_id", r.res.RunID).
		Str("mode", mode.String()).
		Logger()

	start := time.Now()
	defer func() {
		r.res.Elapsed = time.Since(start)
		cfg.metrics.observeRun(mode, r.res.Elapsed)
	}()

	connected, err := bfs.IsConnected(g)
	if err != nil {
		return nil, fmt.Errorf("karger: connectivity: %w", err)
	}
	if !connected {
		r.log.Info().
			Int("vertices", g.NumVertices()).
			Msg("graph is disconnected, min cut is 0")
		r.res.MinCut = 0
		r.res.Cut = disconnectedCut(g)

		return r.res, nil
	}

	cuts := make([]Cut, n)
	switch mode {
	case Sequential:
		err = r.sequential(cuts)
	case Concurrent:
		err = r.concurrent(cuts)
	}
	if err != nil {
		return nil, err
	}
	r.reduce(cuts)

	r.log.Info().
		Int("trials", n).
		Int("min_cut", r.res.MinCut).
		Int("early_stops", r.res.EarlyStops).
		Uint64("seed", cfg.seed).
		Msg("min cut estimated")

	return r.res, nil
}

// sequential runs every trial on the calling goroutine.
func (r *runner) sequential(cuts []Cut) error {
	for i := range cuts {
		c, err := r.trial(i)
		if err != nil {
			return err
		}
		cuts[i] = c
	}

	return nil
}

// concurrent launches one worker per trial; each worker runs exactly one.
func (r *runner) concurrent(cuts []Cut) error {
	var g errgroup.Group
	if r.cfg.maxWorkers > 0 {
		g.SetLimit(r.cfg.maxWorkers)
	}
	for i := range cuts {
		i := i
		g.Go(func() error {
			c, err := r.trial(i)
			if err != nil {
				return err
			}
			cuts[i] = c

			return nil
		})
	}

	return g.Wait()
}

// trial runs contraction number i. Contract works on its own copy, so
// workers only ever read r.g.
func (r *runner) trial(i int) (Cut, error) {
	rng := rand.New(rand.NewPCG(r.cfg.seed, uint64(i)))
	c, err := Contract(r.g, rng)
	if err != nil {
		return Cut{}, fmt.Errorf("karger: trial %d: %w", i, err)
	}
	if c.EarlyStop {
		r.log.Debug().Int("trial", i).Msg("merge reported graph too small, trial ended early")
	}
	r.cfg.metrics.observeTrial(r.mode, c)

	return c, nil
}

// reduce folds trial cuts into the result: the minimum size wins, ties keep
// the lowest trial index.
func (r *runner) reduce(cuts []Cut) {
	r.res.Trials = make([]int, len(cuts))
	best := -1
	for i, c := range cuts {
		r.res.Trials[i] = c.Size
		if c.EarlyStop {
			r.res.EarlyStops++
		}
		if best < 0 || c.Size < cuts[best].Size {
			best = i
		}
	}
	r.res.Cut = cuts[best]
	r.res.MinCut = cuts[best].Size
}

// disconnectedCut separates the first component from the rest.
func disconnectedCut(g *core.Graph) Cut {
	comps, err := bfs.Components(g)
	if err != nil || len(comps) < 2 {
		return Cut{}
	}
	c := Cut{Left: vertexLabels(comps[0])}
	var right []string
	for _, comp := range comps[1:] {
		right = append(right, vertexLabels(comp)...)
	}
	c.Right = sortedCopy(right)

	return c
}

func vertexLabels(vs []core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Label()
	}

	return out
}
