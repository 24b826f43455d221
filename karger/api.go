// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Public entry points of the min-cut estimator.
// AI-HINT (file):
//   - n counts TRIALS in sequential mode and WORKERS in concurrent mode. Each
//     worker runs exactly one trial, so both produce n independent trials.
//   - The estimate is Monte-Carlo: every trial yields a real cut, so the
//     result is never below the true minimum, but it may be above it.

package karger

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mincut/core"
)

// MinCut estimates the minimum cut of g by running n contraction trials
// sequentially on the calling goroutine and returning the smallest cut seen.
//
// Here n is the number of TRIALS. Compare MinCutWithConcurrency, where n
// counts workers.
//
// g is never modified: each trial contracts its own deep copy.
// A disconnected g yields 0 without running trials.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - ErrTooFewVertices if g has fewer than two vertices.
//   - ErrNonPositiveTrials if n < 1.
//
// Complexity: O(n · (V+E) · V) in the worst case.
func MinCut(g *core.Graph, n int, opts ...Option) (int, error) {
	res, err := run(g, n, Sequential, opts...)
	if err != nil {
		return 0, err
	}

	return res.MinCut, nil
}

// MinCutWithConcurrency estimates the minimum cut of g.
//
// When useConcurrency is true, n is the number of WORKERS: n goroutines are
// launched (bounded by WithMaxWorkers if given) and each performs exactly
// one contraction trial; the minimum over all workers is returned once every
// worker has finished. When useConcurrency is false it is identical to
// MinCut and n is the number of sequential trials.
//
// Errors: as MinCut.
func MinCutWithConcurrency(g *core.Graph, n int, useConcurrency bool, opts ...Option) (int, error) {
	mode := Sequential
	if useConcurrency {
		mode = Concurrent
	}
	res, err := run(g, n, mode, opts...)
	if err != nil {
		return 0, err
	}

	return res.MinCut, nil
}

// Run is MinCut/MinCutWithConcurrency with a full report: every trial's cut
// size, the best partition, the seed and timing. n follows the meaning of the
// selected mode (trials for Sequential, workers for Concurrent).
//
// Errors: as MinCut, plus ErrUnknownMode.
func Run(g *core.Graph, n int, mode Mode, opts ...Option) (*Result, error) {
	return run(g, n, mode, opts...)
}

// Distribution returns the mean and standard deviation of the trial cut
// sizes. Both are NaN when no trial ran.
func (r *Result) Distribution() (mean, std float64) {
	if len(r.Trials) == 0 {
		return math.NaN(), math.NaN()
	}
	xs := make([]float64, len(r.Trials))
	for i, c := range r.Trials {
		xs[i] = float64(c)
	}
	if len(xs) == 1 {
		return xs[0], 0
	}

	return stat.MeanStdDev(xs, nil)
}

// Hits returns how many trials found a cut equal to MinCut.
func (r *Result) Hits() int {
	hits := 0
	for _, c := range r.Trials {
		if c == r.MinCut {
			hits++
		}
	}

	return hits
}
