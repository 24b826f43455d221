// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Mode, Cut and Result of the contraction estimator.
// AI-HINT (file):
//   - Every validation error wraps core.ErrInvalidArgument, so callers can
//     branch on the whole family with a single errors.Is.

package karger

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mincut/core"
)

// Sentinel errors for estimator input validation.
var (
	// ErrTooFewVertices indicates a graph with fewer than two vertices: there is no cut to estimate.
	ErrTooFewVertices = fmt.Errorf("%w: karger: graph has fewer than two vertices", core.ErrInvalidArgument)

	// ErrNonPositiveTrials indicates n < 1 trials (sequential) or workers (concurrent).
	ErrNonPositiveTrials = fmt.Errorf("%w: karger: trial count must be positive", core.ErrInvalidArgument)

	// ErrUnknownMode indicates a Mode value outside Sequential/Concurrent.
	ErrUnknownMode = fmt.Errorf("%w: karger: unknown mode", core.ErrInvalidArgument)

	// ErrNilRand indicates Contract was called without a random source.
	ErrNilRand = fmt.Errorf("%w: karger: rng is nil", core.ErrInvalidArgument)

	// ErrInvalidConfidence indicates a confidence outside the open interval (0,1).
	ErrInvalidConfidence = fmt.Errorf("%w: karger: confidence must be in (0,1)", core.ErrInvalidArgument)
)

// Mode selects how trials are scheduled.
type Mode int

const (
	// Sequential runs n trials one after another on the calling goroutine.
	Sequential Mode = iota
	// Concurrent runs n workers, each performing exactly one trial.
	Concurrent
)

// String returns the lowercase mode name, used as the "mode" metric label.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Concurrent:
		return "concurrent"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// valid reports whether m is a known mode.
func (m Mode) valid() bool { return m == Sequential || m == Concurrent }

// Cut is the outcome of one contraction trial.
type Cut struct {
	// Size is the number of edges crossing the partition.
	Size int
	// Left and Right are the original vertex labels on each side, sorted.
	Left, Right []string
	// EarlyStop is set when a merge reported the graph too small before the
	// loop condition did. It is a safety net: a trial contracts a private
	// copy and checks the vertex count first, so it stays false in normal
	// runs. The trial result is still valid when it is set.
	EarlyStop bool
}

// Result reports one estimator run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string
	// Mode is the scheduling strategy used.
	Mode Mode
	// Seed is the base seed; trial i used PCG(Seed, i).
	Seed uint64
	// MinCut is the smallest trial cut (0 for a disconnected graph).
	MinCut int
	// Trials holds the cut size of every trial, indexed by trial/worker.
	// It is empty when the graph was disconnected and no trial ran.
	Trials []int
	// Cut is the best partition found (first trial reaching MinCut).
	Cut Cut
	// EarlyStops counts trials with Cut.EarlyStop set; 0 in normal runs.
	EarlyStops int
	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
}
