// SPDX-License-Identifier: MIT
// Package karger_test exercises the estimator end to end on fixtures with a
// known minimum cut and against an exhaustive oracle on small graphs.

package karger_test

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/internal/maxflow"
	"github.com/katalvlaran/mincut/karger"
)

const (
	seedA uint64 = 20240601
	seedB uint64 = 7

	fewTrials  = 50
	manyTrials = 500
)

// build RETURNS a fixture graph or fails the test.
func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(bopts, cons...)
	require.NoError(t, err)

	return g
}

// fromEntries RETURNS a graph built from "A -- B" entries.
func fromEntries(t *testing.T, entries ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	added, err := g.AddEdges(entries)
	require.NoError(t, err)
	require.Equal(t, len(entries), added)

	return g
}

// bruteForceMinCut enumerates every bipartition of g (|V| <= 16).
func bruteForceMinCut(t *testing.T, g *core.Graph) int {
	t.Helper()
	vs := g.Vertices()
	require.LessOrEqual(t, len(vs), 16)
	best := -1
	// vertex 0 is always on the left; mask selects the right side
	for mask := uint32(1); mask < 1<<uint(len(vs)-1); mask++ {
		right := make(map[string]bool, bits.OnesCount32(mask))
		for i := 1; i < len(vs); i++ {
			if mask&(1<<uint(i-1)) != 0 {
				right[vs[i].Label()] = true
			}
		}
		if c := crossing(g, right); best < 0 || c < best {
			best = c
		}
	}

	return best
}

// crossing counts the edges of g with exactly one endpoint in right.
func crossing(g *core.Graph, right map[string]bool) int {
	twice := 0
	for u, nbrs := range g.AdjacencyList() {
		for _, w := range nbrs {
			if right[u] != right[w] {
				twice++
			}
		}
	}

	return twice / 2
}

func TestMinCut_KnownFixtures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		bopts []builder.BuilderOption
		cons  builder.Constructor
		want  int
	}{
		{"Cycle4", nil, builder.Cycle(4), 2},
		{"Cycle9", nil, builder.Cycle(9), 2},
		{"Path6", nil, builder.Path(6), 1},
		{"Star7", nil, builder.Star(7), 1},
		{"Complete5", nil, builder.Complete(5), 4},
		{"Bipartite2x4", nil, builder.CompleteBipartite(2, 4), 2},
		{"Grid3x3", nil, builder.Grid(3, 3), 2},
		{"Barbell5x3", []builder.BuilderOption{builder.WithOneBasedIDs()}, builder.Barbell(5, 3), 3},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, tc.bopts, tc.cons)

			seq, err := karger.MinCut(g, manyTrials, karger.WithSeed(seedA))
			require.NoError(t, err)
			assert.Equal(t, tc.want, seq, "sequential")

			conc, err := karger.MinCutWithConcurrency(g, manyTrials, true, karger.WithSeed(seedA))
			require.NoError(t, err)
			assert.Equal(t, tc.want, conc, "concurrent")
		})
	}
}

func TestMinCut_FourCycleSmallBudget(t *testing.T) {
	t.Parallel()
	g := fromEntries(t, "1 -- 2", "2 -- 3", "3 -- 4", "4 -- 1")

	for _, useConc := range []bool{false, true} {
		got, err := karger.MinCutWithConcurrency(g, fewTrials, useConc)
		require.NoError(t, err)
		assert.Equal(t, 2, got, "concurrent=%v", useConc)
	}
}

func TestMinCut_BarbellFixtureEntries(t *testing.T) {
	t.Parallel()
	g := fromEntries(t,
		"1--2", "1--3", "1--4", "1--5", "2--3", "2--4", "2--5", "3--4", "3--5", "4--5",
		"6--7", "6--8", "6--9", "6--10", "7--8", "7--9", "7--10", "8--9", "8--10", "9--10",
		"5--10", "4--6", "3--7",
	)
	require.Equal(t, 23, g.NumEdges())

	res, err := karger.Run(g, manyTrials, karger.Concurrent, karger.WithSeed(seedB))
	require.NoError(t, err)
	assert.Equal(t, 3, res.MinCut)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, res.Cut.Left)
	assert.Equal(t, []string{"10", "6", "7", "8", "9"}, res.Cut.Right)
}

func TestMinCut_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	g := build(t, nil, builder.Complete(6))
	before := g.AdjacencyList()

	_, err := karger.MinCutWithConcurrency(g, 20, true, karger.WithSeed(seedA))
	require.NoError(t, err)
	_, err = karger.MinCut(g, 20, karger.WithSeed(seedA))
	require.NoError(t, err)

	assert.Equal(t, before, g.AdjacencyList())
}

func TestMinCut_AgainstOracle(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{1, 2, 3, 4, 5} {
		seed := seed
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			t.Parallel()
			g := build(t,
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomMultigraph(7, 6),
			)
			oracle := bruteForceMinCut(t, g)

			trials, err := karger.RecommendedTrials(g.NumVertices(), 0.999999)
			require.NoError(t, err)
			res, err := karger.Run(g, trials, karger.Sequential, karger.WithSeed(seed))
			require.NoError(t, err)

			for i, c := range res.Trials {
				require.GreaterOrEqual(t, c, oracle, "trial %d underestimated", i)
			}
			assert.Equal(t, oracle, res.MinCut)
		})
	}
}

func TestMinCut_AgainstMaxFlow(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{11, 12, 13} {
		seed := seed
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			t.Parallel()
			g := build(t,
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomMultigraph(20, 30),
			)
			exact, err := maxflow.GlobalMinCut(g, maxflow.DefaultOptions())
			require.NoError(t, err)

			workers, err := karger.RecommendedTrials(g.NumVertices(), 0.9999)
			require.NoError(t, err)
			res, err := karger.Run(g, workers, karger.Concurrent,
				karger.WithSeed(seed), karger.WithMaxWorkers(8))
			require.NoError(t, err)

			for i, c := range res.Trials {
				require.GreaterOrEqual(t, c, exact.Size, "worker %d underestimated", i)
			}
			assert.Equal(t, exact.Size, res.MinCut)
		})
	}
}

func TestRun_CutIsRealPartition(t *testing.T) {
	t.Parallel()
	g := build(t, []builder.BuilderOption{builder.WithSeed(seedB)}, builder.RandomMultigraph(9, 12))

	for _, mode := range []karger.Mode{karger.Sequential, karger.Concurrent} {
		res, err := karger.Run(g, 30, mode, karger.WithSeed(seedB))
		require.NoError(t, err)

		all := append(append([]string{}, res.Cut.Left...), res.Cut.Right...)
		assert.Len(t, all, g.NumVertices())
		assert.NotEmpty(t, res.Cut.Left)
		assert.NotEmpty(t, res.Cut.Right)

		right := make(map[string]bool, len(res.Cut.Right))
		for _, l := range res.Cut.Right {
			right[l] = true
		}
		assert.Equal(t, res.MinCut, crossing(g, right), "mode %s", mode)
	}
}

func TestRun_SameSeedSameTrialsAcrossModes(t *testing.T) {
	t.Parallel()
	g := build(t, []builder.BuilderOption{builder.WithSeed(seedA)}, builder.RandomMultigraph(10, 15))

	seq, err := karger.Run(g, 40, karger.Sequential, karger.WithSeed(seedA))
	require.NoError(t, err)
	conc, err := karger.Run(g, 40, karger.Concurrent, karger.WithSeed(seedA))
	require.NoError(t, err)
	bounded, err := karger.Run(g, 40, karger.Concurrent, karger.WithSeed(seedA), karger.WithMaxWorkers(3))
	require.NoError(t, err)

	assert.Equal(t, seq.Trials, conc.Trials)
	assert.Equal(t, seq.Trials, bounded.Trials)
	assert.Equal(t, seq.Cut, conc.Cut)
	assert.Equal(t, seedA, seq.Seed)
	assert.Len(t, seq.Trials, 40)
	assert.NotEqual(t, seq.RunID, conc.RunID)
	assert.Zero(t, seq.EarlyStops)
}

func TestRun_Distribution(t *testing.T) {
	t.Parallel()
	g := build(t, nil, builder.Cycle(6))

	res, err := karger.Run(g, 25, karger.Sequential, karger.WithSeed(seedA))
	require.NoError(t, err)
	mean, std := res.Distribution()
	assert.InDelta(t, 2.0, mean, 1e-12)
	assert.InDelta(t, 0.0, std, 1e-12)
	assert.Equal(t, 25, res.Hits())
}

func TestMinCut_Disconnected(t *testing.T) {
	t.Parallel()
	g := fromEntries(t, "A -- B", "B -- C", "X -- Y")

	got, err := karger.MinCutWithConcurrency(g, 10, true)
	require.NoError(t, err)
	assert.Zero(t, got)

	res, err := karger.Run(g, 10, karger.Sequential)
	require.NoError(t, err)
	assert.Zero(t, res.MinCut)
	assert.Empty(t, res.Trials)
	assert.Equal(t, []string{"A", "B", "C"}, res.Cut.Left)
	assert.Equal(t, []string{"X", "Y"}, res.Cut.Right)
	mean, _ := res.Distribution()
	assert.True(t, math.IsNaN(mean))
}

func TestMinCut_SelfLoopsIgnored(t *testing.T) {
	t.Parallel()
	g := fromEntries(t, "A -- A", "A -- B", "B -- C", "C -- C", "C -- A")

	got, err := karger.MinCut(g, fewTrials, karger.WithSeed(seedA))
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	two := fromEntries(t, "A -- A", "A -- B", "A -- B")
	got, err = karger.MinCutWithConcurrency(two, 3, true, karger.WithSeed(seedA))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestMinCut_LabelsThatLookMerged(t *testing.T) {
	t.Parallel()
	// "(1/2)" is what merging 1 and 2 would be called.
	g := fromEntries(t, "1 -- 2", "2 -- (1/2)", "(1/2) -- 3", "3 -- 1", "(2/1) -- 1")
	before := g.AdjacencyList()

	for _, mode := range []karger.Mode{karger.Sequential, karger.Concurrent} {
		res, err := karger.Run(g, 200, mode, karger.WithSeed(1))
		require.NoError(t, err, "mode %s", mode)
		assert.Equal(t, 1, res.MinCut, "mode %s", mode)
		assert.Equal(t, []string{"(1/2)", "1", "2", "3"}, res.Cut.Left, "mode %s", mode)
		assert.Equal(t, []string{"(2/1)"}, res.Cut.Right, "mode %s", mode)
		assert.Len(t, res.Trials, 200)
	}

	got, err := karger.MinCutWithConcurrency(g, 200, true, karger.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, before, g.AdjacencyList())
}

func TestMinCut_Validation(t *testing.T) {
	t.Parallel()
	cycle := fromEntries(t, "1 -- 2", "2 -- 3", "3 -- 1")
	single := fromEntries(t, "A -- A")

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"NilGraph", func() error { _, err := karger.MinCut(nil, 1); return err }, core.ErrNilGraph},
		{"EmptyGraph", func() error { _, err := karger.MinCut(core.NewGraph(), 1); return err }, karger.ErrTooFewVertices},
		{"SingleVertex", func() error { _, err := karger.MinCut(single, 1); return err }, karger.ErrTooFewVertices},
		{"ZeroTrials", func() error { _, err := karger.MinCut(cycle, 0); return err }, karger.ErrNonPositiveTrials},
		{"NegativeWorkers", func() error {
			_, err := karger.MinCutWithConcurrency(cycle, -3, true)
			return err
		}, karger.ErrNonPositiveTrials},
		{"UnknownMode", func() error { _, err := karger.Run(cycle, 1, karger.Mode(9)); return err }, karger.ErrUnknownMode},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, errors.Is(err, core.ErrInvalidArgument))
		})
	}
}

func TestWithMaxWorkers_PanicsOnNegative(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { karger.WithMaxWorkers(-1) })
	assert.NotPanics(t, func() { karger.WithMaxWorkers(0) })
}

func TestMode_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "sequential", karger.Sequential.String())
	assert.Equal(t, "concurrent", karger.Concurrent.String())
	assert.Equal(t, "mode(5)", karger.Mode(5).String())
}

func TestRun_LogsSummary(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	g := build(t, nil, builder.Cycle(5))

	res, err := karger.Run(g, 5, karger.Concurrent, karger.WithSeed(seedA), karger.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"run_id":"`+res.RunID+`"`)
	assert.Contains(t, out, `"mode":"concurrent"`)
	assert.Contains(t, out, `"min_cut":2`)
	assert.Contains(t, out, "min cut estimated")

	buf.Reset()
	_, err = karger.MinCut(fromEntries(t, "A -- B", "C -- D"), 5, karger.WithLogger(logger))
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "disconnected"))
}
