// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small deterministic fixtures (cycle, barbell) and invariant checks.
//   - Keep label constants in one place so test bodies stay free of literals.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
)

// Common vertex labels used across core tests.
const (
	LabelBlank = "   "

	Label1 = "1"
	Label2 = "2"
	Label3 = "3"
	Label4 = "4"

	LabelA = "A"
	LabelB = "B"
	LabelC = "C"
	LabelX = "X"
)

// Common vertices built from the labels above.
var (
	V1 = core.NewVertex(Label1)
	V2 = core.NewVertex(Label2)
	V3 = core.NewVertex(Label3)
	V4 = core.NewVertex(Label4)

	VA = core.NewVertex(LabelA)
	VB = core.NewVertex(LabelB)
	VC = core.NewVertex(LabelC)
	VX = core.NewVertex(LabelX)
)

// cycleEntries is the 4-cycle used by the estimator scenarios.
var cycleEntries = []string{"1--2", "2--3", "3--4", "4--1"}

// barbellEntries is two 5-cliques joined by three bridges (23 edges).
var barbellEntries = []string{
	"1--2", "1--3", "1--4", "1--5", "2--3", "2--4", "2--5", "3--4", "3--5", "4--5",
	"6--7", "6--8", "6--9", "6--10", "7--8", "7--9", "7--10", "8--9", "8--10", "9--10",
	"5--10", "4--6", "3--7",
}

// NewGraphFrom RETURNS a graph built from "A -- B" entries, failing the test
// if any entry is rejected.
func NewGraphFrom(t *testing.T, entries []string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	added, err := g.AddEdges(entries)
	require.NoError(t, err)
	require.Equal(t, len(entries), added, "every fixture entry must parse")

	return g
}

// RequireInvariants CHECKS the structural invariants of g:
//   - NumEdges()*2 == DegreeSum();
//   - no vertex with zero degree;
//   - symmetry of every adjacency multiset.
func RequireInvariants(t *testing.T, g *core.Graph) {
	t.Helper()
	require.Equal(t, g.DegreeSum(), 2*g.NumEdges(), "degree sum must be twice the edge count")

	adj := g.AdjacencyList()
	require.Len(t, adj, g.NumVertices())
	for from, nbrs := range adj {
		require.NotEmpty(t, nbrs, "vertex %q kept with zero degree", from)
		counts := make(map[string]int)
		for _, to := range nbrs {
			counts[to]++
		}
		for to, k := range counts {
			if to == from {
				continue
			}
			back := 0
			for _, x := range adj[to] {
				if x == from {
					back++
				}
			}
			require.Equal(t, k, back, "multiplicity %s—%s not symmetric", from, to)
		}
	}
}

// multiplicity COUNTS how many times to occurs in the sequence of from.
func multiplicity(t *testing.T, g *core.Graph, from, to core.Vertex) int {
	t.Helper()
	nbrs, err := g.ConnectedVertices(from)
	require.NoError(t, err)
	n := 0
	for _, v := range nbrs {
		if v == to {
			n++
		}
	}

	return n
}

// labels EXTRACTS labels from vertices, preserving order.
func labels(vs []core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Label()
	}

	return out
}
