// SPDX-License-Identifier: MIT
//
// File: contract.go
// Role: One randomized contraction trial.
// Determinism:
//   - Given the same input graph (same key order) and the same rng state,
//     the sequence of merges and the resulting Cut are identical.
// AI-HINT (file):
//   - Trials contract a relabeled copy ("#0".."#n-1" in key order), so merged
//     labels can never collide with a label already present in the input.
//   - The loop condition is the explicit vertex count; ErrGraphTooSmall from
//     MergeVertices is tolerated as an end of the trial but does not fire in
//     normal runs.
//   - Self-loops are stripped first: they never cross a cut and a merge of a
//     vertex with itself is undefined.

package karger

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/katalvlaran/mincut/core"
)

// Contract runs one trial of Karger's algorithm on g. g is not modified: the
// trial works on a private copy whose vertices are renamed "#0".."#n-1", and
// the returned Cut is expressed in g's labels.
//
// Steps:
//  1. Copy g under collision-free labels and strip self-loops.
//  2. While more than two vertices remain: pick a vertex uniformly, pick one
//     of its neighbor entries uniformly (so a pair joined by k parallel edges
//     is k times as likely), and merge the two.
//  3. The remaining edges all join the two super-vertices: their count is the
//     size of the cut.
//
// g is expected to be connected; on a disconnected graph the trial still
// terminates but its Cut describes only what is left.
//
// Errors:
//   - core.ErrNilGraph if g is nil; ErrNilRand if rng is nil.
//   - Any unexpected core error, wrapped.
//
// Complexity: O(V + E) for the copy, then O(V) merges, each O(deg) plus
// member bookkeeping.
func Contract(g *core.Graph, rng *rand.Rand) (Cut, error) {
	if g == nil {
		return Cut{}, core.ErrNilGraph
	}
	if rng == nil {
		return Cut{}, ErrNilRand
	}

	members := make(map[core.Vertex][]string, g.NumVertices())
	work, err := g.Relabel(func(i int, v core.Vertex) string {
		label := "#" + strconv.Itoa(i)
		members[core.NewVertex(label)] = []string{v.Label()}

		return label
	})
	if err != nil {
		return Cut{}, fmt.Errorf("karger: contract: %w", err)
	}
	if err := dropSelfLoops(work); err != nil {
		return Cut{}, err
	}

	early := false
	for work.NumVertices() > 2 {
		v, ok := work.PickVertex(rng)
		if !ok {
			break
		}
		u, err := work.PickNeighbor(v, rng)
		if err != nil {
			return Cut{}, fmt.Errorf("karger: contract: %w", err)
		}
		merged, err := work.MergeVertices(v, u)
		if errors.Is(err, core.ErrGraphTooSmall) {
			early = true
			break
		}
		if err != nil {
			return Cut{}, fmt.Errorf("karger: contract: %w", err)
		}
		members[merged] = append(members[v], members[u]...)
		delete(members, v)
		delete(members, u)
	}

	return finalCut(work, members, early), nil
}

// dropSelfLoops removes every v—v edge from g.
func dropSelfLoops(g *core.Graph) error {
	for _, v := range g.Vertices() {
		for {
			loop, err := g.Connected(v, v)
			if err != nil {
				// the vertex vanished with its last loop
				break
			}
			if !loop {
				break
			}
			if err := g.RemoveEdge(v, v); err != nil {
				return fmt.Errorf("karger: strip self-loop %s: %w", v, err)
			}
		}
	}

	return nil
}

// finalCut reads the cut off the contracted graph.
func finalCut(work *core.Graph, members map[core.Vertex][]string, early bool) Cut {
	cut := Cut{Size: work.NumEdges(), EarlyStop: early}
	vs := work.Vertices()
	if len(vs) > 0 {
		cut.Left = sortedCopy(members[vs[0]])
	}
	if len(vs) > 1 {
		var right []string
		for _, v := range vs[1:] {
			right = append(right, members[v]...)
		}
		cut.Right = sortedCopy(right)
	}
	// Left always holds the smallest original label.
	if len(cut.Left) > 0 && len(cut.Right) > 0 && cut.Right[0] < cut.Left[0] {
		cut.Left, cut.Right = cut.Right, cut.Left
	}

	return cut
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)

	return out
}
