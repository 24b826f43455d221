// SPDX-License-Identifier: MIT
//
// File: methods_merge.go
// Role: The contraction primitive MergeVertices and its label form.
// Determinism:
//   - The merged neighbor sequence is adj[v1] followed by adj[v2], minus v1/v2 entries.
//   - Redirected entries keep their position in every third-party sequence.
// Concurrency:
//   - Single write-lock critical section; validation and mutation are atomic.
// AI-HINT (file):
//   - Check order: size (ErrGraphTooSmall) → nil → presence → adjacency → label collision.
//   - Edges between the merged pair are DROPPED, not turned into self-loops.

package core

import (
	"fmt"
	"slices"
)

// MergeVertices contracts the edge v1—v2: both vertices are replaced by one
// vertex labeled "(" + v1 + "/" + v2 + ")" whose neighbors are the union (as a
// multiset) of theirs, minus the edges joining them.
//
// Implementation:
//   - Stage 1: Validate (ErrGraphTooSmall when V ≤ 2, then ErrNilVertex,
//     ErrVertexNotFound, ErrNotConnected, ErrLabelTaken).
//   - Stage 2: Build merged = adj[v1] ++ adj[v2] without any v1/v2 entry.
//   - Stage 3: Remove v1 and v2 as keys.
//   - Stage 4: Rewrite v1/v2 → merged in the sequences of the vertices listed
//     in merged; by symmetry no other sequence references v1 or v2.
//   - Stage 5: Insert the merged vertex.
//
// Behavior highlights:
//   - Vertex count drops by exactly one on a connected graph.
//   - Edge count drops by the multiplicity of v1—v2 (at least one).
//   - If the pair formed a component on its own, merged is empty and the new
//     vertex is not inserted (no vertex with zero degree is kept).
//
// Returns:
//   - Vertex: the merged vertex.
//
// Complexity:
//   - Time O(deg(v1)+deg(v2)+Σ deg(u) for u adjacent to the pair), Space O(deg(v1)+deg(v2)).
func (g *Graph) MergeVertices(v1, v2 Vertex) (Vertex, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Stage 1: validation.
	if len(g.order) < minMergeVertices {
		return Vertex{}, fmt.Errorf("MergeVertices: %d vertices: %w", len(g.order), ErrGraphTooSmall)
	}
	if v1.IsZero() || v2.IsZero() {
		return Vertex{}, ErrNilVertex
	}
	if err := g.requirePresent(v1, v2); err != nil {
		return Vertex{}, fmt.Errorf("MergeVertices(%s, %s): %w", v1, v2, err)
	}
	if v1 == v2 || !slices.Contains(g.adj[v1], v2) {
		return Vertex{}, fmt.Errorf("MergeVertices(%s, %s): %w", v1, v2, ErrNotConnected)
	}
	merged := mergedVertex(v1, v2)
	if _, taken := g.adj[merged]; taken {
		return Vertex{}, fmt.Errorf("MergeVertices(%s, %s): %s: %w", v1, v2, merged, ErrLabelTaken)
	}

	// Stage 2: concatenate and strip would-be self-loops.
	nbrs := make([]Vertex, 0, len(g.adj[v1])+len(g.adj[v2]))
	for _, src := range [2][]Vertex{g.adj[v1], g.adj[v2]} {
		for _, u := range src {
			if u != v1 && u != v2 {
				nbrs = append(nbrs, u)
			}
		}
	}

	// Stage 3: drop the old keys.
	g.dropKey(v1)
	g.dropKey(v2)

	// Stage 4: redirect third-party references in place.
	seen := make(map[Vertex]struct{}, len(nbrs))
	for _, u := range nbrs {
		if _, done := seen[u]; done {
			continue
		}
		seen[u] = struct{}{}
		seq := g.adj[u]
		for i, w := range seq {
			if w == v1 || w == v2 {
				seq[i] = merged
			}
		}
	}

	// Stage 5: insert the merged vertex unless it is isolated.
	if len(nbrs) > 0 {
		g.ensureKey(merged)
		g.adj[merged] = nbrs
	}

	return merged, nil
}

// MergeLabels is the label form of MergeVertices.
func (g *Graph) MergeLabels(a, b string) (Vertex, error) {
	if isBlank(a) || isBlank(b) {
		return Vertex{}, fmt.Errorf("MergeLabels(%q, %q): %w", a, b, ErrBlankLabel)
	}

	return g.MergeVertices(NewVertex(a), NewVertex(b))
}

// mergedVertex builds the label "(" + v1 + "/" + v2 + ")".
func mergedVertex(v1, v2 Vertex) Vertex {
	return NewVertex("(" + v1.label + "/" + v2.label + ")")
}
