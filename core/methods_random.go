// File: methods_random.go
// Role: Uniform random selection used by contraction trials.
// Determinism:
//   - Selection indexes the insertion-ordered key slice and the stored neighbor
//     sequence, so a fixed seed and a fixed mutation history give fixed picks.
// Concurrency:
//   - Read lock on mu. The *rand.Rand is owned by the caller and is not shared.

package core

import (
	"fmt"
	"math/rand/v2"
)

// PickVertex returns a vertex chosen uniformly among present vertices.
// It reports false on an empty graph.
// Complexity: O(1).
func (g *Graph) PickVertex(rng *rand.Rand) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.order) == 0 {
		return Vertex{}, false
	}

	return g.order[rng.IntN(len(g.order))], true
}

// PickNeighbor returns an entry of v's neighbor sequence chosen uniformly.
// Because a neighbor appears once per parallel edge, a pair joined by k edges
// is k times as likely as a pair joined by one: this is uniform over EDGES,
// which is what the contraction analysis requires.
//
// Errors: ErrNilVertex, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) PickNeighbor(v Vertex, rng *rand.Rand) (Vertex, error) {
	if v.IsZero() {
		return Vertex{}, ErrNilVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[v]
	if !ok {
		return Vertex{}, fmt.Errorf("PickNeighbor(%s): %w", v, ErrVertexNotFound)
	}

	return nbrs[rng.IntN(len(nbrs))], nil
}
