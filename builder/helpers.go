// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap core errors with the constructor name.
//   - Readability: explicit naming, minimal nesting, consistent style.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mincut/core"
)

// addEdge inserts one undirected edge u—v and wraps any core error with the
// constructor name and ErrConstructFailed.
// Complexity: O(1) amortized.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdgeLabels(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids, in (i asc, j>i asc) order.
// Complexity: O(m²) time where m = len(ids), O(1) extra space.
func addCompleteEdges(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// makeIDs returns idFn(from), ..., idFn(from+n-1).
// Complexity: O(n) time and space.
func makeIDs(idFn IDFn, from, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(from + i)
	}

	return ids
}

// prefixedIDs generates n labels by concatenating prefix and index.
// Example: prefixedIDs("L",3) → {"L0","L1","L2"}.
func prefixedIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}

// gridVertexID formats a 2D grid coordinate as "r,c".
// Example: gridVertexID(0,1) → "0,1".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// tooFew formats the common "n below minimum" error.
func tooFew(method string, got, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
}
