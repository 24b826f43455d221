// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_barbell.go — implementation of Barbell(n, bridges).
//
// Canonical model:
//   • Left bell: K_n over idFn(0..n-1). Right bell: K_n over idFn(n..2n-1).
//   • Bridge k (k = 0..bridges-1) joins left[n-1-k] to right[(n-1+k) mod n],
//     so bridge endpoints are pairwise distinct on each side.
//
// With WithOneBasedIDs, Barbell(5,3) is the classic 23-edge fixture:
// bells {1..5} and {6..10} joined by 5—10, 4—6, 3—7.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); 1 ≤ bridges ≤ n (else ErrInvalidCount).
//
// Min cut: bridges, whenever bridges < n-1 (cutting inside a bell costs ≥ n-1).
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Barbell returns a Constructor for two K_n joined by `bridges` disjoint edges.
func Barbell(n, bridges int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinBarbellClique {
			return tooFew(MethodBarbell, n, MinBarbellClique)
		}
		if bridges < 1 || bridges > n {
			return fmt.Errorf("%s: bridges=%d not in [1,%d]: %w", MethodBarbell, bridges, n, ErrInvalidCount)
		}

		left := makeIDs(cfg.idFn, 0, n)
		right := makeIDs(cfg.idFn, n, n)
		if err := addCompleteEdges(g, MethodBarbell, left); err != nil {
			return err
		}
		if err := addCompleteEdges(g, MethodBarbell, right); err != nil {
			return err
		}
		for k := 0; k < bridges; k++ {
			if err := addEdge(g, MethodBarbell, left[n-1-k], right[(n-1+k)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
