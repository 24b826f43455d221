// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_complete.go — implementation of Complete(n) and CompleteBipartite(n1,n2).
//
// Contract:
//   • Complete: n ≥ 2; labels idFn(0..n-1); pairs emitted (i asc, j>i asc).
//   • CompleteBipartite: n1,n2 ≥ 1; labels "{leftPrefix}{i}" and "{rightPrefix}{j}";
//     every cross pair L_i—R_j, i asc then j asc.
//
// Min cut: K_n → n-1 (isolate one vertex), K_{n1,n2} → min(n1,n2).
//
// Complexity:
//   • Complete: O(n²) edges. CompleteBipartite: O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

const minPartitionSize = 1

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return tooFew(MethodComplete, n, MinCompleteNodes)
		}

		return addCompleteEdges(g, MethodComplete, makeIDs(cfg.idFn, 0, n))
	}
}

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := prefixedIDs(cfg.leftPrefix, n1)
		right := prefixedIDs(cfg.rightPrefix, n2)
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
