// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_cycle.go — implementation of Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3; Path: n ≥ 2 (else ErrTooFewVertices).
//   • Labels via cfg.idFn in ascending index order (0..n-1).
//   • Cycle emits i—(i+1)%n for i=0..n-1; Path emits (i-1)—i for i=1..n-1.
//
// Min cut: Cycle 2 (any cut crosses the ring twice), Path 1.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/mincut/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return tooFew(MethodCycle, n, MinCycleNodes)
		}

		return addRing(g, MethodCycle, makeIDs(cfg.idFn, 0, n))
	}
}

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew(MethodPath, n, MinPathNodes)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, MethodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// addRing closes ids into a ring: ids[i]—ids[(i+1)%len].
func addRing(g *core.Graph, method string, ids []string) error {
	n := len(ids)
	for i := 0; i < n; i++ {
		if err := addEdge(g, method, ids[i], ids[(i+1)%n]); err != nil {
			return err
		}
	}

	return nil
}
