// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_star.go — implementation of Star(n) and Wheel(n) constructors.
//
// Canonical definitions:
//   • Star: hub "Center" plus leaves idFn(1..n-1).
//   • Wheel: Wₙ = Cₙ₋₁ + "Center", i.e. a ring idFn(0..n-2) plus spokes.
//
// Min cut: Star 1 (any leaf), Wheel 3 (any rim vertex: two rim edges + spoke).
//
// Determinism:
//   • Spokes are emitted by increasing index, after the ring (Wheel).

package builder

import (
	"github.com/katalvlaran/mincut/core"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return tooFew(MethodStar, n, MinStarNodes)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, MethodStar, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds a wheel of n vertices (rim of n-1).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return tooFew(MethodWheel, n, MinWheelNodes)
		}
		rim := makeIDs(cfg.idFn, 0, n-1)
		if err := addRing(g, MethodWheel, rim); err != nil {
			return err
		}
		for _, id := range rim {
			if err := addEdge(g, MethodWheel, CenterVertexID, id); err != nil {
				return err
			}
		}

		return nil
	}
}
