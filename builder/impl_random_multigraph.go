// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_random_multigraph.go - implementation of RandomMultigraph(n, m).
//
// Canonical model:
//   - A spanning path idFn(0)—idFn(1)—...—idFn(n-1) guarantees connectivity.
//   - Then m extra edges, each between two distinct endpoints drawn uniformly;
//     repeats are kept as parallel edges.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - m ≥ 0 (else ErrInvalidCount).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for m == 0.
//
// Complexity:
//   - Time: O(n + m). Space: O(n) for the label slice.
//
// Determinism:
//   - Exactly two rng draws per extra edge, in emission order; identical seeds
//     give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// RandomMultigraph returns a Constructor that samples a connected multigraph
// with n vertices and n-1+m edges.
func RandomMultigraph(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew(MethodRandomMultigraph, n, MinPathNodes)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", MethodRandomMultigraph, m, ErrInvalidCount)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomMultigraph, ErrNeedRandSource)
		}

		ids := makeIDs(cfg.idFn, 0, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, MethodRandomMultigraph, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		rng := cfg.rng
		for k := 0; k < m; k++ {
			u := rng.IntN(n)
			// Draw from n-1 slots and skip u, so u != v without rejection.
			v := rng.IntN(n - 1)
			if v >= u {
				v++
			}
			if err := addEdge(g, MethodRandomMultigraph, ids[u], ids[v]); err != nil {
				return err
			}
		}

		return nil
	}
}
