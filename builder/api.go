// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph; core.Graph is a multigraph, so
//     two constructors touching the same pair produce parallel edges.
//   - Use WithSeed(...) to freeze RandomMultigraph.
//   - WithIDScheme(...) for human-readable vertex labels.
//   - Every constructor documents the min cut of what it builds; estimator tests rely on it.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add edges only (core.Graph keeps no isolated vertex).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrNeedRandSource, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Name vertices via cfg.idFn (except the documented fixed ID "Center"
//     and the "r,c" grid coordinates).
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.
//
// Min cut λ of each fixture is listed for estimator tests.

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3). λ = 2.
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n ≥ 2). λ = 1.
//func Path(n int) Constructor

// Star builds a star with center "Center" and n-1 leaves (n ≥ 2). λ = 1.
//func Star(n int) Constructor

// Wheel builds a wheel W_n = C_{n-1} + center "Center" (n ≥ 4). λ = 3.
//func Wheel(n int) Constructor

// Complete builds the complete simple graph K_n (n ≥ 2). λ = n-1.
//func Complete(n int) Constructor

// CompleteBipartite builds K_{n1,n2} using cfg.leftPrefix/cfg.rightPrefix. λ = min(n1,n2).
//func CompleteBipartite(n1, n2 int) Constructor

// Grid builds an R×C 4-neighborhood grid with IDs "r,c" (row-major). λ = 2 when R,C ≥ 2.
//func Grid(rows, cols int) Constructor

// Barbell builds two K_n joined by `bridges` disjoint edges (1 ≤ bridges ≤ n).
// λ = bridges when bridges < n-1.
//func Barbell(n, bridges int) Constructor

// RandomMultigraph builds a spanning path over n vertices plus m random extra
// edges (parallel edges allowed). Requires cfg.rng. Connected by construction.
//func RandomMultigraph(n, m int) Constructor
