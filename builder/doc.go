// SPDX-License-Identifier: MIT

// Package builder provides deterministic topology generators for core.Graph,
// used to assemble test fixtures and examples without hand-written edge
// lists.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates the graph,
//     resolves the config, runs the constructors in order.
//   - Functional options (Option) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     graphs.
//   - Safety: constructors never panic; they return sentinel errors.
//
// Constructors:
//
//	Complete(n)       — complete simple graph K_n.
//	Path(n)           — path P_n: 0—1—…—(n-1).
//	Cycle(n)          — cycle C_n.
//	RandomSparse(n,p) — Erdős–Rényi-like G(n,p) over unordered pairs.
//
// Options:
//
//	WithSeed(s)       — seeded RNG for stochastic constructors and weights.
//	WithIDScheme(fn)  — vertex index → ID (default decimal: "0","1",…).
//	WithWeightFn(fn)  — edge weight generator (default constant 1).
//
// Errors (sentinel, match with errors.Is):
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrConstructFailed.
package builder
