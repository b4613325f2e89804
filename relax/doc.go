// SPDX-License-Identifier: MIT

// Package relax runs one skin-weight relaxation session end to end against
// host-supplied capabilities.
//
// Flow:
//
//	NewSession ─ validate config, options and capabilities; build LockMask
//	    │
//	Run ─ adjacency.Expand → Store.Read(working set) → weights.Buffer
//	    → smoother.Run → blend.Apply → Store.Write(targets only)
//
// Guarantees:
//
//   - Parameter errors surface from NewSession before any Store call.
//   - Store.Read and Store.Write are each called at most once per session;
//     Write happens only after every stage succeeded, and only carries the
//     requested target vertices. Frontier vertices are never written.
//   - With OnlyUnlockInfluences, locked weights are unchanged and the unlocked
//     total of every target is preserved, for any kernel, iteration count and
//     blend factor.
//   - Iterations == 0 writes back the original target weights exactly.
//   - Degenerate vertices are reverted, logged at Warn and reported; they do
//     not abort the session.
//
// Concurrency:
//
//   - A Session is single-use and runs synchronously on the caller's
//     goroutine. Separate sessions share nothing.
//
// Configuration is a YAML document (see Config) decoded strictly: unknown
// keys are rejected.
//
// Errors:
//
//   - weights.ErrInvalidParameter: bad config or a missing capability the
//     kernel needs (positions for RBF, locks for OnlyUnlockInfluences).
//   - weights.ErrInvalidVertex: isolated target, vertex missing from the
//     snapshot, malformed vectors.
//   - ErrOptionViolation, ErrStoreNil, ErrAdjacencyNil, ErrSessionDone.
package relax
