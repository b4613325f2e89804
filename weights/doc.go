// SPDX-License-Identifier: MIT

// Package weights defines the data model shared by every stage of a
// skin-weight relaxation session.
//
// What:
//
//   - WeightVector: one float per influence, for exactly one vertex.
//   - LockMask: one bool per influence; true means "locked".
//   - Buffer: the session-owned working snapshot VertexIndex → WeightVector.
//   - Store / LockProvider: the host capabilities a session consumes.
//   - MemoryStore: an in-memory Store for tools, examples and tests.
//
// Normalization:
//
//   - Nothing here enforces Σ weights == 1. Conservation is defined only over
//     unlocked influences and is the blend package's concern.
//
// Errors:
//
//   - ErrInvalidVertex: missing vertex, wrong vector length, isolated target.
//     Carried by *VertexError when the offending vertex is known.
//   - ErrInvalidParameter: a parameter outside its domain.
//     Carried by *ParameterError when the offending parameter is known.
//
// Complexity:
//
//   - NewBuffer: O(V·N) time and memory (deep copy).
//   - Commit, Snapshot: O(k·N) for k vertices.
package weights
