// SPDX-License-Identifier: MIT

// Package smoother drives a kernel for a fixed number of rounds over a
// weights.Buffer.
//
// Round discipline (double buffer):
//
//   - During a round every target reads only the Buffer and writes only its
//     own slot of a separate round output.
//   - Between rounds the whole round output is committed to the targets'
//     Buffer entries in one step, a strict barrier.
//   - After the last round nothing is committed; the round output is the result.
//   - Working vertices that are not targets (the frontier) are read but never
//     written: they stay pinned at their seeded values for the whole session,
//     which bounds the effective smoothing radius of sparse target sets.
//
// Iterations:
//
//   - 0 returns exact copies of the targets' seeded vectors.
//   - n ≥ 1 runs n rounds.
//   - RBF targets whose edge weights sum to 0 keep their current value for
//     the round; Result.Stalled counts such evaluations.
//
// Errors:
//
//   - ErrViewNil, ErrNegativeIterations, ErrNoSecondOrder, ErrNoPositions,
//     ErrProvider; spec errors from kernel.Spec.Validate; Buffer errors
//     (weights.ErrInvalidVertex) when a working vertex is missing.
//
// Complexity:
//
//   - Run: O(iterations · Σ dᵢ · N) time, O(T·N) extra memory.
package smoother
