// SPDX-License-Identifier: MIT

// Package blend turns raw smoothed weights into final weights: it conserves
// the unlocked mass of each vertex and interpolates toward the original values.
//
// Per target vertex, with before = pre-smoothing vector and raw = smoother output:
//
//  1. OnlyUnlocked == false: result = raw.
//  2. OnlyUnlocked == true: let B and R be the unlocked totals of before and raw.
//     - B < 1e-5 or R < 1e-5: result = before (DegenerateVertexWarning).
//     - Locked influences: result[j] = before[j].
//     - B < R: unlocked result[j] = raw[j]·B/R.
//     - B ≥ R: unlocked result[j] = raw[j] + (B−R)·before[j]/B.
//     Either way Σ unlocked result == B.
//  3. final[j] = f·result[j] + (1−f)·before[j] for every influence. Entries
//     already equal to before[j] (locked, or reverted) are copied unchanged
//     so they stay bit-exact.
//
// Degenerate vertices never abort the batch; they are reported in
// Outcome.Warnings.
//
// Errors:
//
//   - ErrInvalidParameter / *weights.ParameterError: factor outside (0, 1].
//   - ErrNoUnlockedInfluences: OnlyUnlocked with every influence locked.
//   - weights.ErrInvalidVertex: mismatched input lengths.
//
// Complexity:
//
//   - Apply: O(T·N).
package blend
