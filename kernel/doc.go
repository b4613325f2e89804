// SPDX-License-Identifier: MIT

// Package kernel implements the diffusion kernels used to relax skin weights.
//
// Every kernel computes one new WeightVector for one target vertex from the
// current weights of its neighbors, component-wise per influence:
//
//   - Laplacian:  mean(buf[n] for n in 1-ring). The target's own value is excluded.
//   - RBF:        Σ w(n)·buf[n] / Σ w(n), with w(n) = φ(|p(target) − p(n)|)
//     precomputed once by EdgeWeights from static positions.
//     φ is gaussian exp(−d²/2σ²), linear max(1−d, 0) or inverse-distance 1/dᵖ.
//   - Biharmonic: a·mean(1-ring) + b·mean(2-ring), a + b = 1 (±1e-5).
//   - Relax:      (1−f)·buf[target] + f·mean(1-ring), f ∈ (0, 1].
//
// Kind names a kernel; ApplyLaplacian, ApplyRBF, ApplyBiharmonic and
// ApplyRelax evaluate it.
//
// Kernels are pure: they read the Buffer and write into a caller-owned
// destination that must not alias any Buffer entry. Every vertex they read
// must be present in the Buffer; the smoother guarantees this.
//
// Spec is the tagged kernel selection with its typed parameters. Validate
// reports out-of-domain parameters as *weights.ParameterError.
//
// Complexity:
//
//   - One kernel evaluation: O(d·N) for d neighbors and N influences.
//   - EdgeWeights: O(d) per target.
package kernel
