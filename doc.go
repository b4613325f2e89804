// SPDX-License-Identifier: MIT

// Package skinrelax smooths per-vertex skin weights over a mesh graph while
// conserving the weight mass of unlocked influences.
//
// A session reads a snapshot of weight vectors for the target vertices and
// their neighbors, iterates one of four kernels over the targets, conserves
// and blends the result, and writes the targets back exactly once.
//
// Subpackages, leaves first:
//
//	weights/    WeightVector, LockMask, the Store contract, Buffer, MemoryStore
//	mesh/       thread-safe undirected mesh graph with vertex positions
//	adjacency/  working set and 1-ring / 2-ring neighbor lists of the targets
//	kernel/     Laplacian, RBF, Biharmonic and Relax kernels
//	smoother/   double-buffered iteration with frontier vertices pinned
//	blend/      unlocked-mass conservation and after-blend
//	relax/      Config (YAML), Session, Report
//	metrics/    Prometheus instruments for sessions
//
// Quick example on a three-vertex strip:
//
//	0───1───2
//
//	store, _ := weights.NewMemoryStore(2, []weights.WeightVector{{1, 0}, {0, 1}, {1, 0}})
//	rep, err := relax.Relax(relax.DefaultConfig(), store, m, []int{1})
//	// rep.Weights[1] == {1, 0}
//
// cmd/weightrelax runs one session over a YAML scene from the command line.
package skinrelax
