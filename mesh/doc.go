// SPDX-License-Identifier: MIT

// Package mesh is an in-memory, undirected mesh adjacency graph with static
// vertex positions.
//
// A Mesh answers the two host queries a relaxation session needs: 1-ring
// neighbors (adjacency.Provider) and vertex positions (kernel.PositionProvider).
// It stands in for the host application's geometry in tools, examples, tests
// and benchmarks.
//
// What:
//
//   - Vertices are dense integer indices carrying an r3.Vec position.
//   - Edges are undirected and unweighted; self-loops are rejected and
//     repeated edges collapse to one.
//   - FromTriangles builds the edge set of a triangle list; Grid builds a
//     planar quad grid.
//
// Concurrency:
//
//   - All methods are safe for concurrent use (sync.RWMutex). Queries take a
//     read lock, mutations a write lock.
//
// Determinism:
//
//   - NeighborIDs and Neighbors return neighbor lists sorted ascending.
//
// Errors:
//
//   - ErrVertexNotFound: referenced vertex does not exist.
//   - ErrVertexExists: AddVertex on an index already present.
//   - ErrNegativeIndex: negative vertex index.
//   - ErrLoopNotAllowed: edge from a vertex to itself.
//   - ErrBadTriangles: triangle index list length not a multiple of 3.
//   - ErrBadGrid: grid dimensions below 2×2 or spacing ≤ 0.
package mesh
