// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("mesh: vertex not found")

	// ErrVertexExists indicates AddVertex was called with an index already in use.
	ErrVertexExists = errors.New("mesh: vertex already exists")

	// ErrNegativeIndex indicates a vertex index below zero.
	ErrNegativeIndex = errors.New("mesh: negative vertex index")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("mesh: self-loop not allowed")

	// ErrBadTriangles indicates a triangle index list whose length is not a multiple of 3.
	ErrBadTriangles = errors.New("mesh: triangle index count must be a multiple of 3")

	// ErrBadGrid indicates grid dimensions or spacing out of range.
	ErrBadGrid = errors.New("mesh: invalid grid dimensions")
)

// Mesh is an undirected vertex adjacency graph with per-vertex positions.
//
// mu guards positions and adjacency together; positions and adjacency always
// hold the same key set.
type Mesh struct {
	mu sync.RWMutex

	positions map[int]r3.Vec
	// adjacency[u][v] exists iff the undirected edge {u,v} exists.
	adjacency map[int]map[int]struct{}
	edges     int
}

// New creates an empty Mesh.
// Complexity: O(1).
func New() *Mesh {
	return &Mesh{
		positions: make(map[int]r3.Vec),
		adjacency: make(map[int]map[int]struct{}),
	}
}
