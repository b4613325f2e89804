// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// AddVertex inserts vertex idx at position p.
//
// Errors:
//   - ErrNegativeIndex: idx < 0.
//   - ErrVertexExists: idx is already present.
//
// Complexity: O(1).
func (m *Mesh) AddVertex(idx int, p r3.Vec) error {
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIndex, idx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.positions[idx]; ok {
		return fmt.Errorf("%w: %d", ErrVertexExists, idx)
	}
	m.positions[idx] = p
	m.adjacency[idx] = make(map[int]struct{})

	return nil
}

// AddEdge connects u and v. Adding an existing edge is a no-op.
//
// Errors:
//   - ErrLoopNotAllowed: u == v.
//   - ErrVertexNotFound: u or v is absent.
//
// Complexity: O(1).
func (m *Mesh) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	nu, ok := m.adjacency[u]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	nv, ok := m.adjacency[v]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	if _, dup := nu[v]; dup {
		return nil
	}
	nu[v] = struct{}{}
	nv[u] = struct{}{}
	m.edges++

	return nil
}

// HasVertex reports whether idx exists.
func (m *Mesh) HasVertex(idx int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.positions[idx]
	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists.
func (m *Mesh) HasEdge(u, v int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.adjacency[u][v]
	return ok
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.positions)
}

// EdgeCount returns the number of undirected edges.
func (m *Mesh) EdgeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.edges
}

// NeighborIDs returns the 1-ring of idx, sorted ascending. An isolated vertex
// yields an empty, non-nil slice.
//
// Errors:
//   - ErrVertexNotFound: idx is absent.
//
// Complexity: O(d log d) for degree d.
func (m *Mesh) NeighborIDs(idx int) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.neighborIDsLocked(idx)
}

// neighborIDsLocked is NeighborIDs without locking; callers hold mu.
func (m *Mesh) neighborIDsLocked(idx int) ([]int, error) {
	nbrs, ok := m.adjacency[idx]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, idx)
	}
	out := make([]int, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// Neighbors returns the sorted 1-ring of every requested vertex under one
// consistent read lock. It satisfies adjacency.Provider.
//
// Errors:
//   - ErrVertexNotFound: any requested vertex is absent.
//
// Complexity: O(Σ d log d).
func (m *Mesh) Neighbors(vertices []int) (map[int][]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[int][]int, len(vertices))
	for _, v := range vertices {
		if _, done := out[v]; done {
			continue
		}
		ids, err := m.neighborIDsLocked(v)
		if err != nil {
			return nil, err
		}
		out[v] = ids
	}

	return out, nil
}

// Positions returns the positions of the requested vertices. It satisfies
// kernel.PositionProvider.
//
// Errors:
//   - ErrVertexNotFound: any requested vertex is absent.
func (m *Mesh) Positions(vertices []int) (map[int]r3.Vec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[int]r3.Vec, len(vertices))
	for _, v := range vertices {
		p, ok := m.positions[v]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
		}
		out[v] = p
	}

	return out, nil
}
