// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// FromTriangles builds a Mesh whose vertex i sits at points[i] and whose edges
// are the sides of every triangle (indices[3t], indices[3t+1], indices[3t+2]).
//
// Degenerate triangles with repeated corners contribute only their distinct
// sides. Vertices referenced by no triangle are kept, isolated.
//
// Errors:
//   - ErrBadTriangles: len(indices) % 3 != 0.
//   - ErrVertexNotFound: a triangle references an index outside points.
//
// Complexity: O(V + T).
func FromTriangles(points []r3.Vec, indices []int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d indices", ErrBadTriangles, len(indices))
	}
	m := New()
	for i, p := range points {
		if err := m.AddVertex(i, p); err != nil {
			return nil, err
		}
	}
	for t := 0; t < len(indices); t += 3 {
		tri := [3]int{indices[t], indices[t+1], indices[t+2]}
		for k := 0; k < 3; k++ {
			u, v := tri[k], tri[(k+1)%3]
			if u == v {
				continue
			}
			if err := m.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("mesh: triangle %d: %w", t/3, err)
			}
		}
	}

	return m, nil
}

// Grid builds a rows×cols planar quad grid in the XY plane with the given
// spacing. Vertex r*cols+c sits at (c·spacing, r·spacing, 0) and connects to
// its right and bottom neighbors, so interior vertices have 4 neighbors.
//
// Errors:
//   - ErrBadGrid: rows < 2, cols < 2 or spacing <= 0.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, spacing float64) (*Mesh, error) {
	if rows < 2 || cols < 2 || spacing <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d spacing=%g", ErrBadGrid, rows, cols, spacing)
	}
	m := New()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := r3.Vec{X: float64(c) * spacing, Y: float64(r) * spacing}
			if err := m.AddVertex(r*cols+c, p); err != nil {
				return nil, err
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				if err := m.AddEdge(u, u+1); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := m.AddEdge(u, u+cols); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}
