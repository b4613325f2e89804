// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"sort"
)

// Buffer is the mutable working snapshot of one relaxation session.
//
// It is seeded once from a Store read and is never partially persisted.
// A Buffer is owned by a single call stack and is not safe for concurrent use.
type Buffer struct {
	influences int
	vectors    map[VertexIndex]WeightVector
}

// NewBuffer deep-copies snapshot into a new Buffer of n influences.
// Returns *VertexError if any vector does not hold exactly n entries.
// Complexity: O(V·N).
func NewBuffer(n int, snapshot map[VertexIndex]WeightVector) (*Buffer, error) {
	if n <= 0 {
		return nil, NewParameterError("influences", n, "must be > 0")
	}
	b := &Buffer{
		influences: n,
		vectors:    make(map[VertexIndex]WeightVector, len(snapshot)),
	}
	for v, w := range snapshot {
		if len(w) != n {
			return nil, NewVertexError(v, "weight vector has %d entries, want %d", len(w), n)
		}
		b.vectors[v] = w.Clone()
	}

	return b, nil
}

// Influences returns N.
func (b *Buffer) Influences() int { return b.influences }

// Len returns the number of vertices held.
func (b *Buffer) Len() int { return len(b.vectors) }

// Has reports whether v is in the buffer.
func (b *Buffer) Has(v VertexIndex) bool {
	_, ok := b.vectors[v]
	return ok
}

// Get returns the live vector of v, or nil if v is absent.
// Callers must treat the result as read-only.
func (b *Buffer) Get(v VertexIndex) WeightVector {
	return b.vectors[v]
}

// Vertices returns the buffered vertex indices in ascending order.
func (b *Buffer) Vertices() []VertexIndex {
	out := make([]VertexIndex, 0, len(b.vectors))
	for v := range b.vectors {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Require checks that every vertex in vs is present.
// Returns *VertexError naming the first missing vertex.
func (b *Buffer) Require(vs []VertexIndex) error {
	for _, v := range vs {
		if !b.Has(v) {
			return NewVertexError(v, "not present in weight snapshot")
		}
	}

	return nil
}

// Commit copies vectors[i] into the entry of vertices[i] for every i.
//
// Validation happens before the first write, so either every entry is updated
// or none is. Only vertices already present may be committed.
// Complexity: O(k·N).
func (b *Buffer) Commit(vertices []VertexIndex, vectors []WeightVector) error {
	if len(vertices) != len(vectors) {
		return fmt.Errorf("%w: commit of %d vectors for %d vertices", ErrInvalidVertex, len(vectors), len(vertices))
	}
	for i, v := range vertices {
		if !b.Has(v) {
			return NewVertexError(v, "commit to vertex outside working set")
		}
		if len(vectors[i]) != b.influences {
			return NewVertexError(v, "commit of %d entries, want %d", len(vectors[i]), b.influences)
		}
	}
	for i, v := range vertices {
		copy(b.vectors[v], vectors[i])
	}

	return nil
}

// Snapshot returns deep copies of the vectors of vs, in the same order.
// Returns *VertexError if any vertex is absent.
func (b *Buffer) Snapshot(vs []VertexIndex) ([]WeightVector, error) {
	out := make([]WeightVector, len(vs))
	for i, v := range vs {
		w, ok := b.vectors[v]
		if !ok {
			return nil, NewVertexError(v, "not present in weight snapshot")
		}
		out[i] = w.Clone()
	}

	return out, nil
}
