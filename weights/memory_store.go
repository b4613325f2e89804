// SPDX-License-Identifier: MIT

package weights

import (
	"sync"
)

// MemoryStore is a thread-safe in-memory Store.
//
// It keeps its own copies of every vector: values passed in or returned are
// never aliased. Reads and Writes count calls so callers can audit how a
// session touched the store.
type MemoryStore struct {
	mu         sync.RWMutex
	influences int
	vectors    map[VertexIndex]WeightVector
	reads      int
	writes     int
}

// NewMemoryStore creates a store of n influences seeded with rows, where
// rows[v] is the vector of vertex v.
// Returns *VertexError if a row has the wrong length.
func NewMemoryStore(n int, rows []WeightVector) (*MemoryStore, error) {
	if n <= 0 {
		return nil, NewParameterError("influences", n, "must be > 0")
	}
	s := &MemoryStore{
		influences: n,
		vectors:    make(map[VertexIndex]WeightVector, len(rows)),
	}
	for v, w := range rows {
		if len(w) != n {
			return nil, NewVertexError(v, "weight vector has %d entries, want %d", len(w), n)
		}
		s.vectors[v] = w.Clone()
	}

	return s, nil
}

// InfluenceCount implements Store.
func (s *MemoryStore) InfluenceCount() int { return s.influences }

// Read implements Store. Returns *VertexError for an unknown vertex.
func (s *MemoryStore) Read(vertices []VertexIndex) (map[VertexIndex]WeightVector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	out := make(map[VertexIndex]WeightVector, len(vertices))
	for _, v := range vertices {
		w, ok := s.vectors[v]
		if !ok {
			return nil, NewVertexError(v, "unknown vertex")
		}
		out[v] = w.Clone()
	}

	return out, nil
}

// Write implements Store. Nothing is written if any vector has the wrong length.
func (s *MemoryStore) Write(vectors map[VertexIndex]WeightVector) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for v, w := range vectors {
		if len(w) != s.influences {
			return NewVertexError(v, "weight vector has %d entries, want %d", len(w), s.influences)
		}
	}
	s.writes++
	for v, w := range vectors {
		s.vectors[v] = w.Clone()
	}

	return nil
}

// Vector returns a copy of the stored vector of v and whether it exists.
func (s *MemoryStore) Vector(v VertexIndex) (WeightVector, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.vectors[v]
	return w.Clone(), ok
}

// Reads returns how many times Read was called.
func (s *MemoryStore) Reads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reads
}

// Writes returns how many successful Write calls happened.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.writes
}
