// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// VertexIndex identifies a mesh vertex within one geometry.
type VertexIndex = int

// InfluenceIndex identifies an influence in [0, N) for one session.
type InfluenceIndex = int

// WeightVector holds one weight per influence, ordered by InfluenceIndex.
type WeightVector []float64

// Clone returns an independent copy of w. A nil vector clones to nil.
// Complexity: O(N).
func (w WeightVector) Clone() WeightVector {
	if w == nil {
		return nil
	}
	out := make(WeightVector, len(w))
	copy(out, w)

	return out
}

// Sum returns the total weight across all influences.
func (w WeightVector) Sum() float64 {
	return floats.Sum(w)
}

// SumMasked returns the total weight over influences whose lock state equals
// locked. SumMasked(mask, false) is the unlocked mass of the vertex.
// Returns ErrInvalidVertex if len(mask) != len(w).
func (w WeightVector) SumMasked(mask LockMask, locked bool) (float64, error) {
	if len(mask) != len(w) {
		return 0, fmt.Errorf("%w: vector has %d entries, lock mask has %d", ErrInvalidVertex, len(w), len(mask))
	}
	var total float64
	for j, v := range w {
		if mask[j] == locked {
			total += v
		}
	}

	return total, nil
}

// LockMask records, per influence, whether smoothing may change its weight.
// true means locked.
type LockMask []bool

// LockProvider answers whether an influence is locked. A session assumes the
// answer is stable for its whole duration.
type LockProvider interface {
	IsLocked(i InfluenceIndex) bool
}

// Locks is a LockProvider backed by a plain slice. Indices outside the slice
// are reported unlocked.
type Locks []bool

// IsLocked implements LockProvider.
func (l Locks) IsLocked(i InfluenceIndex) bool {
	return i >= 0 && i < len(l) && l[i]
}

// NewLockMask builds a mask of n influences, querying p exactly once per
// influence. A nil provider yields an all-unlocked mask.
// Complexity: O(N).
func NewLockMask(n int, p LockProvider) LockMask {
	mask := make(LockMask, n)
	if p == nil {
		return mask
	}
	for i := 0; i < n; i++ {
		mask[i] = p.IsLocked(i)
	}

	return mask
}

// Clone returns an independent copy of m. A nil mask clones to nil.
func (m LockMask) Clone() LockMask {
	if m == nil {
		return nil
	}
	out := make(LockMask, len(m))
	copy(out, m)

	return out
}

// Unlocked returns the number of unlocked influences.
func (m LockMask) Unlocked() int {
	n := 0
	for _, locked := range m {
		if !locked {
			n++
		}
	}

	return n
}

// Store is the host-side weight table a session reads once and writes once.
//
// Read and Write exchange vectors of exactly InfluenceCount entries, ordered
// consistently by InfluenceIndex across all calls in one session.
type Store interface {
	// InfluenceCount returns N, the number of influences bound to the geometry.
	InfluenceCount() int

	// Read returns a vector for every requested vertex.
	Read(vertices []VertexIndex) (map[VertexIndex]WeightVector, error)

	// Write replaces the vectors of the given vertices.
	Write(vectors map[VertexIndex]WeightVector) error
}
