// SPDX-License-Identifier: MIT

package adjacency

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/skinrelax/weights"
)

// Expand computes the working set and neighbor lists of targets.
//
// Implementation:
//   - Stage 1: validate provider and targets (no negatives, no duplicates).
//   - Stage 2: one Provider call for the targets' 1-rings; reject isolated targets.
//   - Stage 3 (WithSecondOrder): one Provider call for the distinct 1-ring
//     vertices, then per target union their 1-rings and drop the target.
//   - Stage 4: collect and sort the working set.
//
// Expand never mutates anything outside the returned View; on error no View
// is returned.
func Expand(p Provider, targets []weights.VertexIndex, opts ...Option) (*View, error) {
	if p == nil {
		return nil, ErrProviderNil
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	working := make(map[weights.VertexIndex]struct{}, len(targets)*4)
	for _, t := range targets {
		if t < 0 {
			return nil, weights.NewVertexError(t, "negative vertex index")
		}
		if _, dup := working[t]; dup {
			return nil, weights.NewVertexError(t, "duplicate target")
		}
		working[t] = struct{}{}
	}

	ring, err := p.Neighbors(targets)
	if err != nil {
		return nil, fmt.Errorf("%w: 1-ring query: %v", ErrProvider, err)
	}
	first := make([][]weights.VertexIndex, len(targets))
	for i, t := range targets {
		nbrs, ok := ring[t]
		if !ok {
			return nil, weights.NewVertexError(t, "missing from adjacency answer")
		}
		if len(nbrs) == 0 {
			return nil, weights.NewVertexError(t, "isolated vertex has no 1-ring neighbors")
		}
		first[i] = make([]weights.VertexIndex, len(nbrs))
		for k, n := range nbrs {
			if n == t {
				return nil, weights.NewVertexError(t, "lists itself as a neighbor")
			}
			first[i][k] = n
			working[n] = struct{}{}
		}
	}

	view := &View{
		Targets: append([]weights.VertexIndex(nil), targets...),
		First:   first,
	}
	if o.SecondOrder {
		second, err := expandSecond(p, targets, first)
		if err != nil {
			return nil, err
		}
		for _, s := range second {
			for _, n := range s {
				working[n] = struct{}{}
			}
		}
		view.Second = second
	}

	view.Working = sortedKeys(working)

	return view, nil
}

// expandSecond derives every target's 2-ring from a single Provider call over
// the distinct 1-ring vertices.
func expandSecond(p Provider, targets []weights.VertexIndex, first [][]weights.VertexIndex) ([][]weights.VertexIndex, error) {
	distinct := make(map[weights.VertexIndex]struct{})
	for _, nbrs := range first {
		for _, n := range nbrs {
			distinct[n] = struct{}{}
		}
	}
	query := sortedKeys(distinct)
	ring, err := p.Neighbors(query)
	if err != nil {
		return nil, fmt.Errorf("%w: 2-ring query: %v", ErrProvider, err)
	}

	second := make([][]weights.VertexIndex, len(targets))
	for i, t := range targets {
		set := make(map[weights.VertexIndex]struct{})
		for _, n := range first[i] {
			nn, ok := ring[n]
			if !ok {
				return nil, weights.NewVertexError(n, "missing from adjacency answer")
			}
			for _, m := range nn {
				set[m] = struct{}{}
			}
		}
		delete(set, t)
		if len(set) == 0 {
			return nil, weights.NewVertexError(t, "no second-order neighbors")
		}
		second[i] = sortedKeys(set)
	}

	return second, nil
}

// sortedKeys returns the keys of set in ascending order.
func sortedKeys(set map[weights.VertexIndex]struct{}) []weights.VertexIndex {
	out := make([]weights.VertexIndex, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
