// SPDX-License-Identifier: MIT

package adjacency

import (
	"errors"

	"github.com/katalvlaran/skinrelax/weights"
)

// Sentinel errors for adjacency expansion.
var (
	// ErrProviderNil is returned when a nil Provider is passed.
	ErrProviderNil = errors.New("adjacency: provider is nil")

	// ErrNoTargets is returned when the target list is empty.
	ErrNoTargets = errors.New("adjacency: no target vertices")

	// ErrProvider wraps a failure reported by the Provider.
	ErrProvider = errors.New("adjacency: provider failed")
)

// Provider answers 1-ring adjacency queries against the host geometry.
//
// The answer must contain an entry for every requested vertex; an isolated
// vertex maps to an empty list.
type Provider interface {
	Neighbors(vertices []weights.VertexIndex) (map[weights.VertexIndex][]weights.VertexIndex, error)
}

// Option configures Expand.
type Option func(*Options)

// Options holds Expand parameters.
type Options struct {
	// SecondOrder enables 2-ring computation.
	SecondOrder bool
}

// DefaultOptions returns Options with 1-ring expansion only.
func DefaultOptions() Options {
	return Options{SecondOrder: false}
}

// WithSecondOrder also computes 2-ring neighbor lists.
func WithSecondOrder() Option {
	return func(o *Options) { o.SecondOrder = true }
}

// View is the result of one expansion.
//
// Targets[i] owns First[i] and, when second order was requested, Second[i].
// Second is nil otherwise.
type View struct {
	// Targets as supplied by the caller, in the same order.
	Targets []weights.VertexIndex

	// Working is the sorted union of targets and every neighbor list.
	Working []weights.VertexIndex

	// First[i] lists the 1-ring of Targets[i], in Provider order.
	First [][]weights.VertexIndex

	// Second[i] lists the 2-ring of Targets[i], sorted ascending.
	Second [][]weights.VertexIndex
}

// HasSecondOrder reports whether Second was computed.
func (v *View) HasSecondOrder() bool { return v.Second != nil }

// Frontier returns the working vertices that are not targets, sorted ascending.
// These stay pinned for the whole session.
func (v *View) Frontier() []weights.VertexIndex {
	isTarget := make(map[weights.VertexIndex]struct{}, len(v.Targets))
	for _, t := range v.Targets {
		isTarget[t] = struct{}{}
	}
	out := make([]weights.VertexIndex, 0, len(v.Working)-len(v.Targets))
	for _, w := range v.Working {
		if _, ok := isTarget[w]; !ok {
			out = append(out, w)
		}
	}

	return out
}
