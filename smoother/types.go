// SPDX-License-Identifier: MIT

package smoother

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skinrelax/kernel"
	"github.com/katalvlaran/skinrelax/weights"
)

// Sentinel errors for smoother construction.
var (
	// ErrViewNil is returned when no adjacency view is supplied.
	ErrViewNil = errors.New("smoother: adjacency view is nil")

	// ErrNegativeIterations is returned for iterations < 0.
	ErrNegativeIterations = fmt.Errorf("smoother: iterations must be ≥ 0: %w", weights.ErrInvalidParameter)

	// ErrNoSecondOrder is returned when a biharmonic kernel gets a view without 2-rings.
	ErrNoSecondOrder = errors.New("smoother: biharmonic kernel needs second-order neighbors")

	// ErrNoPositions is returned when an RBF kernel gets no PositionProvider.
	ErrNoPositions = fmt.Errorf("smoother: rbf kernel needs vertex positions: %w", weights.ErrInvalidParameter)

	// ErrProvider wraps a PositionProvider failure.
	ErrProvider = errors.New("smoother: position provider failed")
)

// Option configures a Smoother.
type Option func(*Smoother)

// WithPositions supplies the static vertex positions the RBF kernel needs.
// Ignored by the other kernels.
func WithPositions(p kernel.PositionProvider) Option {
	return func(s *Smoother) { s.positions = p }
}

// Result is the raw iterated output for every target.
type Result struct {
	// Targets in View order.
	Targets []weights.VertexIndex
	// Vectors[i] is the final round value of Targets[i]; independent of the Buffer.
	Vectors []weights.WeightVector
	// Rounds actually run.
	Rounds int
	// Stalled counts RBF evaluations skipped because Σ w == 0.
	Stalled int
}
