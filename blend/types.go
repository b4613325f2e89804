// SPDX-License-Identifier: MIT

package blend

import (
	"fmt"

	"github.com/katalvlaran/skinrelax/weights"
)

// DegenerateThreshold is the unlocked mass below which a vertex reverts to
// its original weights instead of being redistributed.
const DegenerateThreshold = 1e-5

// ErrNoUnlockedInfluences is returned when conservation over unlocked
// influences is requested but every influence is locked.
var ErrNoUnlockedInfluences = fmt.Errorf("blend: no unlocked influences: %w", weights.ErrInvalidParameter)

// DegenerateVertexWarning reports a vertex whose unlocked mass was too small
// to redistribute. The vertex was reverted to its original weights.
// It is recoverable and never aborts a batch.
type DegenerateVertexWarning struct {
	Vertex      weights.VertexIndex
	BeforeTotal float64
	NewTotal    float64
}

// Error implements error so warnings can be logged or joined like errors.
func (w DegenerateVertexWarning) Error() string {
	return fmt.Sprintf("blend: vertex %d: unlocked mass below %g (before=%g, new=%g), reverted",
		w.Vertex, DegenerateThreshold, w.BeforeTotal, w.NewTotal)
}

// Outcome is the result of Apply.
type Outcome struct {
	// Vectors[i] is the final vector of the i-th target.
	Vectors []weights.WeightVector
	// Warnings lists degenerate vertices, in target order.
	Warnings []DegenerateVertexWarning
}
