// SPDX-License-Identifier: MIT

package blend

import (
	"fmt"

	"github.com/katalvlaran/skinrelax/weights"
)

// Blender applies lock conservation and the after-blend factor.
type Blender struct {
	mask         weights.LockMask
	onlyUnlocked bool
	factor       float64
}

// New validates factor ∈ (0, 1] and, when onlyUnlocked is set, that mask has
// at least one unlocked influence. mask may be nil when onlyUnlocked is false.
func New(mask weights.LockMask, onlyUnlocked bool, factor float64) (*Blender, error) {
	if !(factor > 0 && factor <= 1) {
		return nil, weights.NewParameterError("blend_weights", factor, "must be in (0, 1]")
	}
	if onlyUnlocked && mask.Unlocked() == 0 {
		return nil, ErrNoUnlockedInfluences
	}

	return &Blender{mask: mask.Clone(), onlyUnlocked: onlyUnlocked, factor: factor}, nil
}

// Factor returns the blend factor.
func (b *Blender) Factor() float64 { return b.factor }

// OnlyUnlocked reports whether unlocked mass is conserved.
func (b *Blender) OnlyUnlocked() bool { return b.onlyUnlocked }

// Apply computes the final vector of every target from its raw smoothed
// vector and its pre-smoothing vector. Inputs are not modified.
//
// Errors: weights.ErrInvalidVertex when the three slices differ in length,
// or a vector's length differs from the mask (when conserving) or from its
// before vector.
func (b *Blender) Apply(targets []weights.VertexIndex, raw, before []weights.WeightVector) (*Outcome, error) {
	if len(raw) != len(targets) || len(before) != len(targets) {
		return nil, fmt.Errorf("%w: %d targets, %d raw, %d before vectors",
			weights.ErrInvalidVertex, len(targets), len(raw), len(before))
	}
	out := &Outcome{Vectors: make([]weights.WeightVector, len(targets))}
	for i, v := range targets {
		if len(raw[i]) != len(before[i]) {
			return nil, weights.NewVertexError(v, "raw has %d entries, before has %d", len(raw[i]), len(before[i]))
		}
		if b.onlyUnlocked && len(before[i]) != len(b.mask) {
			return nil, weights.NewVertexError(v, "vector has %d entries, lock mask has %d", len(before[i]), len(b.mask))
		}

		result := raw[i].Clone()
		out.Vectors[i] = result
		if b.onlyUnlocked {
			beforeTotal, err := before[i].SumMasked(b.mask, false)
			if err != nil {
				return nil, fmt.Errorf("blend: vertex %d: %w", v, err)
			}
			newTotal, err := result.SumMasked(b.mask, false)
			if err != nil {
				return nil, fmt.Errorf("blend: vertex %d: %w", v, err)
			}
			if warn, ok := b.conserve(v, result, before[i], beforeTotal, newTotal); !ok {
				out.Warnings = append(out.Warnings, warn)
				continue
			}
		}
		if b.factor < 1 {
			for j := range result {
				// locked entries already equal before; keep them bit-exact
				if b.onlyUnlocked && b.mask[j] {
					continue
				}
				result[j] = b.factor*result[j] + (1-b.factor)*before[i][j]
			}
		}
	}

	return out, nil
}

// conserve rewrites result in place so that locked influences equal before
// and the unlocked total equals beforeTotal. A degenerate vertex is reverted
// to before and reported with ok == false.
func (b *Blender) conserve(v weights.VertexIndex, result, before weights.WeightVector, beforeTotal, newTotal float64) (DegenerateVertexWarning, bool) {
	if beforeTotal < DegenerateThreshold || newTotal < DegenerateThreshold {
		copy(result, before)
		return DegenerateVertexWarning{Vertex: v, BeforeTotal: beforeTotal, NewTotal: newTotal}, false
	}

	if beforeTotal < newTotal {
		scale := beforeTotal / newTotal
		for j := range result {
			if b.mask[j] {
				result[j] = before[j]
			} else {
				result[j] *= scale
			}
		}
		return DegenerateVertexWarning{}, true
	}

	deficit := beforeTotal - newTotal
	for j := range result {
		if b.mask[j] {
			result[j] = before[j]
		} else {
			result[j] += deficit * (before[j] / beforeTotal)
		}
	}

	return DegenerateVertexWarning{}, true
}
