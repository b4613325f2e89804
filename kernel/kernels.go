// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/skinrelax/weights"
)

// mean writes the component-wise mean of buf[n] over nbrs into dst.
// nbrs must be non-empty.
func mean(dst weights.WeightVector, nbrs []weights.VertexIndex, buf *weights.Buffer) {
	zero(dst)
	for _, n := range nbrs {
		floats.Add(dst, buf.Get(n))
	}
	floats.Scale(1/float64(len(nbrs)), dst)
}

func zero(dst weights.WeightVector) {
	for j := range dst {
		dst[j] = 0
	}
}

// ApplyLaplacian writes mean(buf[n] for n in nbrs) into dst.
// The target's own weight plays no part.
// Complexity: O(d·N).
func ApplyLaplacian(dst weights.WeightVector, nbrs []weights.VertexIndex, buf *weights.Buffer) {
	mean(dst, nbrs, buf)
}

// ApplyRelax writes (1−f)·buf[target] + f·mean(buf[n] for n in nbrs) into dst.
// Complexity: O(d·N).
func ApplyRelax(dst weights.WeightVector, target weights.VertexIndex, nbrs []weights.VertexIndex, buf *weights.Buffer, f float64) {
	mean(dst, nbrs, buf)
	floats.Scale(f, dst)
	floats.AddScaled(dst, 1-f, buf.Get(target))
}

// ApplyBiharmonic writes a·mean(first) + b·mean(second) into dst.
// Both lists must be non-empty.
// Complexity: O((d₁ + d₂)·N).
func ApplyBiharmonic(dst weights.WeightVector, first, second []weights.VertexIndex, buf *weights.Buffer, a, b float64) {
	zero(dst)
	fa := a / float64(len(first))
	for _, n := range first {
		floats.AddScaled(dst, fa, buf.Get(n))
	}
	fb := b / float64(len(second))
	for _, n := range second {
		floats.AddScaled(dst, fb, buf.Get(n))
	}
}

// ApplyRBF writes Σ w[k]·buf[nbrs[k]] / Σ w into dst and reports true.
// When Σ w == 0 it leaves dst untouched and reports false; the caller keeps
// the vertex's previous value for this round.
// Complexity: O(d·N).
func ApplyRBF(dst weights.WeightVector, nbrs []weights.VertexIndex, w []float64, buf *weights.Buffer) bool {
	total := floats.Sum(w)
	if total == 0 {
		return false
	}
	zero(dst)
	for k, n := range nbrs {
		floats.AddScaled(dst, w[k], buf.Get(n))
	}
	floats.Scale(1/total, dst)

	return true
}

// EdgeWeights evaluates p at the distance from target to every neighbor.
//
// Errors:
//   - *weights.VertexError: a position is missing, or a neighbor coincides
//     with the target so its weight is not finite.
//
// Complexity: O(d).
func EdgeWeights(target weights.VertexIndex, nbrs []weights.VertexIndex, pos map[weights.VertexIndex]r3.Vec, p RBFParams) ([]float64, error) {
	pt, ok := pos[target]
	if !ok {
		return nil, weights.NewVertexError(target, "no position")
	}
	out := make([]float64, len(nbrs))
	for k, n := range nbrs {
		pn, ok := pos[n]
		if !ok {
			return nil, weights.NewVertexError(n, "no position")
		}
		w := p.Weight(r3.Norm(r3.Sub(pt, pn)))
		if math.IsInf(w, 0) || math.IsNaN(w) {
			return nil, weights.NewVertexError(n, "coincides with target %d under %s", target, p.Func)
		}
		out[k] = w
	}

	return out, nil
}
