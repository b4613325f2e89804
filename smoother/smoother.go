// SPDX-License-Identifier: MIT

package smoother

import (
	"fmt"

	"github.com/katalvlaran/skinrelax/adjacency"
	"github.com/katalvlaran/skinrelax/kernel"
	"github.com/katalvlaran/skinrelax/weights"
)

// Smoother repeats one kernel over the targets of an adjacency view.
// A Smoother is immutable after New and may be Run against several Buffers.
type Smoother struct {
	spec       kernel.Spec
	iterations int
	view       *adjacency.View
	positions  kernel.PositionProvider

	// edgeWeights[i][k] is the RBF weight of view.First[i][k]; nil for other kernels.
	edgeWeights [][]float64
}

// New validates spec and iterations and, for RBF, precomputes every edge
// weight from a single PositionProvider call. Positions never change during
// smoothing, so the weights are computed once here.
func New(spec kernel.Spec, iterations int, view *adjacency.View, opts ...Option) (*Smoother, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeIterations, iterations)
	}
	if view == nil {
		return nil, ErrViewNil
	}
	s := &Smoother{spec: spec, iterations: iterations, view: view}
	for _, opt := range opts {
		opt(s)
	}

	if spec.NeedsSecondOrder() && !view.HasSecondOrder() {
		return nil, ErrNoSecondOrder
	}
	if spec.NeedsPositions() {
		if s.positions == nil {
			return nil, ErrNoPositions
		}
		ew, err := edgeWeightTable(view, s.positions, spec.RBF)
		if err != nil {
			return nil, err
		}
		s.edgeWeights = ew
	}

	return s, nil
}

// edgeWeightTable evaluates the RBF weight of every (target, neighbor) edge.
func edgeWeightTable(view *adjacency.View, p kernel.PositionProvider, params kernel.RBFParams) ([][]float64, error) {
	pos, err := p.Positions(view.Working)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	table := make([][]float64, len(view.Targets))
	for i, t := range view.Targets {
		w, err := kernel.EdgeWeights(t, view.First[i], pos, params)
		if err != nil {
			return nil, err
		}
		table[i] = w
	}

	return table, nil
}

// Iterations returns the configured round count.
func (s *Smoother) Iterations() int { return s.iterations }

// EdgeWeights returns the precomputed RBF weights of target i, or nil.
func (s *Smoother) EdgeWeights(i int) []float64 {
	if s.edgeWeights == nil {
		return nil
	}
	return s.edgeWeights[i]
}

// Run iterates the kernel over buf.
//
// Implementation:
//   - Stage 1: check every working vertex is in buf (nothing is mutated on failure).
//   - Stage 2: seed the round output with the targets' current vectors.
//   - Stage 3: per round, evaluate every target into the round output reading
//     only buf; if rounds remain, commit the round output to buf.
//
// buf's frontier entries are never written. Target entries hold the value of
// round iterations−1 on return; callers needing the pre-smoothing values must
// snapshot them before Run.
func (s *Smoother) Run(buf *weights.Buffer) (*Result, error) {
	v := s.view
	if err := buf.Require(v.Working); err != nil {
		return nil, err
	}
	next, err := buf.Snapshot(v.Targets)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Targets: append([]weights.VertexIndex(nil), v.Targets...),
		Vectors: next,
	}

	for round := 0; round < s.iterations; round++ {
		for i, t := range v.Targets {
			dst := next[i]
			switch s.spec.Kind {
			case kernel.Laplacian:
				kernel.ApplyLaplacian(dst, v.First[i], buf)
			case kernel.RBF:
				copy(dst, buf.Get(t))
				if !kernel.ApplyRBF(dst, v.First[i], s.edgeWeights[i], buf) {
					res.Stalled++
				}
			case kernel.Biharmonic:
				kernel.ApplyBiharmonic(dst, v.First[i], v.Second[i], buf, s.spec.Biharmonic.FirstOrder, s.spec.Biharmonic.SecondOrder)
			case kernel.Relax:
				kernel.ApplyRelax(dst, t, v.First[i], buf, s.spec.Relax.Factor)
			}
		}
		res.Rounds++
		if round < s.iterations-1 {
			if err := buf.Commit(v.Targets, next); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}
