// SPDX-License-Identifier: MIT

package relax

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/skinrelax/adjacency"
	"github.com/katalvlaran/skinrelax/blend"
	"github.com/katalvlaran/skinrelax/kernel"
	"github.com/katalvlaran/skinrelax/metrics"
	"github.com/katalvlaran/skinrelax/smoother"
	"github.com/katalvlaran/skinrelax/weights"
)

// Sentinel errors for session lifecycle.
var (
	// ErrStoreNil is returned when no weights.Store is supplied.
	ErrStoreNil = errors.New("relax: weight store is nil")

	// ErrAdjacencyNil is returned when no adjacency.Provider is supplied.
	ErrAdjacencyNil = errors.New("relax: adjacency provider is nil")

	// ErrNoLocks is returned when OnlyUnlockInfluences is on without WithLocks.
	ErrNoLocks = fmt.Errorf("relax: only_unlock_influences needs a lock provider: %w", weights.ErrInvalidParameter)

	// ErrSessionDone is returned by a second Run on the same Session.
	ErrSessionDone = errors.New("relax: session already ran")
)

// Session is one smoothing request over a fixed set of target vertices.
type Session struct {
	id      string
	cfg     Config
	spec    kernel.Spec
	targets []weights.VertexIndex

	store     weights.Store
	adj       adjacency.Provider
	positions kernel.PositionProvider

	influences int
	mask       weights.LockMask
	blender    *blend.Blender

	logger  *slog.Logger
	metrics *metrics.Metrics
	ran     bool
}

// Report summarizes a finished session.
type Report struct {
	SessionID string
	Kernel    kernel.Kind
	Targets   []weights.VertexIndex
	// Working and Frontier are vertex counts; Frontier = Working − Targets.
	Working  int
	Frontier int
	Rounds   int
	// Stalled counts RBF evaluations that kept the previous value (Σ w == 0).
	Stalled  int
	Warnings []blend.DegenerateVertexWarning
	// Weights holds the vectors written back, keyed by target vertex.
	Weights  map[weights.VertexIndex]weights.WeightVector
	Duration time.Duration
}

// NewSession validates cfg, opts and the capabilities, then queries the lock
// provider once per influence.
//
// Implementation:
//   - Stage 1: options, config and capability checks. No Store call happens
//     if any of them fails.
//   - Stage 2: Store.InfluenceCount and the LockMask (when WithLocks is given).
//   - Stage 3: blender construction (rejects an all-locked mask when
//     conserving unlocked mass).
func NewSession(cfg Config, store weights.Store, adj adjacency.Provider, targets []weights.VertexIndex, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	spec, err := cfg.KernelSpec()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNil
	}
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	if len(targets) == 0 {
		return nil, adjacency.ErrNoTargets
	}
	if spec.NeedsPositions() && o.positions == nil {
		return nil, smoother.ErrNoPositions
	}
	if cfg.OnlyUnlockInfluences && o.locks == nil {
		return nil, ErrNoLocks
	}

	n := store.InfluenceCount()
	if n <= 0 {
		return nil, weights.NewParameterError("influences", n, "store reports no influences")
	}
	var mask weights.LockMask
	if o.locks != nil {
		mask = weights.NewLockMask(n, o.locks)
	}
	b, err := blend.New(mask, cfg.OnlyUnlockInfluences, cfg.BlendWeights)
	if err != nil {
		return nil, err
	}

	id := o.id
	if id == "" {
		id = uuid.NewString()
	}

	return &Session{
		id:         id,
		cfg:        cfg,
		spec:       spec,
		targets:    append([]weights.VertexIndex(nil), targets...),
		store:      store,
		adj:        adj,
		positions:  o.positions,
		influences: n,
		mask:       mask,
		blender:    b,
		logger:     o.logger.With("session", id, "kernel", spec.Kind.String()),
		metrics:    o.metrics,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Mask returns a copy of the lock mask, or nil when no lock provider was given.
func (s *Session) Mask() weights.LockMask { return s.mask.Clone() }

// Run executes the session. It may be called once; later calls return
// ErrSessionDone. On error nothing has been written to the Store.
func (s *Session) Run() (*Report, error) {
	if s.ran {
		return nil, ErrSessionDone
	}
	s.ran = true

	start := time.Now()
	s.logger.Debug("relax session started",
		"targets", len(s.targets),
		"iterations", s.cfg.Iterations,
		"only_unlock_influences", s.cfg.OnlyUnlockInfluences,
		"blend_weights", s.cfg.BlendWeights)

	rep, err := s.run()
	if err != nil {
		s.metrics.ObserveFailure(s.spec.Kind.String())
		s.logger.Warn("relax session failed", "error", err)
		return nil, err
	}
	rep.Duration = time.Since(start)
	s.metrics.ObserveSuccess(s.spec.Kind.String(), len(s.targets), len(rep.Warnings), rep.Duration)
	s.logger.Debug("relax session finished",
		"working", rep.Working,
		"rounds", rep.Rounds,
		"degenerate", len(rep.Warnings),
		"duration", rep.Duration)

	return rep, nil
}

func (s *Session) run() (*Report, error) {
	var expandOpts []adjacency.Option
	if s.spec.NeedsSecondOrder() {
		expandOpts = append(expandOpts, adjacency.WithSecondOrder())
	}
	view, err := adjacency.Expand(s.adj, s.targets, expandOpts...)
	if err != nil {
		return nil, err
	}

	snap, err := s.store.Read(view.Working)
	if err != nil {
		return nil, fmt.Errorf("relax: read weights: %w", err)
	}
	buf, err := weights.NewBuffer(s.influences, snap)
	if err != nil {
		return nil, err
	}
	if err := buf.Require(view.Working); err != nil {
		return nil, err
	}
	before, err := buf.Snapshot(view.Targets)
	if err != nil {
		return nil, err
	}

	sm, err := smoother.New(s.spec, s.cfg.Iterations, view, smoother.WithPositions(s.positions))
	if err != nil {
		return nil, err
	}
	res, err := sm.Run(buf)
	if err != nil {
		return nil, err
	}

	final := before
	var warnings []blend.DegenerateVertexWarning
	if res.Rounds > 0 {
		out, err := s.blender.Apply(view.Targets, res.Vectors, before)
		if err != nil {
			return nil, err
		}
		final, warnings = out.Vectors, out.Warnings
	}
	for _, w := range warnings {
		s.logger.Warn("degenerate vertex reverted",
			"vertex", w.Vertex,
			"before_total", w.BeforeTotal,
			"new_total", w.NewTotal)
	}

	written := make(map[weights.VertexIndex]weights.WeightVector, len(view.Targets))
	for i, t := range view.Targets {
		written[t] = final[i]
	}
	if err := s.store.Write(written); err != nil {
		return nil, fmt.Errorf("relax: write weights: %w", err)
	}

	return &Report{
		SessionID: s.id,
		Kernel:    s.spec.Kind,
		Targets:   append([]weights.VertexIndex(nil), view.Targets...),
		Working:   len(view.Working),
		Frontier:  len(view.Working) - len(view.Targets),
		Rounds:    res.Rounds,
		Stalled:   res.Stalled,
		Warnings:  warnings,
		Weights:   written,
	}, nil
}

// Relax is NewSession followed by Run.
func Relax(cfg Config, store weights.Store, adj adjacency.Provider, targets []weights.VertexIndex, opts ...Option) (*Report, error) {
	s, err := NewSession(cfg, store, adj, targets, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run()
}
