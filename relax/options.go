// SPDX-License-Identifier: MIT

package relax

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/skinrelax/kernel"
	"github.com/katalvlaran/skinrelax/metrics"
	"github.com/katalvlaran/skinrelax/weights"
)

// ErrOptionViolation is returned by NewSession when an invalid Option was supplied.
var ErrOptionViolation = errors.New("relax: invalid option supplied")

// Option configures a Session. Invalid options are recorded and surfaced
// as ErrOptionViolation by NewSession.
type Option func(*sessionOptions)

type sessionOptions struct {
	logger    *slog.Logger
	locks     weights.LockProvider
	positions kernel.PositionProvider
	metrics   *metrics.Metrics
	id        string

	err error
}

func defaultOptions() sessionOptions {
	return sessionOptions{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *sessionOptions) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.logger = l
	}
}

// WithLocks sets the lock provider. Required when OnlyUnlockInfluences is on.
func WithLocks(p weights.LockProvider) Option {
	return func(o *sessionOptions) { o.locks = p }
}

// WithPositions sets the vertex position provider. Required by the RBF kernel.
func WithPositions(p kernel.PositionProvider) Option {
	return func(o *sessionOptions) { o.positions = p }
}

// WithMetrics records session outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *sessionOptions) { o.metrics = m }
}

// WithSessionID overrides the generated session ID used in logs and reports.
func WithSessionID(id string) Option {
	return func(o *sessionOptions) {
		if id == "" {
			o.err = fmt.Errorf("%w: empty session id", ErrOptionViolation)
			return
		}
		o.id = id
	}
}
