// Package evlog provides opt-in debug instrumentation for the evaluation
// machinery. The library is silent by default; installing a zap logger via
// Use turns on debug events for thunk evaluation, proxy-chain flattening,
// trampoline runs, and future settlement.
package evlog

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Use installs the logger that receives evaluation events. Passing nil
// restores the default no-op logger.
func Use(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Enabled reports whether debug events are currently observed. Hot paths
// check this before assembling event fields.
func Enabled() bool {
	return logger.Load().Core().Enabled(zap.DebugLevel)
}

// NewID returns a fresh identity for an instrumented handle.
func NewID() string {
	return uuid.New().String()
}

// Evaluated records the first evaluation of a deferred computation.
func Evaluated(kind, id string) {
	logger.Load().Debug("computation evaluated",
		zap.String("kind", kind),
		zap.String("id", id),
	)
}

// Discarded records a redundant racing evaluation whose result lost the
// publication race and was thrown away.
func Discarded(kind, id string) {
	logger.Load().Debug("redundant evaluation discarded",
		zap.String("kind", kind),
		zap.String("id", id),
	)
}

// Flattened records the collapse of a chain of lazy redefinitions into its
// principal.
func Flattened(kind, id string, chainLen int) {
	logger.Load().Debug("proxy chain flattened",
		zap.String("kind", kind),
		zap.String("id", id),
		zap.Int("chain_len", chainLen),
	)
}

// Iterations records the number of bounces a trampolined evaluation took.
func Iterations(kind string, n uint64) {
	logger.Load().Debug("trampoline finished",
		zap.String("kind", kind),
		zap.Uint64("iterations", n),
	)
}

// Settled records a future handle settling, with the span between the
// handle's creation and its settlement.
func Settled(id string, span timespan.TimeSpan, failed bool) {
	logger.Load().Debug("future settled",
		zap.String("id", id),
		zap.String("span", span.String()),
		zap.Bool("failed", failed),
	)
}

// Span reports the interval between start and now.
func Span(start time.Time) timespan.TimeSpan {
	return timespan.BetweenTimes(start, time.Now())
}
