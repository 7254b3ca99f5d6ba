// Package memolog reports memoization traffic to a zap logger.
package memolog

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rzane/memox/memoize"
)

// New returns an Observer that logs every memoization event through logger.
// Hits log at debug level, computations at info, failures at error. Attach
// it per registration with memoize.WithObserver.
func New(logger *zap.Logger) memoize.Observer {
	return zapObserver{logger: logger}
}

type zapObserver struct {
	logger *zap.Logger
}

func (z zapObserver) On(ev memoize.Event) {
	switch ev := ev.(type) {
	case memoize.Hit:
		z.logger.Debug("memoized value served",
			zap.String("op", string(ev.Op)),
		)
	case memoize.Computed:
		z.logger.Info("memoized value computed",
			zap.String("op", string(ev.Op)),
			zap.Time("started", ev.Span.Start()),
			zap.Duration("took", ev.Span.Duration()),
		)
	case memoize.Failed:
		z.logger.Error("memoized computation failed",
			zap.String("op", string(ev.Op)),
			zap.Duration("took", ev.Span.Duration()),
			zap.Error(ev.Err),
		)
	default:
		// This should never happen because Event is a sealed interface.
		panic(fmt.Errorf("invalid memoization event type: %T", ev))
	}
}
