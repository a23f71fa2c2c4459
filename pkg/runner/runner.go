package runner

import (
	"context"
	"fmt"
	"time"
)

// Ticker is the engine surface the runner drives. *grove.Engine
// satisfies it.
type Ticker[W any] interface {
	Tick(ctx context.Context, w W) error
}

// Run drives eng.Tick against w on a fixed interval until ctx is done,
// the configured pass limit is reached, or a pass fails.
//
// A reached pass limit returns nil; cancellation returns ctx.Err() so
// hosts can tell a shutdown from a completed run; a failed pass returns
// the tick error wrapped with the pass number.
func Run[W any](ctx context.Context, eng Ticker[W], w W, opts ...Option) error {
	cfg := newConfig(opts)

	cfg.logger.Debug("runner started", "interval", cfg.interval, "pass_limit", cfg.passes)
	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	var done uint64
	for {
		select {
		case <-ctx.Done():
			cfg.logger.Debug("runner stopped", "cause", ctx.Err(), "passes", done)
			return ctx.Err()
		case <-ticker.C:
			if err := eng.Tick(ctx, w); err != nil {
				return fmt.Errorf("pass %d: %w", done+1, err)
			}
			done++
			if cfg.passes > 0 && done >= cfg.passes {
				cfg.logger.Debug("pass limit reached", "passes", done)
				return nil
			}
		}
	}
}
