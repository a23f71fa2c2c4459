package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/grove/pkg/behavior"
)

// LogHooks returns hooks that log every engine event to logger at the
// given level. Meant for development; per-tick logging gets noisy at
// scale. A nil logger falls back to slog.Default().
func LogHooks(logger *slog.Logger, level slog.Level) behavior.Hooks {
	if logger == nil {
		logger = slog.Default()
	}
	return behavior.Hooks{
		OnTreeInit: func(ctx context.Context, ev *behavior.InitEvent) {
			logger.Log(ctx, level, "tree_init", "tree", int(ev.Tree))
		},
		OnTick: func(ctx context.Context, ev *behavior.TickEvent) {
			logger.Log(ctx, level, "tick",
				"tree", int(ev.Tree),
				"subject", ev.Subject,
				"status", ev.Status.String(),
				"elapsed", ev.Elapsed,
			)
		},
		OnPass: func(ctx context.Context, ev *behavior.PassEvent) {
			logger.Log(ctx, level, "pass",
				"pairs", ev.Pairs,
				"elapsed", ev.Elapsed,
			)
		},
	}
}
