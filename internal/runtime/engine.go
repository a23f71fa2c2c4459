// Package runtime implements the tree registry and the tick driver
// behind the public grove facade: it stores root nodes under index
// handles, initializes each tree exactly once, and runs deterministic
// tick passes over the subjects a source reports active.
package runtime

import (
	"log/slog"

	"github.com/aretw0/grove/internal/logging"
	"github.com/aretw0/grove/pkg/behavior"
	"github.com/aretw0/grove/pkg/ports"
)

// Engine owns the stored trees and drives their ticks.
//
// Engine is not safe for concurrent use: all passes run on one
// goroutine, matching the cooperative single-threaded execution model.
// Sources may be managed concurrently; only Active is called from the
// pass.
type Engine[S comparable, W any] struct {
	source ports.SubjectSource[S, W]
	slots  []behavior.Behavior[S, W]
	inited map[behavior.TreeID]struct{}
	hooks  behavior.Hooks
	logger *slog.Logger
	world  any
	passes uint64
}

type config struct {
	hooks  behavior.Hooks
	logger *slog.Logger
}

// EngineOption configures an Engine. Options carry no type parameters
// so call sites infer the engine's types from the source alone.
type EngineOption func(*config)

// WithLogger sets the structured logger. The default discards.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks behavior.Hooks) EngineOption {
	return func(c *config) {
		c.hooks = hooks
	}
}

// New creates an engine reading its active subjects from source.
func New[S comparable, W any](source ports.SubjectSource[S, W], opts ...EngineOption) *Engine[S, W] {
	if source == nil {
		panic("runtime: nil subject source")
	}
	cfg := config{logger: logging.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Engine[S, W]{
		source: source,
		inited: make(map[behavior.TreeID]struct{}),
		hooks:  cfg.hooks,
		logger: cfg.logger,
	}
}

// Passes returns how many tick passes have completed.
func (e *Engine[S, W]) Passes() uint64 { return e.passes }
