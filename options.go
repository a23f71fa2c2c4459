package grove

import (
	"log/slog"

	"github.com/aretw0/grove/pkg/behavior"
)

type config struct {
	logger *slog.Logger
	hooks  behavior.Hooks
}

// Option defines a functional option for configuring the Engine.
// Options carry no type parameters so engine types are inferred from
// the subject source alone.
type Option func(*config)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks registers observability hooks. Compose several consumers
// with behavior.JoinHooks.
func WithHooks(hooks behavior.Hooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}
