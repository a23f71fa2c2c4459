package runner

import (
	"log/slog"
	"time"

	"github.com/aretw0/grove/internal/logging"
)

// DefaultInterval is the time between passes when WithInterval is not
// given.
const DefaultInterval = 100 * time.Millisecond

type config struct {
	interval time.Duration
	passes   uint64
	logger   *slog.Logger
}

// Option defines a functional option for configuring a run.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		interval: DefaultInterval,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithInterval sets the time between passes.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithPasses stops the run after n completed passes. Zero means no
// limit.
func WithPasses(n uint64) Option {
	return func(c *config) {
		c.passes = n
	}
}

// WithLogger sets the structured logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
