package expr

import (
	"fmt"
	"log/slog"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/aretw0/grove/pkg/behavior"
)

// EnvFunc builds the expression environment for one evaluation. Hosts
// expose whatever slice of the world the expression should see.
type EnvFunc[S comparable, W any] func(subject S, w W) map[string]any

// Condition evaluates an expr-lang expression as a behavior.Condition.
// The expression is compiled once at construction; Test runs the
// compiled program against the environment built for the subject.
//
// Evaluation failures are logged and read as false, so a broken
// expression gates its branch closed instead of crashing the pass.
type Condition[S comparable, W any] struct {
	source  string
	program *vm.Program
	env     EnvFunc[S, W]
	logger  *slog.Logger
}

var _ behavior.Condition[string, any] = (*Condition[string, any])(nil)

type config struct {
	logger *slog.Logger
}

// Option adjusts condition construction.
type Option func(*config)

// WithLogger routes evaluation failures to logger instead of the
// process default.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// NewCondition compiles source and returns a condition evaluating it
// with the environments env produces. The program must yield a boolean;
// syntax and type problems surface here, never at tick time.
func NewCondition[S comparable, W any](source string, env EnvFunc[S, W], opts ...Option) (*Condition[S, W], error) {
	if env == nil {
		return nil, fmt.Errorf("compile condition %q: nil environment builder", source)
	}

	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	program, err := exprlang.Compile(source, exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile condition %q: %w", source, err)
	}
	return &Condition[S, W]{
		source:  source,
		program: program,
		env:     env,
		logger:  cfg.logger,
	}, nil
}

func (c *Condition[S, W]) Initialize(W) {}

// Test evaluates the expression for subject. Runtime failures (type
// mismatches the compiler could not see, undefined variables) log at
// Warn and read as false.
func (c *Condition[S, W]) Test(subject S, w W) bool {
	result, err := exprlang.Run(c.program, c.env(subject, w))
	if err != nil {
		c.logger.Warn("condition evaluation failed", "expression", c.source, "err", err)
		return false
	}
	ok, _ := result.(bool)
	return ok
}
