package script

import (
	"fmt"
	"log/slog"

	"github.com/dop251/goja"

	"github.com/aretw0/grove/pkg/behavior"
)

// EnvFunc builds the variables exposed to the script for one tick. The
// builder should produce the same keys every tick; variables from a
// previous tick stay visible until overwritten.
type EnvFunc[S comparable, W any] func(subject S, w W) map[string]any

// Leaf runs a compiled JavaScript program as a tree leaf. The program
// is compiled once at construction; the VM is created in Initialize and
// lives as long as the tree, so script globals persist across ticks.
//
// The program's completion value maps to a status: booleans through
// FromBool, the strings "success", "failure" and "running" to their
// statuses, null and undefined to Failure. Anything else logs and reads
// as Failure, as does a thrown error.
type Leaf[S comparable, W any] struct {
	name    string
	program *goja.Program
	env     EnvFunc[S, W]
	vm      *goja.Runtime
	logger  *slog.Logger
}

var _ behavior.Behavior[string, any] = (*Leaf[string, any])(nil)

type config struct {
	logger *slog.Logger
}

// Option adjusts leaf construction.
type Option func(*config)

// WithLogger routes script failures to logger instead of the process
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// NewLeaf compiles source (strict mode) under name and returns a leaf
// running it. Syntax problems surface here, never at tick time.
func NewLeaf[S comparable, W any](name, source string, env EnvFunc[S, W], opts ...Option) (*Leaf[S, W], error) {
	if env == nil {
		return nil, fmt.Errorf("compile script %q: nil environment builder", name)
	}

	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	program, err := goja.Compile(name, source, true)
	if err != nil {
		return nil, fmt.Errorf("compile script %q: %w", name, err)
	}
	return &Leaf[S, W]{
		name:    name,
		program: program,
		env:     env,
		logger:  cfg.logger,
	}, nil
}

// Kind labels the node for inspection surfaces.
func (l *Leaf[S, W]) Kind() string { return "script" }

func (l *Leaf[S, W]) Initialize(W) {
	l.vm = goja.New()
}

// Tick injects the environment for subject and runs the program.
func (l *Leaf[S, W]) Tick(subject S, w W) behavior.Status {
	for k, v := range l.env(subject, w) {
		l.vm.Set(k, v)
	}

	value, err := l.vm.RunProgram(l.program)
	if err != nil {
		l.logger.Warn("script failed", "script", l.name, "err", err)
		return behavior.Failure
	}
	return l.status(value)
}

func (l *Leaf[S, W]) status(value goja.Value) behavior.Status {
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return behavior.Failure
	}
	switch v := value.Export().(type) {
	case bool:
		return behavior.FromBool(v)
	case string:
		switch v {
		case "success":
			return behavior.Success
		case "failure":
			return behavior.Failure
		case "running":
			return behavior.Running
		}
	}
	l.logger.Warn("script returned unusable status", "script", l.name, "value", value.String())
	return behavior.Failure
}
