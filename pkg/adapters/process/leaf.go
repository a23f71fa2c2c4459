package process

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/aretw0/grove/pkg/behavior"
)

// EnvFunc builds per-tick environment variables for the command. Each
// entry is exported as GROVE_ARG_<KEY>; values reach the process only
// through the environment, never the argument list.
type EnvFunc[S comparable, W any] func(subject S, w W) map[string]string

// Leaf runs a registered external command as a tree leaf: exit 0 reads
// as Success, anything else (including a timeout) logs and reads as
// Failure. The tick blocks until the command finishes, so register
// short-lived probes, not daemons.
type Leaf[S comparable, W any] struct {
	name    string
	cmd     Command
	baseDir string
	env     EnvFunc[S, W]
	timeout time.Duration
	logger  *slog.Logger
}

var _ behavior.Behavior[string, any] = (*Leaf[string, any])(nil)

type leafConfig struct {
	timeout time.Duration
	logger  *slog.Logger
}

// LeafOption adjusts leaf construction.
type LeafOption func(*leafConfig)

// WithTimeout kills the command if a tick exceeds d. Zero means no
// limit.
func WithTimeout(d time.Duration) LeafOption {
	return func(cfg *leafConfig) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithLogger routes command failures to logger instead of the process
// default.
func WithLogger(logger *slog.Logger) LeafOption {
	return func(cfg *leafConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// NewLeaf resolves name against the registry and returns a leaf running
// that command. Unregistered names are construction errors. A nil env
// is allowed and exports nothing.
func NewLeaf[S comparable, W any](reg *Registry, name string, env EnvFunc[S, W], opts ...LeafOption) (*Leaf[S, W], error) {
	cmd, ok := reg.lookup(name)
	if !ok {
		return nil, fmt.Errorf("command %q not registered", name)
	}

	cfg := leafConfig{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Leaf[S, W]{
		name:    name,
		cmd:     cmd,
		baseDir: reg.baseDir,
		env:     env,
		timeout: cfg.timeout,
		logger:  cfg.logger,
	}, nil
}

// Kind labels the node for inspection surfaces.
func (l *Leaf[S, W]) Kind() string { return "process" }

func (l *Leaf[S, W]) Initialize(W) {}

// Tick runs the command once for subject.
func (l *Leaf[S, W]) Tick(subject S, w W) behavior.Status {
	ctx := context.Background()
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, l.cmd.Command, l.cmd.Args...)
	cmd.Dir = l.baseDir

	env := cmd.Environ()
	if l.env != nil {
		for k, v := range l.env(subject, w) {
			env = append(env, fmt.Sprintf("GROVE_ARG_%s=%s", strings.ToUpper(k), v))
		}
	}
	cmd.Env = env

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		l.logger.Warn("command failed",
			"command", l.name,
			"err", err,
			"stderr", strings.TrimSpace(stderr.String()),
		)
		return behavior.Failure
	}
	return behavior.Success
}
