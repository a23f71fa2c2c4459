package grove

import (
	"context"

	"github.com/aretw0/grove/internal/presentation/graph"
	"github.com/aretw0/grove/internal/runtime"
	"github.com/aretw0/grove/pkg/behavior"
	"github.com/aretw0/grove/pkg/ports"
)

// Engine is the high-level entry point for the Grove library.
// It wraps the internal runtime and provides the full tree lifecycle for
// consumers: store trees, tick the active subjects, inspect structure.
//
// S identifies subjects (entities, session ids, player ids) and W is the
// host's world, handed through to every node untouched.
type Engine[S comparable, W any] struct {
	rt *runtime.Engine[S, W]
}

// New initializes a new Grove Engine reading its active subjects from
// source. Defaults: no-op logger and empty hooks.
func New[S comparable, W any](source ports.SubjectSource[S, W], opts ...Option) *Engine[S, W] {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rtOpts := []runtime.EngineOption{runtime.WithHooks(cfg.hooks)}
	if cfg.logger != nil {
		rtOpts = append(rtOpts, runtime.WithLogger(cfg.logger))
	}
	return &Engine[S, W]{rt: runtime.New[S, W](source, rtOpts...)}
}

// Create stores root and returns its handle. Many subjects may run the
// same handle; the tree initializes lazily on the first pass that
// references it.
func (e *Engine[S, W]) Create(root behavior.Behavior[S, W]) behavior.TreeID {
	return e.rt.Create(root)
}

// Tick runs one pass: every active subject's tree advances by exactly
// one step. Subjects sharing a tree run together, in the order the
// source reported them. Only a subject-source failure is returned;
// per-subject statuses are delivered through hooks.
func (e *Engine[S, W]) Tick(ctx context.Context, w W) error {
	return e.rt.Tick(ctx, w)
}

// Scoped temporarily removes the tree at id and hands it to fn,
// restoring it afterwards even if fn panics. The callback may re-enter
// the engine, for instance to Create another tree. Unknown handles are
// a no-op.
func (e *Engine[S, W]) Scoped(id behavior.TreeID, fn func(behavior.Behavior[S, W])) {
	e.rt.Scoped(id, fn)
}

// Trees lists stored tree handles in creation order.
func (e *Engine[S, W]) Trees() []behavior.TreeID {
	return e.rt.Trees()
}

// Initialized reports whether the tree at id has completed its one-time
// initialization.
func (e *Engine[S, W]) Initialized(id behavior.TreeID) bool {
	return e.rt.Initialized(id)
}

// Passes returns how many tick passes have completed.
func (e *Engine[S, W]) Passes() uint64 {
	return e.rt.Passes()
}

// TreeInfo summarizes a stored tree for inspection and debug surfaces.
type TreeInfo struct {
	ID          behavior.TreeID `json:"id"`
	Kind        string          `json:"kind"`
	Nodes       int             `json:"nodes"`
	Initialized bool            `json:"initialized"`
}

// Describe returns structural metadata for the tree at id. It fails
// with behavior.ErrUnknownTree for handles the engine does not hold.
func (e *Engine[S, W]) Describe(id behavior.TreeID) (TreeInfo, error) {
	root, err := e.rt.Lookup(id)
	if err != nil {
		return TreeInfo{}, err
	}
	return TreeInfo{
		ID:          id,
		Kind:        behavior.KindOf(root),
		Nodes:       behavior.Count(root),
		Initialized: e.rt.Initialized(id),
	}, nil
}

// Graph renders the tree at id as Mermaid flowchart source. It fails
// with behavior.ErrUnknownTree for handles the engine does not hold.
func (e *Engine[S, W]) Graph(id behavior.TreeID) (string, error) {
	root, err := e.rt.Lookup(id)
	if err != nil {
		return "", err
	}
	return graph.Mermaid(root), nil
}
