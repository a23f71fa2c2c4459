package runtime

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/aretw0/grove/pkg/behavior"
)

// Tick runs one pass: query the active assignments, stable-sort them by
// tree so subjects sharing a tree are processed together and in arrival
// order, lazily initialize trees on first use, and tick every subject
// once. Only a subject-source failure surfaces as an error; per-subject
// statuses flow through the OnTick hook and are otherwise discarded.
func (e *Engine[S, W]) Tick(ctx context.Context, w W) error {
	e.guardWorld(w)
	started := time.Now()

	pairs, err := e.source.Active(ctx, w)
	if err != nil {
		return fmt.Errorf("query active subjects: %w", err)
	}

	slices.SortStableFunc(pairs, func(a, b behavior.Assignment[S]) int {
		return cmp.Compare(a.Tree, b.Tree)
	})

	for _, pair := range pairs {
		e.tickOne(ctx, pair, w)
	}

	e.passes++
	if e.hooks.OnPass != nil {
		e.hooks.OnPass(ctx, &behavior.PassEvent{Pairs: len(pairs), Elapsed: time.Since(started)})
	}
	e.logger.DebugContext(ctx, "pass complete",
		"pass", e.passes, "pairs", len(pairs), "elapsed", time.Since(started))
	return nil
}

func (e *Engine[S, W]) tickOne(ctx context.Context, pair behavior.Assignment[S], w W) {
	node, ok := e.take(pair.Tree)
	if !ok {
		e.logger.WarnContext(ctx, "unknown tree, skipping subject",
			"tree", int(pair.Tree), "subject", pair.Subject)
		return
	}
	defer e.restore(pair.Tree, node)

	if _, ok := e.inited[pair.Tree]; !ok {
		node.Initialize(w)
		e.inited[pair.Tree] = struct{}{}
		if e.hooks.OnTreeInit != nil {
			e.hooks.OnTreeInit(ctx, &behavior.InitEvent{Tree: pair.Tree})
		}
		e.logger.DebugContext(ctx, "tree initialized", "tree", int(pair.Tree))
	}

	tickStart := time.Now()
	st := node.Tick(pair.Subject, w)
	if e.hooks.OnTick != nil {
		e.hooks.OnTick(ctx, &behavior.TickEvent{
			Tree:    pair.Tree,
			Subject: pair.Subject,
			Status:  st,
			Elapsed: time.Since(tickStart),
		})
	}
}

// guardWorld panics when the engine is ticked against a different world
// than the one its trees were initialized with. Nodes may cache
// world-level setup during Initialize; ticking them against another
// world would corrupt that silently, so it aborts instead.
func (e *Engine[S, W]) guardWorld(w W) {
	wa := any(w)
	if wa == nil {
		return
	}
	if e.world == nil {
		e.world = wa
		return
	}
	if !sameWorld(e.world, wa) {
		panic("runtime: engine ticked with a mismatched world")
	}
}

// sameWorld compares world identity for reference kinds and settles for
// type identity otherwise (value worlds arrive as fresh copies every
// tick).
func sameWorld(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	default:
		return true
	}
}
