/*
Package grove is a behavior-tree execution engine for simulations, game
servers, bots, and agent systems.

A host application composes decision logic out of reusable nodes (leaves,
decorators, composites), stores the resulting trees in an engine, and
attaches each stored tree to any number of independent subjects. One call
to Tick advances every active subject's tree by a single step and reports
a tri-state Status (Success, Failure, Running) per subject through hooks.

# Concept

Grove treats decision logic as shared data. A tree definition is built
once and served to every subject that runs it; per-subject progress
through Sequence and Select nodes is tracked by the engine, while
per-subject domain state (positions, timers, targets) lives in the host's
world value, keyed by subject. This keeps trees cheap to share across
thousands of agents.

The core is free of I/O. Subject membership comes from a SubjectSource
port (in-memory or Redis rosters ship as adapters), observability flows
out through Hooks (Prometheus and slog adapters included), and the host
owns the tick cadence: call Tick from your own loop or use pkg/runner.

# Key Features

  - Deterministic Execution: each pass ticks every active subject exactly
    once, in sorted-tree-then-arrival order.
  - Shared Definitions: one stored tree serves any number of subjects
    with independent composite progress.
  - Lazy Initialization: a tree initializes exactly once, on the first
    pass that references it, no matter how many subjects share it.
  - Hexagonal Architecture: core logic is decoupled from adapters
    (rosters, scripted leaves, metrics, HTTP inspection).

# Usage

Build an engine around a roster, store a tree, assign subjects, and tick:

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/grove"
		"github.com/aretw0/grove/pkg/adapters/memory"
		"github.com/aretw0/grove/pkg/behavior"
	)

	type world struct {
		fuel map[string]int
	}

	func main() {
		roster := memory.NewRoster[string, *world]()
		eng := grove.New[string, *world](roster,
			grove.WithHooks(behavior.Hooks{
				OnTick: func(_ context.Context, ev *behavior.TickEvent) {
					fmt.Printf("%v: %s\n", ev.Subject, ev.Status)
				},
			}))

		// Burn one fuel per tick, then report whether any remains.
		patrol := eng.Create(behavior.Sequence(
			behavior.Func[string, *world](func(s string, w *world) behavior.Status {
				w.fuel[s]--
				return behavior.Success
			}),
			behavior.Bool[string, *world](func(s string, w *world) bool {
				return w.fuel[s] > 0
			}),
		))

		ctx := context.Background()
		if err := roster.Assign(ctx, "drone-1", patrol); err != nil {
			panic(err)
		}

		w := &world{fuel: map[string]int{"drone-1": 3}}
		for i := 0; i < 4; i++ {
			if err := eng.Tick(ctx, w); err != nil {
				panic(err)
			}
		}
	}

Decorators wrap any node (behavior.Retry, behavior.RunIf, behavior.Invert,
...), and pkg/dsl offers a fluent builder for larger trees.
*/
package grove
