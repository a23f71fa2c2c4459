package behavior

import (
	"context"
	"time"
)

// InitEvent fires when a tree completes its one-time initialization.
type InitEvent struct {
	Tree TreeID
}

// TickEvent fires after every node tick the driver performs. Subject is
// carried as any so hook consumers stay independent of the engine's
// subject type; format it, do not steer tree logic with it.
type TickEvent struct {
	Tree    TreeID
	Subject any
	Status  Status
	Elapsed time.Duration
}

// PassEvent fires at the end of each driver pass.
type PassEvent struct {
	Pairs   int
	Elapsed time.Duration
}

// Hooks defines callbacks for engine observability. Nil fields are
// skipped. Hooks run synchronously inside the pass; keep them cheap.
type Hooks struct {
	OnTreeInit func(context.Context, *InitEvent)
	OnTick     func(context.Context, *TickEvent)
	OnPass     func(context.Context, *PassEvent)
}

// JoinHooks merges hook sets into one that fans each event out in
// argument order, letting metrics, logging and tracing observe the same
// engine together.
func JoinHooks(hs ...Hooks) Hooks {
	return Hooks{
		OnTreeInit: func(ctx context.Context, ev *InitEvent) {
			for _, h := range hs {
				if h.OnTreeInit != nil {
					h.OnTreeInit(ctx, ev)
				}
			}
		},
		OnTick: func(ctx context.Context, ev *TickEvent) {
			for _, h := range hs {
				if h.OnTick != nil {
					h.OnTick(ctx, ev)
				}
			}
		},
		OnPass: func(ctx context.Context, ev *PassEvent) {
			for _, h := range hs {
				if h.OnPass != nil {
					h.OnPass(ctx, ev)
				}
			}
		},
	}
}
