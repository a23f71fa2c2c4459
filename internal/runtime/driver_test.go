package runtime_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/grove/internal/runtime"
	"github.com/aretw0/grove/internal/testutils"
	"github.com/aretw0/grove/pkg/behavior"
)

type world struct {
	name string
}

// listSource hands out a copy of its assignments so the driver's
// in-place sort cannot disturb the fixture.
type listSource[S comparable, W any] struct {
	pairs []behavior.Assignment[S]
	err   error
	calls int
}

func (s *listSource[S, W]) Active(context.Context, W) ([]behavior.Assignment[S], error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]behavior.Assignment[S], len(s.pairs))
	copy(out, s.pairs)
	return out, nil
}

func wantPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

func TestNewRejectsNilSource(t *testing.T) {
	wantPanic(t, func() {
		runtime.New[int, *world](nil)
	})
}

func TestTickRunsEveryActiveSubject(t *testing.T) {
	src := &listSource[int, *world]{}
	eng := runtime.New[int, *world](src)
	leaf := testutils.NewScript[int, *world](behavior.Success)
	id := eng.Create(leaf)
	src.pairs = []behavior.Assignment[int]{
		{Subject: 1, Tree: id},
		{Subject: 2, Tree: id},
		{Subject: 3, Tree: id},
	}

	if err := eng.Tick(context.Background(), &world{name: "w"}); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if leaf.Ticks != 3 {
		t.Errorf("leaf ticks = %d, want 3", leaf.Ticks)
	}
	if src.calls != 1 {
		t.Errorf("source queried %d times, want 1", src.calls)
	}
	if eng.Passes() != 1 {
		t.Errorf("Passes() = %d, want 1", eng.Passes())
	}
}

func TestTickInitializesTreeExactlyOnce(t *testing.T) {
	src := &listSource[int, *world]{}
	eng := runtime.New[int, *world](src)
	leaf := testutils.NewScript[int, *world](behavior.Running)
	id := eng.Create(leaf)
	for s := 0; s < 1000; s++ {
		src.pairs = append(src.pairs, behavior.Assignment[int]{Subject: s, Tree: id})
	}

	w := &world{}
	for pass := 0; pass < 3; pass++ {
		if err := eng.Tick(context.Background(), w); err != nil {
			t.Fatalf("pass %d: Tick() error = %v", pass, err)
		}
	}
	if leaf.Inits != 1 {
		t.Errorf("tree initialized %d times, want exactly 1", leaf.Inits)
	}
	if leaf.Ticks != 3000 {
		t.Errorf("leaf ticks = %d, want 3000", leaf.Ticks)
	}
	if !eng.Initialized(id) {
		t.Errorf("Initialized(%d) = false, want true", id)
	}
}

func TestTickInitializesOnlyReferencedTrees(t *testing.T) {
	src := &listSource[int, *world]{}
	eng := runtime.New[int, *world](src)
	used := eng.Create(testutils.NewScript[int, *world](behavior.Success))
	idle := eng.Create(testutils.NewScript[int, *world](behavior.Success))
	src.pairs = []behavior.Assignment[int]{{Subject: 1, Tree: used}}

	if err := eng.Tick(context.Background(), &world{}); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if !eng.Initialized(used) {
		t.Errorf("Initialized(%d) = false, want true", used)
	}
	if eng.Initialized(idle) {
		t.Errorf("Initialized(%d) = true for a tree no subject runs", idle)
	}
}

func TestTickOrdersByTreeThenArrival(t *testing.T) {
	src := &listSource[string, *world]{}
	var got []string
	eng := runtime.New[string, *world](src, runtime.WithHooks(behavior.Hooks{
		OnTick: func(_ context.Context, ev *behavior.TickEvent) {
			got = append(got, ev.Subject.(string))
		},
	}))
	first := eng.Create(testutils.NewScript[string, *world](behavior.Success))
	second := eng.Create(testutils.NewScript[string, *world](behavior.Success))
	src.pairs = []behavior.Assignment[string]{
		{Subject: "c", Tree: second},
		{Subject: "a", Tree: first},
		{Subject: "b", Tree: second},
		{Subject: "d", Tree: first},
	}

	if err := eng.Tick(context.Background(), &world{}); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	want := []string{"a", "d", "c", "b"}
	if len(got) != len(want) {
		t.Fatalf("ticked %d subjects, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick order[%d] = %q, want %q (full order %v)", i, got[i], want[i], got)
		}
	}
}

func TestTickSkipsUnknownTree(t *testing.T) {
	var buf bytes.Buffer
	src := &listSource[int, *world]{}
	eng := runtime.New[int, *world](src,
		runtime.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	leaf := testutils.NewScript[int, *world](behavior.Success)
	id := eng.Create(leaf)
	src.pairs = []behavior.Assignment[int]{
		{Subject: 1, Tree: 42},
		{Subject: 2, Tree: id},
	}

	if err := eng.Tick(context.Background(), &world{}); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if leaf.Ticks != 1 {
		t.Errorf("known tree ticked %d times, want 1", leaf.Ticks)
	}
	if !strings.Contains(buf.String(), "unknown tree") {
		t.Errorf("log output missing unknown-tree warning:\n%s", buf.String())
	}
}

func TestTickSurfacesSourceError(t *testing.T) {
	boom := errors.New("roster offline")
	src := &listSource[int, *world]{err: boom}
	var passes int
	eng := runtime.New[int, *world](src, runtime.WithHooks(behavior.Hooks{
		OnPass: func(context.Context, *behavior.PassEvent) { passes++ },
	}))

	err := eng.Tick(context.Background(), &world{})
	if !errors.Is(err, boom) {
		t.Fatalf("Tick() error = %v, want wrap of %v", err, boom)
	}
	if passes != 0 {
		t.Errorf("pass hook fired %d times on a failed pass, want 0", passes)
	}
	if eng.Passes() != 0 {
		t.Errorf("Passes() = %d after failed pass, want 0", eng.Passes())
	}
}

func TestTickPanicsOnMismatchedWorld(t *testing.T) {
	src := &listSource[int, *world]{}
	eng := runtime.New[int, *world](src)
	if err := eng.Tick(context.Background(), &world{name: "one"}); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	wantPanic(t, func() {
		_ = eng.Tick(context.Background(), &world{name: "two"})
	})
}

func TestTickAcceptsValueWorldCopies(t *testing.T) {
	type flat struct{ n int }
	src := &listSource[int, flat]{}
	eng := runtime.New[int, flat](src)
	id := eng.Create(testutils.NewScript[int, flat](behavior.Success))
	src.pairs = []behavior.Assignment[int]{{Subject: 1, Tree: id}}

	if err := eng.Tick(context.Background(), flat{n: 1}); err != nil {
		t.Fatalf("first Tick() error = %v", err)
	}
	if err := eng.Tick(context.Background(), flat{n: 2}); err != nil {
		t.Fatalf("second Tick() error = %v", err)
	}
	if eng.Passes() != 2 {
		t.Errorf("Passes() = %d, want 2", eng.Passes())
	}
}

func TestHooksObserveLifecycle(t *testing.T) {
	src := &listSource[int, *world]{}
	var inits []behavior.TreeID
	var ticks []behavior.Status
	var pairs []int
	eng := runtime.New[int, *world](src, runtime.WithHooks(behavior.Hooks{
		OnTreeInit: func(_ context.Context, ev *behavior.InitEvent) {
			inits = append(inits, ev.Tree)
		},
		OnTick: func(_ context.Context, ev *behavior.TickEvent) {
			ticks = append(ticks, ev.Status)
		},
		OnPass: func(_ context.Context, ev *behavior.PassEvent) {
			pairs = append(pairs, ev.Pairs)
		},
	}))
	id := eng.Create(testutils.NewScript[int, *world](behavior.Running, behavior.Success))
	src.pairs = []behavior.Assignment[int]{
		{Subject: 1, Tree: id},
		{Subject: 2, Tree: id},
	}

	if err := eng.Tick(context.Background(), &world{}); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if len(inits) != 1 || inits[0] != id {
		t.Errorf("init events = %v, want exactly [%d]", inits, id)
	}
	if len(ticks) != 2 || ticks[0] != behavior.Running || ticks[1] != behavior.Success {
		t.Errorf("tick statuses = %v, want [running success]", ticks)
	}
	if len(pairs) != 1 || pairs[0] != 2 {
		t.Errorf("pass events = %v, want exactly [2]", pairs)
	}
}
