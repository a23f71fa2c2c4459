package runtime_test

import (
	"errors"
	"testing"

	"github.com/aretw0/grove/internal/runtime"
	"github.com/aretw0/grove/internal/testutils"
	"github.com/aretw0/grove/pkg/behavior"
)

func newEngine(t *testing.T) *runtime.Engine[int, *world] {
	t.Helper()
	return runtime.New[int, *world](&listSource[int, *world]{})
}

func TestCreateAssignsSequentialHandles(t *testing.T) {
	eng := newEngine(t)
	roots := []*testutils.Script[int, *world]{
		testutils.NewScript[int, *world](behavior.Success),
		testutils.NewScript[int, *world](behavior.Failure),
		testutils.NewScript[int, *world](behavior.Running),
	}
	for i, root := range roots {
		if id := eng.Create(root); int(id) != i {
			t.Fatalf("Create #%d returned handle %d, want %d", i, id, i)
		}
	}

	ids := eng.Trees()
	if len(ids) != len(roots) {
		t.Fatalf("Trees() returned %d ids, want %d", len(ids), len(roots))
	}
	for i, id := range ids {
		if int(id) != i {
			t.Errorf("Trees()[%d] = %d, want %d", i, id, i)
		}
		node, err := eng.Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%d) error = %v", id, err)
		}
		if node != behavior.Behavior[int, *world](roots[i]) {
			t.Errorf("Lookup(%d) handed back a different node than stored", id)
		}
	}
}

func TestCreateRejectsNilRoot(t *testing.T) {
	eng := newEngine(t)
	wantPanic(t, func() {
		eng.Create(nil)
	})
}

func TestLookupUnknownTree(t *testing.T) {
	eng := newEngine(t)
	eng.Create(testutils.NewScript[int, *world](behavior.Success))

	for _, id := range []behavior.TreeID{-1, 1, 99} {
		if _, err := eng.Lookup(id); !errors.Is(err, behavior.ErrUnknownTree) {
			t.Errorf("Lookup(%d) error = %v, want ErrUnknownTree", id, err)
		}
	}
}

func TestScopedHandsOutAndRestores(t *testing.T) {
	eng := newEngine(t)
	root := testutils.NewScript[int, *world](behavior.Success)
	id := eng.Create(root)

	called := false
	eng.Scoped(id, func(node behavior.Behavior[int, *world]) {
		called = true
		if node != behavior.Behavior[int, *world](root) {
			t.Errorf("Scoped handed a different node than stored")
		}
		if _, err := eng.Lookup(id); !errors.Is(err, behavior.ErrUnknownTree) {
			t.Errorf("Lookup inside scope error = %v, want ErrUnknownTree while vacated", err)
		}
	})
	if !called {
		t.Fatalf("Scoped callback never ran")
	}

	node, err := eng.Lookup(id)
	if err != nil {
		t.Fatalf("Lookup after scope error = %v", err)
	}
	if node != behavior.Behavior[int, *world](root) {
		t.Errorf("slot not restored to the original node")
	}
}

func TestScopedRestoresAfterPanic(t *testing.T) {
	eng := newEngine(t)
	id := eng.Create(testutils.NewScript[int, *world](behavior.Success))

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected the callback panic to propagate")
			}
		}()
		eng.Scoped(id, func(behavior.Behavior[int, *world]) {
			panic("callback exploded")
		})
	}()

	if _, err := eng.Lookup(id); err != nil {
		t.Fatalf("Lookup after panicking scope error = %v, want restored slot", err)
	}
}

func TestScopedUnknownTreeIsNoop(t *testing.T) {
	eng := newEngine(t)
	eng.Scoped(7, func(behavior.Behavior[int, *world]) {
		t.Fatalf("callback ran for an unknown tree")
	})
}

func TestScopedSurvivesReentrantCreate(t *testing.T) {
	eng := newEngine(t)
	first := eng.Create(testutils.NewScript[int, *world](behavior.Success))

	var grown []behavior.TreeID
	eng.Scoped(first, func(behavior.Behavior[int, *world]) {
		// Grow the registry enough to force the slot slice to reallocate
		// while the scoped slot is vacated.
		for i := 0; i < 16; i++ {
			grown = append(grown, eng.Create(testutils.NewScript[int, *world](behavior.Running)))
		}
	})

	if _, err := eng.Lookup(first); err != nil {
		t.Fatalf("Lookup(%d) after reentrant creates error = %v", first, err)
	}
	for _, id := range grown {
		if _, err := eng.Lookup(id); err != nil {
			t.Errorf("Lookup(%d) for tree created inside scope error = %v", id, err)
		}
	}
	if got := len(eng.Trees()); got != 17 {
		t.Errorf("Trees() length = %d, want 17", got)
	}
}
