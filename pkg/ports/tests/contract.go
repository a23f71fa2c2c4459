// Package tests holds reusable contract suites for grove ports. Adapter
// packages call these from their own tests to prove compliance.
package tests

import (
	"context"
	"testing"

	"github.com/aretw0/grove/pkg/behavior"
	"github.com/aretw0/grove/pkg/ports"
)

// RosterContract is a reusable test suite that verifies a roster
// implementation complies with ports.Roster. fresh must return an empty
// roster on every call; world is passed to Active untouched.
//
// Subjects are assigned in lexicographic order so the suite can assert
// exact Active output for both arrival-ordered and sorted rosters.
func RosterContract[W any](t *testing.T, fresh func(t *testing.T) ports.Roster[string, W], world W) {
	t.Helper()
	ctx := context.Background()

	seed := func(t *testing.T) ports.Roster[string, W] {
		t.Helper()
		r := fresh(t)
		for i, subject := range []string{"alpha", "bravo", "charlie"} {
			if err := r.Assign(ctx, subject, behavior.TreeID(i)); err != nil {
				t.Fatalf("seed Assign(%q) error = %v", subject, err)
			}
		}
		return r
	}

	active := func(t *testing.T, r ports.Roster[string, W]) []behavior.Assignment[string] {
		t.Helper()
		got, err := r.Active(ctx, world)
		if err != nil {
			t.Fatalf("Active() error = %v", err)
		}
		return got
	}

	expect := func(t *testing.T, got []behavior.Assignment[string], want ...behavior.Assignment[string]) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("Active() returned %d assignments %v, want %d %v", len(got), got, len(want), want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Active()[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
	}

	t.Run("Empty", func(t *testing.T) {
		r := fresh(t)
		expect(t, active(t, r))
	})

	t.Run("AssignThenActive", func(t *testing.T) {
		r := seed(t)
		expect(t, active(t, r),
			behavior.Assignment[string]{Subject: "alpha", Tree: 0},
			behavior.Assignment[string]{Subject: "bravo", Tree: 1},
			behavior.Assignment[string]{Subject: "charlie", Tree: 2},
		)
	})

	t.Run("ReassignChangesTreeWithoutDuplicating", func(t *testing.T) {
		r := seed(t)
		if err := r.Assign(ctx, "alpha", 7); err != nil {
			t.Fatalf("Assign() error = %v", err)
		}
		got := active(t, r)
		if len(got) != 3 {
			t.Fatalf("Active() returned %d assignments after reassign, want 3", len(got))
		}
		for _, a := range got {
			if a.Subject == "alpha" && a.Tree != 7 {
				t.Errorf("alpha runs tree %d after reassign, want 7", a.Tree)
			}
		}
	})

	t.Run("SkipExcludes", func(t *testing.T) {
		r := seed(t)
		if err := r.Skip(ctx, "bravo"); err != nil {
			t.Fatalf("Skip() error = %v", err)
		}
		expect(t, active(t, r),
			behavior.Assignment[string]{Subject: "alpha", Tree: 0},
			behavior.Assignment[string]{Subject: "charlie", Tree: 2},
		)
	})

	t.Run("SkipUnknownSubject", func(t *testing.T) {
		r := fresh(t)
		if err := r.Skip(ctx, "ghost"); err == nil {
			t.Error("Skip() of an unenrolled subject returned nil error")
		}
	})

	t.Run("UnskipRestores", func(t *testing.T) {
		r := seed(t)
		if err := r.Skip(ctx, "bravo"); err != nil {
			t.Fatalf("Skip() error = %v", err)
		}
		if err := r.Unskip(ctx, "bravo"); err != nil {
			t.Fatalf("Unskip() error = %v", err)
		}
		expect(t, active(t, r),
			behavior.Assignment[string]{Subject: "alpha", Tree: 0},
			behavior.Assignment[string]{Subject: "bravo", Tree: 1},
			behavior.Assignment[string]{Subject: "charlie", Tree: 2},
		)
	})

	t.Run("AssignClearsSkip", func(t *testing.T) {
		r := seed(t)
		if err := r.Skip(ctx, "charlie"); err != nil {
			t.Fatalf("Skip() error = %v", err)
		}
		if err := r.Assign(ctx, "charlie", 2); err != nil {
			t.Fatalf("Assign() error = %v", err)
		}
		got := active(t, r)
		if len(got) != 3 {
			t.Errorf("Active() returned %d assignments, want 3 (reassign must clear skip)", len(got))
		}
	})

	t.Run("Remove", func(t *testing.T) {
		r := seed(t)
		if err := r.Remove(ctx, "bravo"); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		expect(t, active(t, r),
			behavior.Assignment[string]{Subject: "alpha", Tree: 0},
			behavior.Assignment[string]{Subject: "charlie", Tree: 2},
		)
		if err := r.Skip(ctx, "bravo"); err == nil {
			t.Error("Skip() of a removed subject returned nil error")
		}
	})

	t.Run("RemoveUnknownIsNoop", func(t *testing.T) {
		r := fresh(t)
		if err := r.Remove(ctx, "ghost"); err != nil {
			t.Errorf("Remove() of an unenrolled subject error = %v, want nil", err)
		}
	})

	t.Run("ActiveIsDeterministic", func(t *testing.T) {
		r := seed(t)
		first := active(t, r)
		second := active(t, r)
		expect(t, second, first...)
	})
}
