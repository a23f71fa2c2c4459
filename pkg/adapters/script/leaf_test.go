package script_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/grove/pkg/adapters/script"
	"github.com/aretw0/grove/pkg/behavior"
)

type world struct {
	fuel map[string]int
}

func emptyEnv(string, *world) map[string]any {
	return nil
}

func newLeaf(t *testing.T, source string, env script.EnvFunc[string, *world], opts ...script.Option) *script.Leaf[string, *world] {
	t.Helper()
	leaf, err := script.NewLeaf[string, *world]("test.js", source, env, opts...)
	if err != nil {
		t.Fatalf("NewLeaf: %v", err)
	}
	leaf.Initialize(&world{})
	return leaf
}

func TestNewLeafRejectsBadSource(t *testing.T) {
	_, err := script.NewLeaf[string, *world]("bad.js", "function (", emptyEnv)
	if err == nil {
		t.Error("Expected syntax error")
	}
}

func TestNewLeafRejectsNilEnv(t *testing.T) {
	_, err := script.NewLeaf[string, *world]("bad.js", "true", nil)
	if err == nil {
		t.Error("Expected error for nil environment builder")
	}
}

func TestLeafStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   behavior.Status
	}{
		{"True", "true", behavior.Success},
		{"False", "false", behavior.Failure},
		{"SuccessString", `("success")`, behavior.Success},
		{"FailureString", `("failure")`, behavior.Failure},
		{"RunningString", `("running")`, behavior.Running},
		{"Null", "null", behavior.Failure},
		{"Undefined", "undefined", behavior.Failure},
		{"UnusableNumber", "42", behavior.Failure},
		{"UnusableString", `("done")`, behavior.Failure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := newLeaf(t, tt.source, emptyEnv)
			if got := leaf.Tick("ana", &world{}); got != tt.want {
				t.Errorf("Tick(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestLeafSeesEnvironment(t *testing.T) {
	env := func(subject string, w *world) map[string]any {
		return map[string]any{"fuel": w.fuel[subject]}
	}
	leaf := newLeaf(t, `fuel > 10 ? "success" : "running"`, env)

	w := &world{fuel: map[string]int{"ana": 5}}
	if got := leaf.Tick("ana", w); got != behavior.Running {
		t.Errorf("Low fuel = %v, want running", got)
	}

	w.fuel["ana"] = 20
	if got := leaf.Tick("ana", w); got != behavior.Success {
		t.Errorf("Refueled = %v, want success", got)
	}
}

func TestLeafGlobalsPersistAcrossTicks(t *testing.T) {
	source := `
		var count;
		if (count === undefined) { count = 0; }
		count++;
		count >= 3 ? "success" : "running"
	`
	leaf := newLeaf(t, source, emptyEnv)

	w := &world{}
	for i, want := range []behavior.Status{behavior.Running, behavior.Running, behavior.Success} {
		if got := leaf.Tick("ana", w); got != want {
			t.Errorf("Tick %d = %v, want %v", i+1, got, want)
		}
	}
}

func TestLeafThrownErrorIsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	leaf := newLeaf(t, "missing.field", emptyEnv, script.WithLogger(logger))
	if got := leaf.Tick("ana", &world{}); got != behavior.Failure {
		t.Errorf("Thrown error = %v, want failure", got)
	}
	if !strings.Contains(buf.String(), "script failed") {
		t.Errorf("Expected script failure log, got: %s", buf.String())
	}
}

func TestLeafKind(t *testing.T) {
	leaf := newLeaf(t, "true", emptyEnv)
	if got := behavior.KindOf[string, *world](leaf); got != "script" {
		t.Errorf("KindOf = %q, want script", got)
	}
}
