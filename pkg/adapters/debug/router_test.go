package debug_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/grove"
	"github.com/aretw0/grove/pkg/adapters/debug"
	"github.com/aretw0/grove/pkg/adapters/memory"
	"github.com/aretw0/grove/pkg/behavior"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()

	roster := memory.NewRoster[string, struct{}]()
	eng := grove.New[string, struct{}](roster)

	leaf := behavior.Func[string, struct{}](func(string, struct{}) behavior.Status {
		return behavior.Success
	})
	eng.Create(behavior.Sequence[string, struct{}](leaf, leaf))
	eng.Create(behavior.Retry[string, struct{}](2, leaf))

	return debug.Router(eng)
}

func TestRouter_ListTrees(t *testing.T) {
	handler := newHandler(t)

	req := httptest.NewRequest("GET", "/trees", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var infos []grove.TreeInfo
	if err := json.NewDecoder(w.Body).Decode(&infos); err != nil {
		t.Fatalf("Decode response: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("Expected 2 trees, got %d", len(infos))
	}
	if infos[0].Kind != "sequence" || infos[0].Nodes != 3 {
		t.Errorf("Tree 0 = %+v, want sequence with 3 nodes", infos[0])
	}
	if infos[1].Kind != "retry" || infos[1].Nodes != 2 {
		t.Errorf("Tree 1 = %+v, want retry with 2 nodes", infos[1])
	}
}

func TestRouter_TreeDetail(t *testing.T) {
	handler := newHandler(t)

	req := httptest.NewRequest("GET", "/trees/1", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 OK, got %d", w.Code)
	}

	var detail struct {
		grove.TreeInfo
		Graph string `json:"graph"`
	}
	if err := json.NewDecoder(w.Body).Decode(&detail); err != nil {
		t.Fatalf("Decode response: %v", err)
	}
	if detail.Kind != "retry" {
		t.Errorf("Kind = %q, want retry", detail.Kind)
	}
	if !strings.HasPrefix(detail.Graph, "graph TD\n") {
		t.Errorf("Graph = %q, want Mermaid source", detail.Graph)
	}
	if !strings.Contains(detail.Graph, "n0[[\"retry\"]]") {
		t.Errorf("Graph missing retry node:\n%s", detail.Graph)
	}
}

func TestRouter_TreeNotFound(t *testing.T) {
	handler := newHandler(t)

	req := httptest.NewRequest("GET", "/trees/9", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRouter_BadTreeID(t *testing.T) {
	handler := newHandler(t)

	req := httptest.NewRequest("GET", "/trees/abc", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}
