package debug

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/grove"
	"github.com/aretw0/grove/pkg/behavior"
)

// Inspector is the read-only engine surface the router serves. Every
// *grove.Engine instantiation satisfies it.
type Inspector interface {
	Trees() []behavior.TreeID
	Describe(id behavior.TreeID) (grove.TreeInfo, error)
	Graph(id behavior.TreeID) (string, error)
}

// treeDetail is the per-tree response: structural metadata plus the
// rendered Mermaid source.
type treeDetail struct {
	grove.TreeInfo
	Graph string `json:"graph"`
}

// Router returns an http.Handler exposing read-only tree inspection:
//
//	GET /trees        list of stored trees
//	GET /trees/{id}   metadata and Mermaid source for one tree
//
// Hosts mount it next to their metrics handler; it never mutates the
// engine.
func Router(insp Inspector) http.Handler {
	r := chi.NewRouter()

	r.Get("/trees", func(w http.ResponseWriter, req *http.Request) {
		infos := make([]grove.TreeInfo, 0)
		for _, id := range insp.Trees() {
			info, err := insp.Describe(id)
			if err != nil {
				// A tree vacated by a concurrent Scoped call; skip it.
				continue
			}
			infos = append(infos, info)
		}
		writeJSON(w, infos)
	})

	r.Get("/trees/{id}", func(w http.ResponseWriter, req *http.Request) {
		raw := chi.URLParam(req, "id")
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid tree id", http.StatusBadRequest)
			return
		}

		info, err := insp.Describe(behavior.TreeID(id))
		if err != nil {
			if errors.Is(err, behavior.ErrUnknownTree) {
				http.Error(w, "Tree not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Describe error", http.StatusInternalServerError)
			slog.Error("Describe failed", "err", err, "tree", id)
			return
		}

		source, err := insp.Graph(behavior.TreeID(id))
		if err != nil {
			http.Error(w, "Graph error", http.StatusInternalServerError)
			slog.Error("Graph render failed", "err", err, "tree", id)
			return
		}

		writeJSON(w, treeDetail{TreeInfo: info, Graph: source})
	})

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "err", err)
	}
}
