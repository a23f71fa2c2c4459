package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/grove/pkg/behavior"
)

// Roster implements ports.Roster in memory.
// Safe for concurrent use. Active reports subjects in assignment
// (arrival) order; the engine's stable sort preserves that order for
// subjects sharing a tree.
type Roster[S comparable, W any] struct {
	mu      sync.RWMutex
	entries []entry[S]
	index   map[S]int
}

type entry[S comparable] struct {
	subject S
	tree    behavior.TreeID
	skipped bool
}

// NewRoster creates a new in-memory roster.
func NewRoster[S comparable, W any]() *Roster[S, W] {
	return &Roster[S, W]{
		index: make(map[S]int),
	}
}

// Active returns the enrolled, unskipped subjects in arrival order.
func (r *Roster[S, W]) Active(ctx context.Context, w W) ([]behavior.Assignment[S], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]behavior.Assignment[S], 0, len(r.entries))
	for _, e := range r.entries {
		if e.skipped {
			continue
		}
		out = append(out, behavior.Assignment[S]{Subject: e.subject, Tree: e.tree})
	}
	return out, nil
}

// Assign enrolls subject on tree. Reassigning keeps the subject's
// arrival position and clears any skip flag.
func (r *Roster[S, W]) Assign(ctx context.Context, subject S, tree behavior.TreeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[subject]; ok {
		r.entries[i].tree = tree
		r.entries[i].skipped = false
		return nil
	}
	r.index[subject] = len(r.entries)
	r.entries = append(r.entries, entry[S]{subject: subject, tree: tree})
	return nil
}

// Skip flags subject so Active omits it until Unskip or Assign.
func (r *Roster[S, W]) Skip(ctx context.Context, subject S) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[subject]
	if !ok {
		return fmt.Errorf("skip %v: %w", subject, behavior.ErrUnknownSubject)
	}
	r.entries[i].skipped = true
	return nil
}

// Unskip clears the skip flag.
func (r *Roster[S, W]) Unskip(ctx context.Context, subject S) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[subject]
	if !ok {
		return fmt.Errorf("unskip %v: %w", subject, behavior.ErrUnknownSubject)
	}
	r.entries[i].skipped = false
	return nil
}

// Remove deletes subject from the roster. Removing an unknown subject
// is a no-op.
func (r *Roster[S, W]) Remove(ctx context.Context, subject S) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[subject]
	if !ok {
		return nil
	}
	delete(r.index, subject)
	r.entries = slices.Delete(r.entries, i, i+1)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].subject] = j
	}
	return nil
}
