package runtime

import (
	"fmt"

	"github.com/aretw0/grove/pkg/behavior"
)

// Create stores root and returns its handle. The tree is not
// initialized here; the driver initializes it lazily the first time a
// subject runs it.
func (e *Engine[S, W]) Create(root behavior.Behavior[S, W]) behavior.TreeID {
	if root == nil {
		panic("runtime: nil root node")
	}
	id := behavior.TreeID(len(e.slots))
	e.slots = append(e.slots, root)
	e.logger.Debug("tree stored", "tree", int(id), "nodes", behavior.Count(root))
	return id
}

// Scoped vacates the slot at id, hands the node to fn, and restores it
// afterwards on every exit path, panics included. While the slot is
// vacant the callback may re-enter the engine (for instance to Create
// another tree) without aliasing the node it is running from. Unknown
// or currently vacated ids are a silent no-op.
func (e *Engine[S, W]) Scoped(id behavior.TreeID, fn func(node behavior.Behavior[S, W])) {
	node, ok := e.take(id)
	if !ok {
		return
	}
	defer e.restore(id, node)
	fn(node)
}

// Lookup returns the root stored at id for read-only traversal.
func (e *Engine[S, W]) Lookup(id behavior.TreeID) (behavior.Behavior[S, W], error) {
	if int(id) < 0 || int(id) >= len(e.slots) || e.slots[id] == nil {
		return nil, fmt.Errorf("tree %d: %w", int(id), behavior.ErrUnknownTree)
	}
	return e.slots[id], nil
}

// Trees returns the ids of all stored trees in creation order.
func (e *Engine[S, W]) Trees() []behavior.TreeID {
	ids := make([]behavior.TreeID, len(e.slots))
	for i := range e.slots {
		ids[i] = behavior.TreeID(i)
	}
	return ids
}

// Initialized reports whether the tree behind id has completed its
// one-time initialization.
func (e *Engine[S, W]) Initialized(id behavior.TreeID) bool {
	_, ok := e.inited[id]
	return ok
}

func (e *Engine[S, W]) take(id behavior.TreeID) (behavior.Behavior[S, W], bool) {
	if int(id) < 0 || int(id) >= len(e.slots) || e.slots[id] == nil {
		return nil, false
	}
	node := e.slots[id]
	e.slots[id] = nil
	return node, true
}

// restore indexes the field, not a captured slice: a Create inside the
// scope may have grown the backing array.
func (e *Engine[S, W]) restore(id behavior.TreeID, node behavior.Behavior[S, W]) {
	e.slots[id] = node
}
