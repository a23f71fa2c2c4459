package behavior

// Described is implemented by nodes that can name their kind for
// inspection and rendering. Every built-in composite and decorator
// implements it; opaque leaves need not.
type Described interface {
	Kind() string
}

// Parent is implemented by nodes that expose their children for
// structural traversal. The returned slice must not be mutated.
type Parent[S comparable, W any] interface {
	Children() []Behavior[S, W]
}

// KindOf names a node's kind, falling back to "leaf" for nodes that do
// not describe themselves.
func KindOf[S comparable, W any](b Behavior[S, W]) string {
	if d, ok := b.(Described); ok {
		return d.Kind()
	}
	return "leaf"
}

// Walk traverses the tree rooted at root depth-first, visiting parents
// before children. Returning false from visit prunes the subtree below
// the visited node.
func Walk[S comparable, W any](root Behavior[S, W], visit func(node Behavior[S, W], depth int) bool) {
	walk(root, 0, visit)
}

func walk[S comparable, W any](node Behavior[S, W], depth int, visit func(Behavior[S, W], int) bool) {
	if !visit(node, depth) {
		return
	}
	if p, ok := node.(Parent[S, W]); ok {
		for _, c := range p.Children() {
			walk(c, depth+1, visit)
		}
	}
}

// Count returns the number of nodes in the tree rooted at root.
func Count[S comparable, W any](root Behavior[S, W]) int {
	n := 0
	Walk(root, func(Behavior[S, W], int) bool { n++; return true })
	return n
}
