package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/grove/pkg/behavior"
)

// Mermaid renders the structure of a behavior tree as Mermaid flowchart
// source. Composites appear as rectangles, decorators as subroutines and
// leaves as stadiums, so the control-flow layers are visible at a glance.
//
// Node identifiers follow preorder (n0 is the root), which keeps the
// output stable for a given tree shape.
func Mermaid[S comparable, W any](root behavior.Behavior[S, W]) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	next := 0
	render(&sb, root, &next)
	return sb.String()
}

func render[S comparable, W any](sb *strings.Builder, node behavior.Behavior[S, W], next *int) {
	id := *next
	*next++

	kind := behavior.KindOf(node)
	opener, closer := "([", "])" // Stadium: leaves.
	switch kind {
	case "sequence", "select":
		opener, closer = "[", "]" // Rectangle: composites.
	case "invert", "run-if", "retry", "retry-while", "repeat", "repeat-while":
		opener, closer = "[[", "]]" // Subroutine: decorators.
	}
	fmt.Fprintf(sb, "    n%d%s\"%s\"%s\n", id, opener, kind, closer)

	parent, ok := node.(behavior.Parent[S, W])
	if !ok {
		return
	}
	for _, child := range parent.Children() {
		// The child is rendered next, so its identifier is known
		// before descending.
		fmt.Fprintf(sb, "    n%d --> n%d\n", id, *next)
		render(sb, child, next)
	}
}
