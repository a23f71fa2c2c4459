package dsl

import "github.com/aretw0/grove/pkg/behavior"

// Node wraps a behavior under construction. Each chained call wraps the
// current chain in another decorator, so the last call in a chain is
// the outermost node.
type Node[S comparable, W any] struct {
	b behavior.Behavior[S, W]
}

// Leaf starts a chain from a status function.
func Leaf[S comparable, W any](fn func(S, W) behavior.Status) Node[S, W] {
	return Node[S, W]{b: behavior.Func[S, W](fn)}
}

// Check starts a chain from a predicate: true maps to Success, false to
// Failure.
func Check[S comparable, W any](fn func(S, W) bool) Node[S, W] {
	return Node[S, W]{b: behavior.Bool[S, W](fn)}
}

// Wrap starts a chain from an existing node.
func Wrap[S comparable, W any](b behavior.Behavior[S, W]) Node[S, W] {
	return Node[S, W]{b: b}
}

// Invert flips Success and Failure.
func (n Node[S, W]) Invert() Node[S, W] {
	return Node[S, W]{b: behavior.Invert[S, W](n.b)}
}

// Retry grants the chain maxTries attempts before a failure becomes
// final.
func (n Node[S, W]) Retry(maxTries int) Node[S, W] {
	return Node[S, W]{b: behavior.Retry[S, W](maxTries, n.b)}
}

// RetryWhile keeps collapsing the chain's failures to Running while
// cond holds; cond going false fails without ticking the chain.
func (n Node[S, W]) RetryWhile(cond func(S, W) bool) Node[S, W] {
	return Node[S, W]{b: behavior.RetryWhile[S, W](behavior.CondFunc[S, W](cond), n.b)}
}

// RunIf gates the chain on cond, returning Success when it is closed.
func (n Node[S, W]) RunIf(cond func(S, W) bool) Node[S, W] {
	return Node[S, W]{b: behavior.RunIf[S, W](behavior.CondFunc[S, W](cond), n.b)}
}

// RunIfWithReturn gates the chain on cond, returning short when it is
// closed.
func (n Node[S, W]) RunIfWithReturn(cond func(S, W) bool, short behavior.Status) Node[S, W] {
	return Node[S, W]{b: behavior.RunIfWithReturn[S, W](behavior.CondFunc[S, W](cond), short, n.b)}
}

// Repeat runs the chain to a terminal status times times, then
// succeeds.
func (n Node[S, W]) Repeat(times int) Node[S, W] {
	return Node[S, W]{b: behavior.Repeat[S, W](times, n.b)}
}

// RepeatWhile keeps re-running the chain while cond holds; cond going
// false succeeds.
func (n Node[S, W]) RepeatWhile(cond func(S, W) bool) Node[S, W] {
	return Node[S, W]{b: behavior.RepeatWhile[S, W](behavior.CondFunc[S, W](cond), n.b)}
}

// Sequence composes nodes into an AND composite: children run in order
// and the first failure wins.
func Sequence[S comparable, W any](first, second Node[S, W], rest ...Node[S, W]) Node[S, W] {
	children := make([]behavior.Behavior[S, W], 0, len(rest))
	for _, n := range rest {
		children = append(children, n.b)
	}
	return Node[S, W]{b: behavior.Sequence[S, W](first.b, second.b, children...)}
}

// Select composes nodes into an OR composite: children run in order and
// the first success wins.
func Select[S comparable, W any](first, second Node[S, W], rest ...Node[S, W]) Node[S, W] {
	children := make([]behavior.Behavior[S, W], 0, len(rest))
	for _, n := range rest {
		children = append(children, n.b)
	}
	return Node[S, W]{b: behavior.Select[S, W](first.b, second.b, children...)}
}

// Build returns the composed behavior, ready for Engine.Create.
func (n Node[S, W]) Build() behavior.Behavior[S, W] {
	return n.b
}
