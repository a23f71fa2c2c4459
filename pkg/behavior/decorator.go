package behavior

import "fmt"

// Invert returns a decorator that swaps its child's terminal statuses:
// Success becomes Failure and Failure becomes Success. Running passes
// through. Invert holds no state and is safe to share across subjects.
func Invert[S comparable, W any](child Behavior[S, W]) Behavior[S, W] {
	return &invert[S, W]{child: mustChild(child)}
}

type invert[S comparable, W any] struct {
	child Behavior[S, W]
}

func (n *invert[S, W]) Initialize(w W) { n.child.Initialize(w) }

func (n *invert[S, W]) Tick(subject S, w W) Status {
	switch st := n.child.Tick(subject, w); st {
	case Success:
		return Failure
	case Failure:
		return Success
	case Running:
		return Running
	default:
		return badStatus(st)
	}
}

func (n *invert[S, W]) Kind() string                { return "invert" }
func (n *invert[S, W]) Children() []Behavior[S, W] { return []Behavior[S, W]{n.child} }

// RunIf returns a decorator that ticks its child only while cond holds.
// When cond is false the child is skipped for that tick and Success is
// returned. Shorthand for RunIfWithReturn(cond, Success, child).
func RunIf[S comparable, W any](cond Condition[S, W], child Behavior[S, W]) Behavior[S, W] {
	return RunIfWithReturn(cond, Success, child)
}

// RunIfWithReturn is RunIf with a configurable short-circuit status,
// returned whenever cond is false without ticking the child (no child
// side effects that tick). Composing with Invert: Invert(RunIf(c, x))
// behaves like RunIfWithReturn(c, Failure, Invert(x)).
func RunIfWithReturn[S comparable, W any](cond Condition[S, W], short Status, child Behavior[S, W]) Behavior[S, W] {
	if !short.Valid() {
		panic(fmt.Sprintf("behavior: invalid short-circuit status %d", uint8(short)))
	}
	return &runIf[S, W]{cond: mustCond(cond), short: short, child: mustChild(child)}
}

type runIf[S comparable, W any] struct {
	cond  Condition[S, W]
	short Status
	child Behavior[S, W]
}

func (n *runIf[S, W]) Initialize(w W) {
	n.cond.Initialize(w)
	n.child.Initialize(w)
}

func (n *runIf[S, W]) Tick(subject S, w W) Status {
	if !n.cond.Test(subject, w) {
		return n.short
	}
	return n.child.Tick(subject, w)
}

func (n *runIf[S, W]) Kind() string                { return "run-if" }
func (n *runIf[S, W]) Children() []Behavior[S, W] { return []Behavior[S, W]{n.child} }

// Retry returns a decorator that absorbs child failures as Running so
// the caller tries again on a later tick. Once maxTries failures
// accumulate without an intervening Success the decorator resets its
// count and returns Failure; a child Success also resets the count and
// passes through. maxTries <= 1 makes the very first failure final.
//
// The try counter is a single value, not keyed by subject. A Retry
// shared by subjects that can be mid-retry at the same time interleaves
// their counts; give such subjects separate trees, or keep retry
// bookkeeping in the world.
func Retry[S comparable, W any](maxTries int, child Behavior[S, W]) Behavior[S, W] {
	if maxTries < 0 {
		maxTries = 0
	}
	return &retry[S, W]{max: maxTries, child: mustChild(child)}
}

type retry[S comparable, W any] struct {
	max   int
	tries int
	child Behavior[S, W]
}

func (n *retry[S, W]) Initialize(w W) {
	n.child.Initialize(w)
	n.tries = 0
}

func (n *retry[S, W]) Tick(subject S, w W) Status {
	switch st := n.child.Tick(subject, w); st {
	case Failure:
		n.tries++
		if n.tries < n.max {
			return Running
		}
		n.tries = 0
		return Failure
	case Success:
		n.tries = 0
		return Success
	case Running:
		return Running
	default:
		return badStatus(st)
	}
}

func (n *retry[S, W]) Kind() string                { return "retry" }
func (n *retry[S, W]) Children() []Behavior[S, W] { return []Behavior[S, W]{n.child} }

// RetryWhile returns a decorator that keeps the child trying for as long
// as cond holds: child Failure and Running both surface as Running,
// Success passes through. When cond goes false the decorator returns
// Failure on that very tick without ticking the child; the condition is
// an abort, not a pass-through. There is no counter, the condition is
// the sole throttle.
func RetryWhile[S comparable, W any](cond Condition[S, W], child Behavior[S, W]) Behavior[S, W] {
	return &retryWhile[S, W]{cond: mustCond(cond), child: mustChild(child)}
}

type retryWhile[S comparable, W any] struct {
	cond  Condition[S, W]
	child Behavior[S, W]
}

func (n *retryWhile[S, W]) Initialize(w W) {
	n.cond.Initialize(w)
	n.child.Initialize(w)
}

func (n *retryWhile[S, W]) Tick(subject S, w W) Status {
	if !n.cond.Test(subject, w) {
		return Failure
	}
	switch st := n.child.Tick(subject, w); st {
	case Success:
		return Success
	case Failure, Running:
		return Running
	default:
		return badStatus(st)
	}
}

func (n *retryWhile[S, W]) Kind() string                { return "retry-while" }
func (n *retryWhile[S, W]) Children() []Behavior[S, W] { return []Behavior[S, W]{n.child} }

// Repeat returns a decorator that runs the child to a terminal status
// the given number of times and then succeeds. Success and Failure both
// count as one completed run; Running does not count and passes through.
// times <= 0 succeeds immediately without ticking the child.
//
// Child state is preserved between runs: terminal statuses already leave
// well-behaved nodes reset (composites clear the subject's cursor, Retry
// clears its count), so each run starts fresh without a forced restart.
func Repeat[S comparable, W any](times int, child Behavior[S, W]) Behavior[S, W] {
	if times < 0 {
		times = 0
	}
	return &repeat[S, W]{times: times, child: mustChild(child)}
}

type repeat[S comparable, W any] struct {
	times int
	done  int
	child Behavior[S, W]
}

func (n *repeat[S, W]) Initialize(w W) {
	n.child.Initialize(w)
	n.done = 0
}

func (n *repeat[S, W]) Tick(subject S, w W) Status {
	if n.times == 0 {
		return Success
	}
	switch st := n.child.Tick(subject, w); st {
	case Running:
		return Running
	case Success, Failure:
		n.done++
		if n.done >= n.times {
			n.done = 0
			return Success
		}
		return Running
	default:
		return badStatus(st)
	}
}

func (n *repeat[S, W]) Kind() string                { return "repeat" }
func (n *repeat[S, W]) Children() []Behavior[S, W] { return []Behavior[S, W]{n.child} }

// RepeatWhile returns a decorator that keeps re-running the child while
// cond holds, collapsing the child's terminal statuses into Running.
// When cond goes false the decorator returns Success without ticking the
// child: exit satisfies a repeat, where it would thwart a retry.
func RepeatWhile[S comparable, W any](cond Condition[S, W], child Behavior[S, W]) Behavior[S, W] {
	return &repeatWhile[S, W]{cond: mustCond(cond), child: mustChild(child)}
}

type repeatWhile[S comparable, W any] struct {
	cond  Condition[S, W]
	child Behavior[S, W]
}

func (n *repeatWhile[S, W]) Initialize(w W) {
	n.cond.Initialize(w)
	n.child.Initialize(w)
}

func (n *repeatWhile[S, W]) Tick(subject S, w W) Status {
	if !n.cond.Test(subject, w) {
		return Success
	}
	switch st := n.child.Tick(subject, w); st {
	case Success, Failure, Running:
		return Running
	default:
		return badStatus(st)
	}
}

func (n *repeatWhile[S, W]) Kind() string                { return "repeat-while" }
func (n *repeatWhile[S, W]) Children() []Behavior[S, W] { return []Behavior[S, W]{n.child} }

func mustChild[S comparable, W any](child Behavior[S, W]) Behavior[S, W] {
	if child == nil {
		panic("behavior: nil child")
	}
	return child
}

func mustCond[S comparable, W any](cond Condition[S, W]) Condition[S, W] {
	if cond == nil {
		panic("behavior: nil condition")
	}
	return cond
}

// badStatus aborts on a malformed child status. A node returning a
// status outside the defined three is a programming error the tree
// cannot recover from.
func badStatus(st Status) Status {
	panic(fmt.Sprintf("behavior: invalid status %d", uint8(st)))
}
