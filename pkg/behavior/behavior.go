package behavior

// Behavior is the contract every tree node implements.
//
// Initialize is called exactly once per stored tree, before its first
// tick, so nodes can allocate internal state or cache world-level setup.
// Tick advances the behavior for one subject and is called at most once
// per subject per driver pass.
//
// A node is owned exclusively by whichever container holds it: the
// engine's registry for roots, a composite or decorator for children.
// Nodes may keep mutable internal state, but state that must vary per
// subject belongs in the world, keyed by subject identity; the cursor
// maps inside Sequence and Select are the one built-in exception.
type Behavior[S comparable, W any] interface {
	Initialize(w W)
	Tick(subject S, w W) Status
}

// Func adapts a plain tick function into a Behavior with a no-op
// Initialize.
type Func[S comparable, W any] func(subject S, w W) Status

func (f Func[S, W]) Initialize(W) {}

// Tick calls the wrapped function.
func (f Func[S, W]) Tick(subject S, w W) Status { return f(subject, w) }

// Bool adapts a predicate into a Behavior: true ticks as Success, false
// as Failure.
type Bool[S comparable, W any] func(subject S, w W) bool

func (f Bool[S, W]) Initialize(W) {}

// Tick calls the wrapped predicate and converts its result.
func (f Bool[S, W]) Tick(subject S, w W) Status { return FromBool(f(subject, w)) }

// Partial adapts a function that may have no answer for a subject.
// Returning ok == false ticks as Failure, which keeps missing subject
// data recoverable by the surrounding tree (a RunIf guard, a Retry)
// instead of aborting the pass.
type Partial[S comparable, W any] func(subject S, w W) (Status, bool)

func (f Partial[S, W]) Initialize(W) {}

// Tick calls the wrapped function, mapping an absent result to Failure.
func (f Partial[S, W]) Tick(subject S, w W) Status {
	st, ok := f(subject, w)
	if !ok {
		return Failure
	}
	return st
}

// Condition is an initializable predicate consumed by the conditional
// decorators (RunIf, RetryWhile, RepeatWhile). Conditions follow the
// same lifecycle as nodes: Initialize runs once per stored tree, Test
// runs per subject per tick.
type Condition[S comparable, W any] interface {
	Initialize(w W)
	Test(subject S, w W) bool
}

// CondFunc adapts a plain predicate into a Condition with a no-op
// Initialize.
type CondFunc[S comparable, W any] func(subject S, w W) bool

func (f CondFunc[S, W]) Initialize(W) {}

// Test calls the wrapped predicate.
func (f CondFunc[S, W]) Test(subject S, w W) bool { return f(subject, w) }
