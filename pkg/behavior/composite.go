package behavior

// Sequence returns a composite with AND semantics: children run in
// order, one per tick, and every one of them must succeed for the
// sequence to succeed. The first child Failure resets progress and fails
// the whole sequence.
//
// Progress is tracked per subject in a cursor map, so one Sequence value
// shared by many subjects advances each of them independently. An
// intermediate child Success advances the subject's cursor and returns
// Running rather than ticking the next child in the same call; per-tick
// work stays bounded at one child, and a sequence of n children needs
// n+1 ticks to complete even when every child succeeds instantly.
//
// The two fixed parameters reject one-child composites at compile time.
func Sequence[S comparable, W any](first, second Behavior[S, W], rest ...Behavior[S, W]) Behavior[S, W] {
	return &sequence[S, W]{children: gather(first, second, rest), cursors: make(map[S]int)}
}

type sequence[S comparable, W any] struct {
	children []Behavior[S, W]
	cursors  map[S]int
}

func (q *sequence[S, W]) Initialize(w W) {
	for _, c := range q.children {
		c.Initialize(w)
	}
}

func (q *sequence[S, W]) Tick(subject S, w W) Status {
	cursor := q.cursors[subject]
	if cursor >= len(q.children) {
		// Every child succeeded on earlier ticks.
		delete(q.cursors, subject)
		return Success
	}
	switch st := q.children[cursor].Tick(subject, w); st {
	case Running:
		return Running
	case Failure:
		delete(q.cursors, subject)
		return Failure
	case Success:
		q.cursors[subject] = cursor + 1
		return Running
	default:
		return badStatus(st)
	}
}

func (q *sequence[S, W]) Kind() string                { return "sequence" }
func (q *sequence[S, W]) Children() []Behavior[S, W] { return q.children }

// Select returns a composite with OR semantics: children are candidate
// branches tried in order, one per tick, and the first Success wins and
// resets progress. A child Failure advances the subject's cursor to the
// next branch and returns Running; running out of branches resets the
// cursor and fails. Cursor handling matches Sequence, per subject.
func Select[S comparable, W any](first, second Behavior[S, W], rest ...Behavior[S, W]) Behavior[S, W] {
	return &selector[S, W]{children: gather(first, second, rest), cursors: make(map[S]int)}
}

type selector[S comparable, W any] struct {
	children []Behavior[S, W]
	cursors  map[S]int
}

func (q *selector[S, W]) Initialize(w W) {
	for _, c := range q.children {
		c.Initialize(w)
	}
}

func (q *selector[S, W]) Tick(subject S, w W) Status {
	cursor := q.cursors[subject]
	if cursor >= len(q.children) {
		// Every branch failed on earlier ticks.
		delete(q.cursors, subject)
		return Failure
	}
	switch st := q.children[cursor].Tick(subject, w); st {
	case Running:
		return Running
	case Failure:
		q.cursors[subject] = cursor + 1
		return Running
	case Success:
		delete(q.cursors, subject)
		return Success
	default:
		return badStatus(st)
	}
}

func (q *selector[S, W]) Kind() string                { return "select" }
func (q *selector[S, W]) Children() []Behavior[S, W] { return q.children }

func gather[S comparable, W any](first, second Behavior[S, W], rest []Behavior[S, W]) []Behavior[S, W] {
	children := make([]Behavior[S, W], 0, 2+len(rest))
	children = append(children, first, second)
	children = append(children, rest...)
	for _, c := range children {
		mustChild(c)
	}
	return children
}
