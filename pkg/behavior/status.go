package behavior

// Status is the tri-state result of ticking a node. The zero value is
// deliberately not a defined status so that a forgotten return shows up
// as a loud failure instead of a silent Success.
type Status uint8

const (
	// Success indicates a completed action.
	Success Status = iota + 1
	// Failure indicates a failed action.
	Failure
	// Running indicates an action that needs more ticks to complete.
	Running
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Running:
		return "running"
	default:
		return "invalid"
	}
}

// Valid reports whether s is one of the three defined statuses.
func (s Status) Valid() bool {
	return s == Success || s == Failure || s == Running
}

// FromBool converts a predicate result: true is Success, false is Failure.
func FromBool(ok bool) Status {
	if ok {
		return Success
	}
	return Failure
}
