package ports

import (
	"context"

	"github.com/aretw0/grove/pkg/behavior"
)

// SubjectSource answers the engine's per-pass question: which subjects
// are active right now, and which tree does each of them run?
//
// Active must already exclude skipped subjects. The order of the
// returned slice is preserved by the driver for subjects sharing a
// tree (the driver's sort is stable), so sources should return a
// deterministic order if reproducible passes matter to the host.
type SubjectSource[S comparable, W any] interface {
	Active(ctx context.Context, w W) ([]behavior.Assignment[S], error)
}

// Roster is a SubjectSource the host manages directly: subjects are
// assigned to trees, can be flagged skipped (excluded from passes until
// unskipped), and removed for good.
//
// Implementations must be safe for concurrent management; the engine
// only ever calls Active.
type Roster[S comparable, W any] interface {
	SubjectSource[S, W]

	// Assign adds subject to the roster running tree, or reassigns it.
	// Assigning clears a skip flag.
	Assign(ctx context.Context, subject S, tree behavior.TreeID) error

	// Skip flags subject so Active omits it until Unskip or Assign.
	// Skipping an unknown subject is an error.
	Skip(ctx context.Context, subject S) error

	// Unskip clears the skip flag.
	Unskip(ctx context.Context, subject S) error

	// Remove deletes subject from the roster entirely.
	Remove(ctx context.Context, subject S) error
}
