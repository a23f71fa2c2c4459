package behavior

import "errors"

// ErrUnknownTree is returned when a TreeID does not name a stored tree.
var ErrUnknownTree = errors.New("unknown tree")

// ErrUnknownSubject is returned by rosters when a subject is not
// enrolled.
var ErrUnknownSubject = errors.New("unknown subject")
