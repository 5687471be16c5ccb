package ids

import "errors"

// ErrInvalidID is returned by catalog lookups given an identifier outside
// the valid, live range.
var ErrInvalidID = errors.New("ids: invalid or unknown identifier")

// ErrIDConflict is returned by an insert-at-specific-id operation when the
// target identifier is already live with a different value.
var ErrIDConflict = errors.New("ids: identifier already live with a different value")
