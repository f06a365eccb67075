package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound          = errors.New("player not registered")
	ErrNotOnRoster       = errors.New("player not on team roster")
	ErrInvalidTeamNumber = errors.New("invalid team number")
	ErrInvalidPoints     = errors.New("invalid points")
	ErrMalformedEntry    = errors.New("malformed roster entry")
	ErrShortRoster       = errors.New("roster has fewer players than declared")
)
