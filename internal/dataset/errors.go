package dataset

import "errors"

// Sentinel errors surfaced by snapshot validation. Loaders wrap these
// with record and file/line context.
var (
	ErrDuplicateID       = errors.New("duplicate id")
	ErrUnknownAssignment = errors.New("unknown assignment")
	ErrUnknownDonor      = errors.New("unknown donor")
	ErrSchema            = errors.New("schema violation")
)
