package entity

import "errors"

// Error kinds shared by repositories, services and handlers. Services wrap
// these with context via %w; handlers classify them with errors.Is to pick
// the HTTP status. Storage-level faults never cross the repository boundary
// unclassified: a unique-index violation always surfaces as ErrConflict.
var (
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("conflicts with an existing record")
	ErrUnauthorized = errors.New("requester identity required")
	ErrSeatMismatch = errors.New("seat does not belong to this screening")
	ErrInvalidInput = errors.New("invalid input")
)
