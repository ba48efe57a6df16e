package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// note does not exist (including updates and deletes that matched nothing).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidArgument is returned when a caller-supplied parameter is
// malformed before any store call is made: a note id that does not match
// the identifier format, or pagination values outside their allowed range.
// Kept distinct from ErrNotFound so callers can tell a client bug from a
// stale reference. Handlers should map this to HTTP 400.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrValidation is returned by service functions when a request body fails
// business rule validation (e.g. empty title, unknown priority).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStorage tags errors originating in the persistence layer (connectivity,
// constraint failures). The original cause stays in the wrap chain.
// Handlers should map this to HTTP 500.
var ErrStorage = errors.New("storage error")
