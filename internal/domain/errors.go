package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// destination does not exist in the database.
// Handlers map this to HTTP 404 and the not-found page.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when request input fails validation
// (e.g. an unknown province or category in a query parameter).
// Handlers map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
