package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures coming back from the backend API. Handlers
// map these to user-facing messages; nothing here is retried automatically.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("requested resource not found")
	ErrUnavailable        = errors.New("backend unreachable")
	ErrBackend            = errors.New("backend error")
)

// ValidationError carries the backend's field-level detail for a 422
// response. The detail is surfaced to the user verbatim.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation rejected by backend: %s", e.Detail)
}
