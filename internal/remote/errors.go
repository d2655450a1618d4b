package remote

import (
	"errors"
	"fmt"
)

// Errors the view layer matches on with errors.Is.
var (
	// ErrInvalidCredentials is returned when login or register is rejected
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when the session credential is missing or expired
	ErrUnauthorized = errors.New("not authenticated")

	// ErrForbidden is returned when the current role may not perform the action
	ErrForbidden = errors.New("action not permitted")

	// ErrNotFound is returned when the referenced entity does not exist
	ErrNotFound = errors.New("entity not found")
)

// APIError carries a non-2xx response that is not covered by the
// sentinel errors above.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}
