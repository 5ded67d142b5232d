package domain

import (
	"errors"
	"fmt"
)

// Client-side precondition failures. These never reach the network.
var (
	ErrLoginRequired   = errors.New("login required")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownCategory = errors.New("category id not among loaded categories")
	ErrAdminRequired   = errors.New("administrator privileges required")
)

// ErrBackendUnreachable marks a transport-level failure where no response was
// received at all (DNS, refused connection). Detect it with errors.Is on the
// wrapped cause.
var ErrBackendUnreachable = errors.New("backend unreachable")

// APIError is a JSON error payload from the backend with an extractable
// human-readable message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// ProtocolError marks a non-JSON response where JSON was expected. Snippet
// holds a truncated prefix of the raw body for diagnostics.
type ProtocolError struct {
	Path        string
	ContentType string
	Snippet     string
}

func (e *ProtocolError) Error() string {
	ct := e.ContentType
	if ct == "" {
		ct = "none"
	}
	return fmt.Sprintf("unexpected content type (%s) for %s: %s", ct, e.Path, e.Snippet)
}
