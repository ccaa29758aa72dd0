// Package storage defines the error taxonomy and query types shared by
// the postgres implementation and the HTTP handlers.
package storage

import "errors"

// EventFilter narrows event listings; zero-value fields are ignored.
type EventFilter struct {
	Category    string
	Search      string
	OrganizerID string
}

var (
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrSoldOut            = errors.New("tickets sold out")
	ErrEventNotFound      = errors.New("event not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotApproved        = errors.New("account pending approval")
	ErrNotOwner           = errors.New("unauthorized")

	// ErrTransient marks deadlocks, lock-wait timeouts and serialization
	// failures. The aborted attempt left no rows behind, so the caller
	// may safely retry the whole operation.
	ErrTransient = errors.New("transient storage conflict")
)
