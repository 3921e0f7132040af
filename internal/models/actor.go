package models

import "github.com/google/uuid"

// Actor is the already-authenticated identity performing an operation.
type Actor struct {
	UserID   uuid.UUID
	Username string
}
