package services

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

// Authorize allows a mutation only when the actor owns the resource.
func Authorize(actor models.Actor, ownerID uuid.UUID) error {
	if actor.UserID == uuid.Nil || actor.UserID != ownerID {
		return ErrUnauthorized
	}
	return nil
}
