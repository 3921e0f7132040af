package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	owner := newActor("alice")

	assert.NoError(t, Authorize(owner, owner.UserID))
	assert.ErrorIs(t, Authorize(newActor("bob"), owner.UserID), ErrUnauthorized)
	assert.ErrorIs(t, Authorize(owner, uuid.New()), ErrUnauthorized)

	// an anonymous actor never owns anything
	anonymous := owner
	anonymous.UserID = uuid.Nil
	assert.ErrorIs(t, Authorize(anonymous, uuid.Nil), ErrUnauthorized)
}
