package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sbilibin2017/gw-social-content/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{ErrUserNotFound, KindNotFound},
		{ErrPostNotFound, KindNotFound},
		{ErrCommentNotFound, KindNotFound},
		{ErrUserAlreadyExists, KindAlreadyExists},
		{ErrDuplicateContent, KindAlreadyExists},
		{ErrAlreadyLiked, KindAlreadyLiked},
		{ErrLikeNotFound, KindLikeNotFound},
		{ErrUnauthorized, KindUnauthorized},
		{ErrStaleWrite, KindStaleWrite},
		{&ValidationError{Field: "text", Message: "must not be blank"}, KindInvalidInput},
		{ErrInvalidCredentials, KindInvalidCredentials},
		{&StorageError{Op: "get post", Err: errors.New("boom")}, KindStorageFailure},
		{fmt.Errorf("wrapped: %w", ErrPostNotFound), KindNotFound},
		{context.DeadlineExceeded, KindStorageFailure},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "NotFound", KindNotFound.String())
	assert.Equal(t, "StaleWrite", KindStaleWrite.String())
	assert.Equal(t, "StorageFailure", Kind(99).String())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "email", Message: "must be a valid address"}
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "invalid email: must be a valid address", err.Error())
}

func TestFromStorage(t *testing.T) {
	cause := errors.New("connection refused")

	assert.NoError(t, fromStorage("op", nil, ErrPostNotFound, nil))
	assert.ErrorIs(t, fromStorage("op", storage.ErrNotFound, ErrPostNotFound, nil), ErrPostNotFound)
	assert.ErrorIs(t, fromStorage("op", storage.ErrStaleWrite, nil, nil), ErrStaleWrite)
	assert.ErrorIs(t, fromStorage("op", fmt.Errorf("%w: uk_post_user_like", storage.ErrUniqueViolation), nil, ErrAlreadyLiked), ErrAlreadyLiked)
	assert.ErrorIs(t, fromStorage("op", ErrUnauthorized, nil, nil), ErrUnauthorized)

	err := fromStorage("get post", cause, ErrPostNotFound, nil)
	var storageErr *StorageError
	assert.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "get post", storageErr.Op)
	assert.ErrorIs(t, err, cause)

	// a not-found without a domain replacement is a storage failure
	assert.Equal(t, KindStorageFailure, KindOf(fromStorage("op", storage.ErrNotFound, nil, nil)))

	// already wrapped failures are not wrapped twice
	assert.Same(t, storageErr, fromStorage("outer", err, nil, nil))
}
