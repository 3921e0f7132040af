package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-social-content/internal/storage"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrLikeNotFound       = errors.New("like not found")
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrDuplicateContent   = errors.New("content link already used by another post")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrUnauthorized       = errors.New("actor does not own the resource")
	ErrStaleWrite         = errors.New("resource was modified concurrently")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Kind groups errors into the categories callers react to.
type Kind int

const (
	KindStorageFailure Kind = iota
	KindNotFound
	KindAlreadyExists
	KindAlreadyLiked
	KindLikeNotFound
	KindUnauthorized
	KindStaleWrite
	KindInvalidInput
	KindInvalidCredentials
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindAlreadyLiked:
		return "AlreadyLiked"
	case KindLikeNotFound:
		return "LikeNotFound"
	case KindUnauthorized:
		return "Unauthorized"
	case KindStaleWrite:
		return "StaleWrite"
	case KindInvalidInput:
		return "InvalidInput"
	case KindInvalidCredentials:
		return "InvalidCredentials"
	default:
		return "StorageFailure"
	}
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// StorageError wraps a failure of the storage layer that has no domain meaning.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: storage failure: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// KindOf classifies err. Anything unrecognised is a storage failure.
func KindOf(err error) Kind {
	kind, _ := classify(err)
	return kind
}

func classify(err error) (Kind, bool) {
	var storageErr *StorageError
	switch {
	case errors.As(err, &storageErr):
		return KindStorageFailure, true
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrPostNotFound), errors.Is(err, ErrCommentNotFound):
		return KindNotFound, true
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, ErrDuplicateContent):
		return KindAlreadyExists, true
	case errors.Is(err, ErrAlreadyLiked):
		return KindAlreadyLiked, true
	case errors.Is(err, ErrLikeNotFound):
		return KindLikeNotFound, true
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized, true
	case errors.Is(err, ErrStaleWrite):
		return KindStaleWrite, true
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput, true
	case errors.Is(err, ErrInvalidCredentials):
		return KindInvalidCredentials, true
	}
	return KindStorageFailure, false
}

// fromStorage translates a repository error. notFound and conflict replace
// storage.ErrNotFound and storage.ErrUniqueViolation when non-nil. Domain
// errors pass through and everything else becomes a *StorageError.
func fromStorage(op string, err error, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, storage.ErrNotFound):
		return notFound
	case conflict != nil && errors.Is(err, storage.ErrUniqueViolation):
		return conflict
	case errors.Is(err, storage.ErrStaleWrite):
		return ErrStaleWrite
	}
	if _, known := classify(err); known {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
