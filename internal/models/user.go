package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID         uuid.UUID `json:"id" db:"user_id"`                      // Primary key
	Username       string    `json:"username" db:"username"`               // Unique among live users
	Email          string    `json:"email" db:"email"`                     // Unique among live users
	PasswordHash   string    `json:"-" db:"password_hash"`                 // Never exposed
	FirstName      string    `json:"first_name" db:"first_name"`           // Required
	MiddleName     *string   `json:"middle_name" db:"middle_name"`         // Optional
	LastName       string    `json:"last_name" db:"last_name"`             // Required
	ProfilePicture *string   `json:"profile_picture" db:"profile_picture"` // Optional absolute URL
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	LastUpdatedAt  time.Time `json:"last_updated_at" db:"last_updated_at"` // Bumped on every mutation
	IsDeleted      bool      `json:"-" db:"is_deleted"`                    // Soft-delete flag
	Version        int64     `json:"-" db:"version"`                       // Optimistic concurrency counter
}

// Registration carries the fields needed to create a user.
// PasswordHash must already be hashed by the caller.
type Registration struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	MiddleName   *string
	LastName     string
}

// UserUpdate is a partial profile update: nil fields are left unchanged.
type UserUpdate struct {
	Username       *string `json:"username,omitempty"`
	Email          *string `json:"email,omitempty"`
	FirstName      *string `json:"first_name,omitempty"`
	MiddleName     *string `json:"middle_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// UserView is the caller-facing representation of a user.
// swagger:model UserView
type UserView struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	ProfilePicture *string   `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	LastUpdatedAt  time.Time `json:"last_updated_at"`
}

// SignUp is a registration request before the password is hashed.
type SignUp struct {
	Username   string
	Password   string
	Email      string
	FirstName  string
	MiddleName *string
	LastName   string
}
