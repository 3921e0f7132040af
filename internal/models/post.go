package models

import (
	"time"

	"github.com/google/uuid"
)

// PostDB represents a post record in the database
type PostDB struct {
	PostID      uuid.UUID  `db:"post_id"`
	ContentLink string     `db:"content_link"`
	OwnerID     uuid.UUID  `db:"owner_id"`
	CreatedAt   time.Time  `db:"created_at"`
	EditedAt    *time.Time `db:"edited_at"`
	IsDeleted   bool       `db:"is_deleted"`
	Version     int64      `db:"version"`
}

// PostView is a post composed with its owner and live counts.
// swagger:model PostView
type PostView struct {
	ID                  uuid.UUID  `json:"id"`
	ContentLink         string     `json:"content_link"`
	OwnerUsername       string     `json:"owner_username"`
	OwnerFullName       string     `json:"owner_full_name"`
	OwnerProfilePicture *string    `json:"owner_profile_picture"`
	LikeCount           int64      `json:"like_count"`
	CommentCount        int64      `json:"comment_count"`
	CreatedAt           time.Time  `json:"created_at"`
	EditedAt            *time.Time `json:"edited_at"`
}
