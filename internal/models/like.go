package models

import (
	"time"

	"github.com/google/uuid"
)

// LikeDB represents a like record. At most one exists per (PostID, UserID).
type LikeDB struct {
	LikeID  uuid.UUID `db:"like_id"`
	PostID  uuid.UUID `db:"post_id"`
	UserID  uuid.UUID `db:"user_id"`
	LikedAt time.Time `db:"liked_at"`
}

// LikeResult reports the like state after a like or unlike.
// swagger:model LikeResult
type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}
