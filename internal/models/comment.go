package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxCommentLength bounds the comment text, in characters.
const MaxCommentLength = 1000

// CommentDB represents a comment record in the database
type CommentDB struct {
	CommentID uuid.UUID  `db:"comment_id"`
	PostID    uuid.UUID  `db:"post_id"`
	AuthorID  uuid.UUID  `db:"author_id"`
	Text      *string    `db:"text"`
	CreatedAt time.Time  `db:"created_at"`
	EditedAt  *time.Time `db:"edited_at"`
	IsDeleted bool       `db:"is_deleted"`
	Version   int64      `db:"version"`
}

// CommentView is a comment composed with its author.
// swagger:model CommentView
type CommentView struct {
	ID                   uuid.UUID  `json:"id"`
	PostID               uuid.UUID  `json:"post_id"`
	Text                 *string    `json:"text"`
	AuthorUsername       string     `json:"author_username"`
	AuthorFullName       string     `json:"author_full_name"`
	AuthorProfilePicture *string    `json:"author_profile_picture"`
	CreatedAt            time.Time  `json:"created_at"`
	EditedAt             *time.Time `json:"edited_at"`
}
