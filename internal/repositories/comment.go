package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

const commentColumns = `comment_id, post_id, author_id, text, created_at, edited_at, is_deleted, version`

// CommentRepository stores comments. Every read excludes soft-deleted rows.
type CommentRepository struct {
	base
}

func NewCommentRepository(db *sqlx.DB, txGetter TxGetter) *CommentRepository {
	return &CommentRepository{base{db: db, txGetter: txGetter}}
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1 AND is_deleted = false`

	var comment models.CommentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &comment, query, commentID)
	logQuery(query, []any{commentID}, comment.CommentID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &comment, nil
}

func (r *CommentRepository) Insert(ctx context.Context, comment *models.CommentDB) (*models.CommentDB, error) {
	query := `
		INSERT INTO comments (comment_id, post_id, author_id, text, created_at, is_deleted, version)
		VALUES ($1, $2, $3, $4, clock_timestamp(), false, 1)
		RETURNING ` + commentColumns

	if comment.CommentID == uuid.Nil {
		comment.CommentID = uuid.New()
	}
	args := []any{comment.CommentID, comment.PostID, comment.AuthorID, comment.Text}

	var saved models.CommentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)
	logQuery(query, args, saved.CommentID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &saved, nil
}

// Update replaces the text if the stored version still equals expectedVersion.
func (r *CommentRepository) Update(ctx context.Context, comment *models.CommentDB, expectedVersion int64) (*models.CommentDB, error) {
	query := `
		UPDATE comments
		SET text = $2, edited_at = NOW(), version = version + 1
		WHERE comment_id = $1 AND version = $3 AND is_deleted = false
		RETURNING ` + commentColumns
	args := []any{comment.CommentID, comment.Text, expectedVersion}

	var saved models.CommentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)
	logQuery(query, args, saved.Version, err)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &saved, nil
}

func (r *CommentRepository) SoftDelete(ctx context.Context, commentID uuid.UUID, expectedVersion int64) error {
	const query = `
		UPDATE comments
		SET is_deleted = true, version = version + 1
		WHERE comment_id = $1 AND version = $2 AND is_deleted = false
	`
	if err := execAffecting(ctx, r.executor(ctx), query, commentID, expectedVersion); err != nil {
		return mapSoftDeleteError(err)
	}
	return nil
}

// ListByPost returns live comments of a post in insertion order.
func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID, page models.Page) ([]models.CommentDB, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE post_id = $1 AND is_deleted = false
		ORDER BY created_at ASC, comment_id ASC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, postID, page.Limit, page.Offset)
}

// ListByAuthor returns the author's live comments, newest first.
func (r *CommentRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, page models.Page) ([]models.CommentDB, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE author_id = $1 AND is_deleted = false
		ORDER BY created_at DESC, comment_id DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, authorID, page.Limit, page.Offset)
}

func (r *CommentRepository) list(ctx context.Context, query string, args ...any) ([]models.CommentDB, error) {
	comments := []models.CommentDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &comments, query, args...)
	logQuery(query, args, len(comments), err)
	if err != nil {
		return nil, mapError(err)
	}
	return comments, nil
}

// CountByPost counts live comments of a post.
func (r *CommentRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments WHERE post_id = $1 AND is_deleted = false`

	var count int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, postID)
	logQuery(query, []any{postID}, count, err)
	return count, mapError(err)
}
