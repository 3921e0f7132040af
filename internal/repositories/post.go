package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

const postColumns = `post_id, content_link, owner_id, created_at, edited_at, is_deleted, version`

// PostRepository stores posts. Every read excludes soft-deleted rows.
type PostRepository struct {
	base
}

func NewPostRepository(db *sqlx.DB, txGetter TxGetter) *PostRepository {
	return &PostRepository{base{db: db, txGetter: txGetter}}
}

func (r *PostRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE post_id = $1 AND is_deleted = false`

	var post models.PostDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &post, query, postID)
	logQuery(query, []any{postID}, post.PostID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &post, nil
}

// ExistsByContentLink reports whether a live post other than excludeID uses contentLink.
func (r *PostRepository) ExistsByContentLink(ctx context.Context, contentLink string, excludeID *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM posts
			WHERE content_link = $1 AND is_deleted = false
			  AND ($2::UUID IS NULL OR post_id <> $2)
		)
	`
	var found bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &found, query, contentLink, excludeID)
	logQuery(query, []any{contentLink, excludeID}, found, err)
	return found, mapError(err)
}

func (r *PostRepository) Insert(ctx context.Context, post *models.PostDB) (*models.PostDB, error) {
	query := `
		INSERT INTO posts (post_id, content_link, owner_id, created_at, is_deleted, version)
		VALUES ($1, $2, $3, NOW(), false, 1)
		RETURNING ` + postColumns

	if post.PostID == uuid.Nil {
		post.PostID = uuid.New()
	}
	args := []any{post.PostID, post.ContentLink, post.OwnerID}

	var saved models.PostDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)
	logQuery(query, args, saved.PostID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &saved, nil
}

// Update replaces the content link if the stored version still equals expectedVersion.
func (r *PostRepository) Update(ctx context.Context, post *models.PostDB, expectedVersion int64) (*models.PostDB, error) {
	query := `
		UPDATE posts
		SET content_link = $2, edited_at = NOW(), version = version + 1
		WHERE post_id = $1 AND version = $3 AND is_deleted = false
		RETURNING ` + postColumns
	args := []any{post.PostID, post.ContentLink, expectedVersion}

	var saved models.PostDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)
	logQuery(query, args, saved.Version, err)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &saved, nil
}

// SoftDelete flags the post as deleted. Comments and likes are left in place.
func (r *PostRepository) SoftDelete(ctx context.Context, postID uuid.UUID, expectedVersion int64) error {
	const query = `
		UPDATE posts
		SET is_deleted = true, version = version + 1
		WHERE post_id = $1 AND version = $2 AND is_deleted = false
	`
	if err := execAffecting(ctx, r.executor(ctx), query, postID, expectedVersion); err != nil {
		return mapSoftDeleteError(err)
	}
	return nil
}

// Feed returns live posts, newest first.
func (r *PostRepository) Feed(ctx context.Context, page models.Page) ([]models.PostDB, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE is_deleted = false
		ORDER BY created_at DESC, post_id DESC
		LIMIT $1 OFFSET $2
	`
	return r.list(ctx, query, page.Limit, page.Offset)
}

// ListByOwner returns the owner's live posts, newest first.
func (r *PostRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page models.Page) ([]models.PostDB, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE owner_id = $1 AND is_deleted = false
		ORDER BY created_at DESC, post_id DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, ownerID, page.Limit, page.Offset)
}

func (r *PostRepository) list(ctx context.Context, query string, args ...any) ([]models.PostDB, error) {
	posts := []models.PostDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &posts, query, args...)
	logQuery(query, args, len(posts), err)
	if err != nil {
		return nil, mapError(err)
	}
	return posts, nil
}
