package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

// LikeRepository stores likes. Likes are hard-deleted; the (post_id, user_id)
// pair is unique at the table level.
type LikeRepository struct {
	base
}

func NewLikeRepository(db *sqlx.DB, txGetter TxGetter) *LikeRepository {
	return &LikeRepository{base{db: db, txGetter: txGetter}}
}

func (r *LikeRepository) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2)`

	var found bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &found, query, postID, userID)
	logQuery(query, []any{postID, userID}, found, err)
	return found, mapError(err)
}

func (r *LikeRepository) Insert(ctx context.Context, like *models.LikeDB) (*models.LikeDB, error) {
	const query = `
		INSERT INTO likes (like_id, post_id, user_id, liked_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING like_id, post_id, user_id, liked_at
	`
	if like.LikeID == uuid.Nil {
		like.LikeID = uuid.New()
	}
	args := []any{like.LikeID, like.PostID, like.UserID}

	var saved models.LikeDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)
	logQuery(query, args, saved.LikeID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &saved, nil
}

// Delete removes the like of userID on postID; storage.ErrNotFound if there is none.
func (r *LikeRepository) Delete(ctx context.Context, postID, userID uuid.UUID) error {
	const query = `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`
	return execAffecting(ctx, r.executor(ctx), query, postID, userID)
}

func (r *LikeRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	var count int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, postID)
	logQuery(query, []any{postID}, count, err)
	return count, mapError(err)
}
