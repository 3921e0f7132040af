package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

//go:generate mockgen -source=likes.go -destination=mock_likes.go -package=services

// LikeRepository defines storage operations for likes.
type LikeRepository interface {
	Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	Insert(ctx context.Context, like *models.LikeDB) (*models.LikeDB, error)
	Delete(ctx context.Context, postID, userID uuid.UUID) error
	CountByPost(ctx context.Context, postID uuid.UUID) (int64, error)
}

// LikeService is the like store. A user likes a post at most once.
// Audit events for likes carry the post id as entity id.
type LikeService struct {
	tx    Transactor
	likes LikeRepository
	posts PostReader
	audit *Auditor
}

func NewLikeService(tx Transactor, likes LikeRepository, posts PostReader, audit *Auditor) *LikeService {
	return &LikeService{tx: tx, likes: likes, posts: posts, audit: audit}
}

// Like records a like by actor on a live post. Liking twice is an error.
func (s *LikeService) Like(ctx context.Context, postID uuid.UUID, actor models.Actor) (*models.LikeResult, error) {
	var count int64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.posts.GetByID(ctx, postID); err != nil {
			return fromStorage("get post", err, ErrPostNotFound, nil)
		}

		liked, err := s.likes.Exists(ctx, postID, actor.UserID)
		if err != nil {
			return fromStorage("check like", err, nil, nil)
		}
		if liked {
			return ErrAlreadyLiked
		}

		if _, err = s.likes.Insert(ctx, &models.LikeDB{PostID: postID, UserID: actor.UserID}); err != nil {
			return fromStorage("insert like", err, nil, ErrAlreadyLiked)
		}

		count, err = s.likes.CountByPost(ctx, postID)
		return fromStorage("count likes", err, nil, nil)
	})
	if err != nil {
		logger.Log.Errorw("failed to like post", "post_id", postID, "user_id", actor.UserID, "error", err)
		return nil, fromStorage("like post", err, nil, nil)
	}

	s.audit.Publish(ctx, actor.UserID, models.EntityLike, postID, models.ActionCreate)
	return &models.LikeResult{Liked: true, LikeCount: count}, nil
}

// Unlike removes the like of actor on the post.
func (s *LikeService) Unlike(ctx context.Context, postID uuid.UUID, actor models.Actor) (*models.LikeResult, error) {
	var count int64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.likes.Delete(ctx, postID, actor.UserID); err != nil {
			return fromStorage("delete like", err, ErrLikeNotFound, nil)
		}
		var err error
		count, err = s.likes.CountByPost(ctx, postID)
		return fromStorage("count likes", err, nil, nil)
	})
	if err != nil {
		logger.Log.Errorw("failed to unlike post", "post_id", postID, "user_id", actor.UserID, "error", err)
		return nil, fromStorage("unlike post", err, nil, nil)
	}

	s.audit.Publish(ctx, actor.UserID, models.EntityLike, postID, models.ActionDelete)
	return &models.LikeResult{Liked: false, LikeCount: count}, nil
}

func (s *LikeService) Count(ctx context.Context, postID uuid.UUID) (int64, error) {
	count, err := s.likes.CountByPost(ctx, postID)
	if err != nil {
		return 0, fromStorage("count likes", err, nil, nil)
	}
	return count, nil
}

func (s *LikeService) HasLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	liked, err := s.likes.Exists(ctx, postID, userID)
	if err != nil {
		return false, fromStorage("check like", err, nil, nil)
	}
	return liked, nil
}

// Toggle likes the post if actor has not liked it yet and unlikes it
// otherwise, returning the new state.
//
// Toggle is not atomic. The existence check, the like and the unlike each
// run in their own transaction, so two concurrent toggles by the same user
// can both observe the same state. The slower one then fails with
// ErrAlreadyLiked or ErrLikeNotFound and callers may retry it.
func (s *LikeService) Toggle(ctx context.Context, postID uuid.UUID, actor models.Actor) (bool, error) {
	liked, err := s.HasLiked(ctx, postID, actor.UserID)
	if err != nil {
		return false, err
	}
	if liked {
		if _, err := s.Unlike(ctx, postID, actor); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, err := s.Like(ctx, postID, actor); err != nil {
		return false, err
	}
	return true, nil
}
