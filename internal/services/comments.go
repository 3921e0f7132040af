package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

//go:generate mockgen -source=comments.go -destination=mock_comments.go -package=services

// CommentRepository defines storage operations for comments.
type CommentRepository interface {
	GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error)
	Insert(ctx context.Context, comment *models.CommentDB) (*models.CommentDB, error)
	Update(ctx context.Context, comment *models.CommentDB, expectedVersion int64) (*models.CommentDB, error)
	SoftDelete(ctx context.Context, commentID uuid.UUID, expectedVersion int64) error
	ListByPost(ctx context.Context, postID uuid.UUID, page models.Page) ([]models.CommentDB, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, page models.Page) ([]models.CommentDB, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int64, error)
}

// PostReader resolves live posts.
type PostReader interface {
	GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
}

// CommentService is the comment store.
type CommentService struct {
	tx       Transactor
	comments CommentRepository
	posts    PostReader
	audit    *Auditor
}

func NewCommentService(tx Transactor, comments CommentRepository, posts PostReader, audit *Auditor) *CommentService {
	return &CommentService{tx: tx, comments: comments, posts: posts, audit: audit}
}

// Create attaches a comment to a live post.
func (s *CommentService) Create(ctx context.Context, postID uuid.UUID, actor models.Actor, text string) (*models.CommentDB, error) {
	if err := validateCommentText(text); err != nil {
		return nil, err
	}

	var saved *models.CommentDB
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.posts.GetByID(ctx, postID); err != nil {
			return fromStorage("get post", err, ErrPostNotFound, nil)
		}
		inserted, err := s.comments.Insert(ctx, &models.CommentDB{PostID: postID, AuthorID: actor.UserID, Text: &text})
		if err != nil {
			return fromStorage("insert comment", err, nil, nil)
		}
		saved = inserted
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to create comment", "post_id", postID, "author_id", actor.UserID, "error", err)
		return nil, fromStorage("create comment", err, nil, nil)
	}

	s.audit.Publish(ctx, actor.UserID, models.EntityComment, saved.CommentID, models.ActionCreate)
	return saved, nil
}

func (s *CommentService) GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, fromStorage("get comment", err, ErrCommentNotFound, nil)
	}
	return comment, nil
}

// ListForPost returns the live comments of a live post, oldest first.
func (s *CommentService) ListForPost(ctx context.Context, postID uuid.UUID, page models.Page) ([]models.CommentDB, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, fromStorage("get post", err, ErrPostNotFound, nil)
	}
	comments, err := s.comments.ListByPost(ctx, postID, normalizePage(page))
	if err != nil {
		logger.Log.Errorw("failed to list comments", "post_id", postID, "error", err)
		return nil, fromStorage("list comments", err, nil, nil)
	}
	return comments, nil
}

func (s *CommentService) ListByAuthor(ctx context.Context, authorID uuid.UUID, page models.Page) ([]models.CommentDB, error) {
	comments, err := s.comments.ListByAuthor(ctx, authorID, normalizePage(page))
	if err != nil {
		logger.Log.Errorw("failed to list comments", "author_id", authorID, "error", err)
		return nil, fromStorage("list comments", err, nil, nil)
	}
	return comments, nil
}

// Update replaces the text of a comment written by actor.
func (s *CommentService) Update(ctx context.Context, commentID uuid.UUID, actor models.Actor, text string) (*models.CommentDB, error) {
	if err := validateCommentText(text); err != nil {
		return nil, err
	}

	var saved *models.CommentDB
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		comment, err := s.comments.GetByID(ctx, commentID)
		if err != nil {
			return fromStorage("get comment", err, ErrCommentNotFound, nil)
		}
		if err := Authorize(actor, comment.AuthorID); err != nil {
			return err
		}

		expectedVersion := comment.Version
		comment.Text = &text
		updated, err := s.comments.Update(ctx, comment, expectedVersion)
		if err != nil {
			return fromStorage("update comment", err, nil, nil)
		}
		saved = updated
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to update comment", "comment_id", commentID, "actor_id", actor.UserID, "error", err)
		return nil, fromStorage("update comment", err, nil, nil)
	}

	s.audit.Publish(ctx, actor.UserID, models.EntityComment, commentID, models.ActionUpdate)
	return saved, nil
}

// Delete soft-deletes a comment written by actor.
func (s *CommentService) Delete(ctx context.Context, commentID uuid.UUID, actor models.Actor) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		comment, err := s.comments.GetByID(ctx, commentID)
		if err != nil {
			return fromStorage("get comment", err, ErrCommentNotFound, nil)
		}
		if err := Authorize(actor, comment.AuthorID); err != nil {
			return err
		}
		return fromStorage("delete comment", s.comments.SoftDelete(ctx, commentID, comment.Version), nil, nil)
	})
	if err != nil {
		logger.Log.Errorw("failed to delete comment", "comment_id", commentID, "actor_id", actor.UserID, "error", err)
		return fromStorage("delete comment", err, nil, nil)
	}

	s.audit.Publish(ctx, actor.UserID, models.EntityComment, commentID, models.ActionDelete)
	return nil
}

// CountForPost counts the live comments of a post.
func (s *CommentService) CountForPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	count, err := s.comments.CountByPost(ctx, postID)
	if err != nil {
		return 0, fromStorage("count comments", err, nil, nil)
	}
	return count, nil
}
