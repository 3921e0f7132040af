package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

//go:generate mockgen -source=posts.go -destination=mock_posts.go -package=services

// PostRepository defines storage operations for posts.
type PostRepository interface {
	GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
	ExistsByContentLink(ctx context.Context, contentLink string, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, post *models.PostDB) (*models.PostDB, error)
	Update(ctx context.Context, post *models.PostDB, expectedVersion int64) (*models.PostDB, error)
	SoftDelete(ctx context.Context, postID uuid.UUID, expectedVersion int64) error
	Feed(ctx context.Context, page models.Page) ([]models.PostDB, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page models.Page) ([]models.PostDB, error)
}

// PostService is the post store.
type PostService struct {
	tx    Transactor
	posts PostRepository
	audit *Auditor
}

func NewPostService(tx Transactor, posts PostRepository, audit *Auditor) *PostService {
	return &PostService{tx: tx, posts: posts, audit: audit}
}

// Create publishes a post for a content link not used by any live post.
func (s *PostService) Create(ctx context.Context, actor models.Actor, contentLink string) (*models.PostDB, error) {
	contentLink, err := validateContentLink(contentLink)
	if err != nil {
		return nil, err
	}

	var saved *models.PostDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		taken, err := s.posts.ExistsByContentLink(ctx, contentLink, nil)
		if err != nil {
			return fromStorage("check content link", err, nil, nil)
		}
		if taken {
			return ErrDuplicateContent
		}

		inserted, err := s.posts.Insert(ctx, &models.PostDB{ContentLink: contentLink, OwnerID: actor.UserID})
		if err != nil {
			return fromStorage("insert post", err, nil, ErrDuplicateContent)
		}
		saved = inserted
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to create post", "owner_id", actor.UserID, "content_link", contentLink, "error", err)
		return nil, fromStorage("create post", err, nil, nil)
	}

	s.audit.Publish(ctx, actor.UserID, models.EntityPost, saved.PostID, models.ActionCreate)
	return saved, nil
}

func (s *PostService) GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fromStorage("get post", err, ErrPostNotFound, nil)
	}
	return post, nil
}

// Update replaces the content link of a post owned by actor. Saving the
// current link again is allowed and still counts as an edit.
func (s *PostService) Update(ctx context.Context, postID uuid.UUID, actor models.Actor, contentLink string) (*models.PostDB, error) {
	contentLink, err := validateContentLink(contentLink)
	if err != nil {
		return nil, err
	}

	var saved *models.PostDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		post, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return fromStorage("get post", err, ErrPostNotFound, nil)
		}
		if err := Authorize(actor, post.OwnerID); err != nil {
			return err
		}

		if contentLink != post.ContentLink {
			taken, err := s.posts.ExistsByContentLink(ctx, contentLink, &post.PostID)
			if err != nil {
				return fromStorage("check content link", err, nil, nil)
			}
			if taken {
				return ErrDuplicateContent
			}
		}

		expectedVersion := post.Version
		post.ContentLink = contentLink
		updated, err := s.posts.Update(ctx, post, expectedVersion)
		if err != nil {
			return fromStorage("update post", err, nil, ErrDuplicateContent)
		}
		saved = updated
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to update post", "post_id", postID, "actor_id", actor.UserID, "error", err)
		return nil, fromStorage("update post", err, nil, nil)
	}

	s.audit.Publish(ctx, actor.UserID, models.EntityPost, postID, models.ActionUpdate)
	return saved, nil
}

// Delete soft-deletes a post owned by actor. Its comments and likes stay.
func (s *PostService) Delete(ctx context.Context, postID uuid.UUID, actor models.Actor) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		post, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return fromStorage("get post", err, ErrPostNotFound, nil)
		}
		if err := Authorize(actor, post.OwnerID); err != nil {
			return err
		}
		return fromStorage("delete post", s.posts.SoftDelete(ctx, postID, post.Version), nil, nil)
	})
	if err != nil {
		logger.Log.Errorw("failed to delete post", "post_id", postID, "actor_id", actor.UserID, "error", err)
		return fromStorage("delete post", err, nil, nil)
	}

	s.audit.Publish(ctx, actor.UserID, models.EntityPost, postID, models.ActionDelete)
	return nil
}

// Feed returns live posts, newest first.
func (s *PostService) Feed(ctx context.Context, page models.Page) ([]models.PostDB, error) {
	posts, err := s.posts.Feed(ctx, normalizePage(page))
	if err != nil {
		logger.Log.Errorw("failed to load feed", "error", err)
		return nil, fromStorage("feed", err, nil, nil)
	}
	return posts, nil
}

func (s *PostService) ListByOwner(ctx context.Context, ownerID uuid.UUID, page models.Page) ([]models.PostDB, error) {
	posts, err := s.posts.ListByOwner(ctx, ownerID, normalizePage(page))
	if err != nil {
		logger.Log.Errorw("failed to list posts", "owner_id", ownerID, "error", err)
		return nil, fromStorage("list posts", err, nil, nil)
	}
	return posts, nil
}
