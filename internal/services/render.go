package services

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/models"
	"github.com/sbilibin2017/gw-social-content/internal/storage"
)

//go:generate mockgen -source=render.go -destination=mock_render.go -package=services

// DeletedUsername stands in for the username of a deactivated owner or author.
const DeletedUsername = "[deleted]"

// UserReader resolves live users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// LikeCounter counts likes of a post.
type LikeCounter interface {
	CountByPost(ctx context.Context, postID uuid.UUID) (int64, error)
}

// CommentCounter counts live comments of a post.
type CommentCounter interface {
	CountByPost(ctx context.Context, postID uuid.UUID) (int64, error)
}

// Aggregator composes stored entities into views. Counts are read on every
// render.
type Aggregator struct {
	users    UserReader
	likes    LikeCounter
	comments CommentCounter
}

func NewAggregator(users UserReader, likes LikeCounter, comments CommentCounter) *Aggregator {
	return &Aggregator{users: users, likes: likes, comments: comments}
}

type author struct {
	username       string
	fullName       string
	profilePicture *string
}

func (a *Aggregator) resolveAuthor(ctx context.Context, userID uuid.UUID) (author, error) {
	user, err := a.users.GetByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return author{username: DeletedUsername}, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "user_id", userID, "error", err)
		return author{}, fromStorage("get user", err, nil, nil)
	}
	return author{
		username:       user.Username,
		fullName:       FullName(user.FirstName, user.MiddleName, user.LastName),
		profilePicture: user.ProfilePicture,
	}, nil
}

func (a *Aggregator) RenderPost(ctx context.Context, post *models.PostDB) (*models.PostView, error) {
	owner, err := a.resolveAuthor(ctx, post.OwnerID)
	if err != nil {
		return nil, err
	}
	likeCount, err := a.likes.CountByPost(ctx, post.PostID)
	if err != nil {
		return nil, fromStorage("count likes", err, nil, nil)
	}
	commentCount, err := a.comments.CountByPost(ctx, post.PostID)
	if err != nil {
		return nil, fromStorage("count comments", err, nil, nil)
	}

	return &models.PostView{
		ID:                  post.PostID,
		ContentLink:         post.ContentLink,
		OwnerUsername:       owner.username,
		OwnerFullName:       owner.fullName,
		OwnerProfilePicture: owner.profilePicture,
		LikeCount:           likeCount,
		CommentCount:        commentCount,
		CreatedAt:           post.CreatedAt,
		EditedAt:            post.EditedAt,
	}, nil
}

func (a *Aggregator) RenderPosts(ctx context.Context, posts []models.PostDB) ([]models.PostView, error) {
	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		view, err := a.RenderPost(ctx, &posts[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (a *Aggregator) RenderComment(ctx context.Context, comment *models.CommentDB) (*models.CommentView, error) {
	commenter, err := a.resolveAuthor(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}
	return &models.CommentView{
		ID:                   comment.CommentID,
		PostID:               comment.PostID,
		Text:                 comment.Text,
		AuthorUsername:       commenter.username,
		AuthorFullName:       commenter.fullName,
		AuthorProfilePicture: commenter.profilePicture,
		CreatedAt:            comment.CreatedAt,
		EditedAt:             comment.EditedAt,
	}, nil
}

func (a *Aggregator) RenderComments(ctx context.Context, comments []models.CommentDB) ([]models.CommentView, error) {
	views := make([]models.CommentView, 0, len(comments))
	for i := range comments {
		view, err := a.RenderComment(ctx, &comments[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// RenderUser builds the public view of a user. Password hash, version and
// deletion flag are not part of it.
func RenderUser(user *models.UserDB) models.UserView {
	return models.UserView{
		ID:             user.UserID,
		Username:       user.Username,
		Email:          user.Email,
		FullName:       FullName(user.FirstName, user.MiddleName, user.LastName),
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
		LastUpdatedAt:  user.LastUpdatedAt,
	}
}

// FullName joins the capitalized name parts as "First [Middle] Last".
// A missing or blank middle name is left out.
func FullName(first string, middle *string, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []*string{&first, middle, &last} {
		if p == nil {
			continue
		}
		if part := capitalize(*p); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
