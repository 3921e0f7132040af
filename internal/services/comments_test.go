package services

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/models"
	"github.com/sbilibin2017/gw-social-content/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedComment(postID uuid.UUID, author models.Actor, text string) *models.CommentDB {
	return &models.CommentDB{
		CommentID: uuid.New(),
		PostID:    postID,
		AuthorID:  author.UserID,
		Text:      &text,
		CreatedAt: testTime,
		Version:   1,
	}
}

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	bob := newActor("bob")
	postID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := NewMockCommentRepository(ctrl)
		posts := NewMockPostReader(ctrl)
		svc := NewCommentService(&txRunner{}, comments, posts, nil)

		posts.EXPECT().GetByID(gomock.Any(), postID).Return(&models.PostDB{PostID: postID}, nil)
		comments.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *models.CommentDB) (*models.CommentDB, error) {
				assert.Equal(t, postID, c.PostID)
				assert.Equal(t, bob.UserID, c.AuthorID)
				return storedComment(c.PostID, bob, *c.Text), nil
			})

		comment, err := svc.Create(ctx, postID, bob, "hi")
		require.NoError(t, err)
		assert.Equal(t, "hi", *comment.Text)
	})

	t.Run("post missing or soft-deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		posts := NewMockPostReader(ctrl)
		svc := NewCommentService(&txRunner{}, NewMockCommentRepository(ctrl), posts, nil)

		posts.EXPECT().GetByID(gomock.Any(), postID).Return(nil, storage.ErrNotFound)

		_, err := svc.Create(ctx, postID, bob, "hi")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("invalid text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewCommentService(&txRunner{}, NewMockCommentRepository(ctrl), NewMockPostReader(ctrl), nil)

		_, err := svc.Create(ctx, postID, bob, "  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = svc.Create(ctx, postID, bob, strings.Repeat("x", models.MaxCommentLength+1))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCommentService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	alice, bob := newActor("alice"), newActor("bob")

	t.Run("author edits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := NewMockCommentRepository(ctrl)
		svc := NewCommentService(&txRunner{}, comments, NewMockPostReader(ctrl), nil)
		comment := storedComment(uuid.New(), bob, "hi")

		comments.EXPECT().GetByID(gomock.Any(), comment.CommentID).Return(comment, nil)
		comments.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, c *models.CommentDB, _ int64) (*models.CommentDB, error) {
				saved := *c
				saved.EditedAt = &testTime
				saved.Version = 2
				return &saved, nil
			})

		updated, err := svc.Update(ctx, comment.CommentID, bob, "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", *updated.Text)
		assert.NotNil(t, updated.EditedAt)
	})

	t.Run("other users cannot edit or delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := NewMockCommentRepository(ctrl)
		svc := NewCommentService(&txRunner{}, comments, NewMockPostReader(ctrl), nil)
		comment := storedComment(uuid.New(), bob, "hi")

		comments.EXPECT().GetByID(gomock.Any(), comment.CommentID).Return(comment, nil).Times(2)

		_, err := svc.Update(ctx, comment.CommentID, alice, "hijacked")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.ErrorIs(t, svc.Delete(ctx, comment.CommentID, alice), ErrUnauthorized)
	})

	t.Run("stale edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := NewMockCommentRepository(ctrl)
		svc := NewCommentService(&txRunner{}, comments, NewMockPostReader(ctrl), nil)
		comment := storedComment(uuid.New(), bob, "hi")

		comments.EXPECT().GetByID(gomock.Any(), comment.CommentID).Return(comment, nil)
		comments.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).Return(nil, storage.ErrStaleWrite)

		_, err := svc.Update(ctx, comment.CommentID, bob, "hello")
		assert.ErrorIs(t, err, ErrStaleWrite)
	})

	t.Run("author deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := NewMockCommentRepository(ctrl)
		svc := NewCommentService(&txRunner{}, comments, NewMockPostReader(ctrl), nil)
		comment := storedComment(uuid.New(), bob, "hi")

		gomock.InOrder(
			comments.EXPECT().GetByID(gomock.Any(), comment.CommentID).Return(comment, nil),
			comments.EXPECT().SoftDelete(gomock.Any(), comment.CommentID, int64(1)).Return(nil),
			comments.EXPECT().GetByID(gomock.Any(), comment.CommentID).Return(nil, storage.ErrNotFound),
		)

		assert.NoError(t, svc.Delete(ctx, comment.CommentID, bob))
		assert.ErrorIs(t, svc.Delete(ctx, comment.CommentID, bob), ErrCommentNotFound)
	})
}

func TestCommentService_Reads(t *testing.T) {
	ctx := context.Background()
	bob := newActor("bob")
	postID := uuid.New()

	ctrl := gomock.NewController(t)
	comments := NewMockCommentRepository(ctrl)
	posts := NewMockPostReader(ctrl)
	svc := NewCommentService(&txRunner{}, comments, posts, nil)
	first := storedComment(postID, bob, "first")

	posts.EXPECT().GetByID(ctx, postID).Return(&models.PostDB{PostID: postID}, nil)
	comments.EXPECT().ListByPost(ctx, postID, models.Page{Limit: models.DefaultPageLimit}).Return([]models.CommentDB{*first}, nil)
	posts.EXPECT().GetByID(ctx, gomock.Not(postID)).Return(nil, storage.ErrNotFound)
	comments.EXPECT().ListByAuthor(ctx, bob.UserID, models.Page{Limit: 5}).Return([]models.CommentDB{*first}, nil)
	comments.EXPECT().CountByPost(ctx, postID).Return(int64(1), nil)
	comments.EXPECT().GetByID(ctx, first.CommentID).Return(first, nil)

	list, err := svc.ListForPost(ctx, postID, models.Page{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListForPost(ctx, uuid.New(), models.Page{})
	assert.ErrorIs(t, err, ErrPostNotFound)

	list, err = svc.ListByAuthor(ctx, bob.UserID, models.Page{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	count, err := svc.CountForPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := svc.GetByID(ctx, first.CommentID)
	require.NoError(t, err)
	assert.Equal(t, first.CommentID, got.CommentID)
}
