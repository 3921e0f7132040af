package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/models"
	"github.com/sbilibin2017/gw-social-content/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		middle *string
		last   string
		want   string
	}{
		{"blank middle dropped", "jOHN", strPtr(""), "SMITH", "John Smith"},
		{"with middle", "ana", strPtr("maria"), "cruz", "Ana Maria Cruz"},
		{"nil middle", "ana", nil, "cruz", "Ana Cruz"},
		{"whitespace middle", " ana ", strPtr("   "), " cruz", "Ana Cruz"},
		{"non-ascii", "élodie", nil, "ÅSTRÖM", "Élodie Åström"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FullName(tt.first, tt.middle, tt.last))
		})
	}
}

func TestRenderUser(t *testing.T) {
	user := storedUser()
	user.FirstName, user.MiddleName, user.LastName = "ALICE", nil, "smith"

	view := RenderUser(user)
	assert.Equal(t, user.UserID, view.ID)
	assert.Equal(t, "Alice Smith", view.FullName)
	assert.Equal(t, testTime, view.LastUpdatedAt)
}

func TestAggregator_RenderPost(t *testing.T) {
	ctx := context.Background()
	alice := newActor("alice")
	post := storedPost(alice, "http://x/1")

	t.Run("owner and live counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := NewMockUserReader(ctrl)
		likes := NewMockLikeCounter(ctrl)
		comments := NewMockCommentCounter(ctrl)
		agg := NewAggregator(users, likes, comments)

		picture := strPtr("https://cdn.example.com/alice.png")
		users.EXPECT().GetByID(ctx, alice.UserID).Return(&models.UserDB{
			UserID: alice.UserID, Username: "alice", FirstName: "alice", LastName: "SMITH", ProfilePicture: picture,
		}, nil)
		likes.EXPECT().CountByPost(ctx, post.PostID).Return(int64(1), nil)
		comments.EXPECT().CountByPost(ctx, post.PostID).Return(int64(1), nil)

		view, err := agg.RenderPost(ctx, post)
		require.NoError(t, err)
		assert.Equal(t, models.PostView{
			ID:                  post.PostID,
			ContentLink:         "http://x/1",
			OwnerUsername:       "alice",
			OwnerFullName:       "Alice Smith",
			OwnerProfilePicture: picture,
			LikeCount:           1,
			CommentCount:        1,
			CreatedAt:           testTime,
		}, *view)
	})

	t.Run("deactivated owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := NewMockUserReader(ctrl)
		likes := NewMockLikeCounter(ctrl)
		comments := NewMockCommentCounter(ctrl)
		agg := NewAggregator(users, likes, comments)

		users.EXPECT().GetByID(ctx, alice.UserID).Return(nil, storage.ErrNotFound)
		likes.EXPECT().CountByPost(ctx, post.PostID).Return(int64(0), nil)
		comments.EXPECT().CountByPost(ctx, post.PostID).Return(int64(2), nil)

		view, err := agg.RenderPost(ctx, post)
		require.NoError(t, err)
		assert.Equal(t, DeletedUsername, view.OwnerUsername)
		assert.Empty(t, view.OwnerFullName)
		assert.Nil(t, view.OwnerProfilePicture)
		assert.Equal(t, int64(2), view.CommentCount)
	})

	t.Run("count failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := NewMockUserReader(ctrl)
		likes := NewMockLikeCounter(ctrl)
		agg := NewAggregator(users, likes, NewMockCommentCounter(ctrl))

		users.EXPECT().GetByID(ctx, alice.UserID).Return(&models.UserDB{UserID: alice.UserID}, nil)
		likes.EXPECT().CountByPost(ctx, post.PostID).Return(int64(0), errors.New("timeout"))

		_, err := agg.RenderPost(ctx, post)
		assert.Equal(t, KindStorageFailure, KindOf(err))
	})
}

func TestAggregator_RenderCommentsAndPosts(t *testing.T) {
	ctx := context.Background()
	bob := newActor("bob")
	postID := uuid.New()
	first := storedComment(postID, bob, "first")
	second := storedComment(postID, bob, "second")

	ctrl := gomock.NewController(t)
	users := NewMockUserReader(ctrl)
	likes := NewMockLikeCounter(ctrl)
	comments := NewMockCommentCounter(ctrl)
	agg := NewAggregator(users, likes, comments)

	users.EXPECT().GetByID(ctx, bob.UserID).Return(&models.UserDB{UserID: bob.UserID, Username: "bob", FirstName: "bob", LastName: "jones"}, nil).Times(2)

	views, err := agg.RenderComments(ctx, []models.CommentDB{*first, *second})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "first", *views[0].Text)
	assert.Equal(t, postID, views[1].PostID)
	assert.Equal(t, "Bob Jones", views[1].AuthorFullName)

	posts, err := agg.RenderPosts(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}
