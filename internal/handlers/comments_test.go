package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/models"
	"github.com/sbilibin2017/gw-social-content/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommentsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockCommentReader(ctrl)
	renderer := NewMockCommentRenderer(ctrl)
	postID := uuid.New()
	authorID := uuid.New()
	text := "nice"
	comments := []models.CommentDB{{CommentID: uuid.New(), PostID: postID, AuthorID: authorID, Text: &text}}
	views := []models.CommentView{{ID: comments[0].CommentID, PostID: postID, Text: &text, AuthorUsername: "carol"}}

	t.Run("for post", func(t *testing.T) {
		reader.EXPECT().ListForPost(gomock.Any(), postID, models.Page{Offset: 2, Limit: models.DefaultPageLimit}).Return(comments, nil)
		renderer.EXPECT().RenderComments(gomock.Any(), comments).Return(views, nil)

		rr := httptest.NewRecorder()
		req := newRequest(http.MethodGet, "/api/posts/"+postID.String()+"/comments?offset=2", "",
			map[string]string{"postID": postID.String()}, nil)
		NewListPostCommentsHandler(reader, renderer).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []models.CommentView
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &got))
		assert.Equal(t, views, got)
	})

	t.Run("for deleted post", func(t *testing.T) {
		reader.EXPECT().ListForPost(gomock.Any(), postID, gomock.Any()).Return(nil, services.ErrPostNotFound)

		rr := httptest.NewRecorder()
		req := newRequest(http.MethodGet, "/api/posts/"+postID.String()+"/comments", "",
			map[string]string{"postID": postID.String()}, nil)
		NewListPostCommentsHandler(reader, renderer).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("by author", func(t *testing.T) {
		reader.EXPECT().ListByAuthor(gomock.Any(), authorID, models.Page{Limit: 100}).Return(comments, nil)
		renderer.EXPECT().RenderComments(gomock.Any(), comments).Return(views, nil)

		rr := httptest.NewRecorder()
		req := newRequest(http.MethodGet, "/api/users/"+authorID.String()+"/comments?limit=100", "",
			map[string]string{"userID": authorID.String()}, nil)
		NewListUserCommentsHandler(reader, renderer).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("bad page", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := newRequest(http.MethodGet, "/api/users/"+authorID.String()+"/comments?limit=-5", "",
			map[string]string{"userID": authorID.String()}, nil)
		NewListUserCommentsHandler(reader, renderer).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateCommentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockCommentWriter(ctrl)
	renderer := NewMockCommentRenderer(ctrl)
	actor := models.Actor{UserID: uuid.New(), Username: "carol"}
	postID := uuid.New()
	params := map[string]string{"postID": postID.String()}
	longText := strings.Repeat("x", models.MaxCommentLength+1)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "created",
			body: `{"text":"hello"}`,
			mockSetup: func() {
				comment := &models.CommentDB{CommentID: uuid.New(), PostID: postID}
				writer.EXPECT().Create(gomock.Any(), postID, actor, "hello").Return(comment, nil)
				renderer.EXPECT().RenderComment(gomock.Any(), comment).Return(&models.CommentView{ID: comment.CommentID}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "too long",
			body: `{"text":"` + longText + `"}`,
			mockSetup: func() {
				writer.EXPECT().Create(gomock.Any(), postID, actor, longText).
					Return(nil, &services.ValidationError{Field: "text", Message: "must be at most 1000 characters"})
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "post deleted",
			body: `{"text":"hello"}`,
			mockSetup: func() {
				writer.EXPECT().Create(gomock.Any(), postID, actor, "hello").Return(nil, services.ErrPostNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodPost, "/api/posts/"+postID.String()+"/comments", tt.body, params, &actor)
			NewCreateCommentHandler(writer, renderer).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateAndDeleteCommentHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockCommentWriter(ctrl)
	renderer := NewMockCommentRenderer(ctrl)
	actor := models.Actor{UserID: uuid.New(), Username: "carol"}
	commentID := uuid.New()
	params := map[string]string{"commentID": commentID.String()}

	t.Run("update success", func(t *testing.T) {
		comment := &models.CommentDB{CommentID: commentID}
		writer.EXPECT().Update(gomock.Any(), commentID, actor, "edited").Return(comment, nil)
		renderer.EXPECT().RenderComment(gomock.Any(), comment).Return(&models.CommentView{ID: commentID}, nil)

		rr := httptest.NewRecorder()
		req := newRequest(http.MethodPut, "/api/comments/"+commentID.String(), `{"text":"edited"}`, params, &actor)
		NewUpdateCommentHandler(writer, renderer).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("update by non-author", func(t *testing.T) {
		writer.EXPECT().Update(gomock.Any(), commentID, actor, "edited").Return(nil, services.ErrUnauthorized)

		rr := httptest.NewRecorder()
		req := newRequest(http.MethodPut, "/api/comments/"+commentID.String(), `{"text":"edited"}`, params, &actor)
		NewUpdateCommentHandler(writer, renderer).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("delete success", func(t *testing.T) {
		writer.EXPECT().Delete(gomock.Any(), commentID, actor).Return(nil)

		rr := httptest.NewRecorder()
		NewDeleteCommentHandler(writer).ServeHTTP(rr, newRequest(http.MethodDelete, "/api/comments/"+commentID.String(), "", params, &actor))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("delete bad id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := newRequest(http.MethodDelete, "/api/comments/x", "", map[string]string{"commentID": "x"}, &actor)
		NewDeleteCommentHandler(writer).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
