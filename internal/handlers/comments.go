package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

//go:generate mockgen -source=comments.go -destination=mock_comments.go -package=handlers

// CommentReader lists live comments.
type CommentReader interface {
	ListForPost(ctx context.Context, postID uuid.UUID, page models.Page) ([]models.CommentDB, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, page models.Page) ([]models.CommentDB, error)
}

// CommentWriter mutates comments on behalf of an actor.
type CommentWriter interface {
	Create(ctx context.Context, postID uuid.UUID, actor models.Actor, text string) (*models.CommentDB, error)
	Update(ctx context.Context, commentID uuid.UUID, actor models.Actor, text string) (*models.CommentDB, error)
	Delete(ctx context.Context, commentID uuid.UUID, actor models.Actor) error
}

// CommentRenderer composes comments into views.
type CommentRenderer interface {
	RenderComment(ctx context.Context, comment *models.CommentDB) (*models.CommentView, error)
	RenderComments(ctx context.Context, comments []models.CommentDB) ([]models.CommentView, error)
}

// CommentRequest carries the text of a new or edited comment
// swagger:model CommentRequest
type CommentRequest struct {
	// At most 1000 characters
	// required: true
	// default: Nice shot!
	Text string `json:"text"`
}

// NewListPostCommentsHandler returns the live comments of a post, oldest first.
// @Summary Comments of a post
// @Tags comments
// @Produce json
// @Param postID path string true "Post ID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (max 100)" default(20)
// @Success 200 {object} handlers.SuccessResponse{data=[]models.CommentView}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/posts/{postID}/comments [get]
func NewListPostCommentsHandler(comments CommentReader, renderer CommentRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			writeServiceError(w, r, "list post comments", err)
			return
		}
		page, err := parsePage(r)
		if err != nil {
			writeServiceError(w, r, "list post comments", err)
			return
		}

		list, err := comments.ListForPost(r.Context(), postID, page)
		if err != nil {
			writeServiceError(w, r, "list post comments", err)
			return
		}
		writeCommentViews(w, r, renderer, "list post comments", list)
	}
}

// NewListUserCommentsHandler returns a user's live comments.
// @Summary Comments of a user
// @Tags comments
// @Produce json
// @Param userID path string true "User ID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (max 100)" default(20)
// @Success 200 {object} handlers.SuccessResponse{data=[]models.CommentView}
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/users/{userID}/comments [get]
func NewListUserCommentsHandler(comments CommentReader, renderer CommentRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := parseIDParam(r, "userID")
		if err != nil {
			writeServiceError(w, r, "list user comments", err)
			return
		}
		page, err := parsePage(r)
		if err != nil {
			writeServiceError(w, r, "list user comments", err)
			return
		}

		list, err := comments.ListByAuthor(r.Context(), authorID, page)
		if err != nil {
			writeServiceError(w, r, "list user comments", err)
			return
		}
		writeCommentViews(w, r, renderer, "list user comments", list)
	}
}

func writeCommentViews(w http.ResponseWriter, r *http.Request, renderer CommentRenderer, op string, list []models.CommentDB) {
	views, err := renderer.RenderComments(r.Context(), list)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	if views == nil {
		views = []models.CommentView{}
	}
	writeSuccess(w, http.StatusOK, views)
}

// NewCreateCommentHandler comments on a live post as the caller.
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Param postID path string true "Post ID"
// @Param request body handlers.CommentRequest true "Comment"
// @Success 201 {object} handlers.SuccessResponse{data=models.CommentView}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Router /api/posts/{postID}/comments [post]
// @Security BearerAuth
func NewCreateCommentHandler(comments CommentWriter, renderer CommentRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			writeServiceError(w, r, "create comment", err)
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailed(w, http.StatusBadRequest, "invalid request body")
			return
		}

		comment, err := comments.Create(r.Context(), postID, actor, req.Text)
		if err != nil {
			writeServiceError(w, r, "create comment", err)
			return
		}
		writeCommentView(w, r, renderer, "create comment", http.StatusCreated, comment)
	}
}

// NewUpdateCommentHandler edits the caller's comment.
// @Summary Update comment
// @Tags comments
// @Accept json
// @Produce json
// @Param commentID path string true "Comment ID"
// @Param request body handlers.CommentRequest true "Comment"
// @Success 200 {object} handlers.SuccessResponse{data=models.CommentView}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Concurrent update"
// @Router /api/comments/{commentID} [put]
// @Security BearerAuth
func NewUpdateCommentHandler(comments CommentWriter, renderer CommentRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}
		commentID, err := parseIDParam(r, "commentID")
		if err != nil {
			writeServiceError(w, r, "update comment", err)
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailed(w, http.StatusBadRequest, "invalid request body")
			return
		}

		comment, err := comments.Update(r.Context(), commentID, actor, req.Text)
		if err != nil {
			writeServiceError(w, r, "update comment", err)
			return
		}
		writeCommentView(w, r, renderer, "update comment", http.StatusOK, comment)
	}
}

// NewDeleteCommentHandler soft deletes the caller's comment.
// @Summary Delete comment
// @Tags comments
// @Produce json
// @Param commentID path string true "Comment ID"
// @Success 200 {object} handlers.SuccessResponse{data=handlers.MessageResponse}
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/comments/{commentID} [delete]
// @Security BearerAuth
func NewDeleteCommentHandler(comments CommentWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}
		commentID, err := parseIDParam(r, "commentID")
		if err != nil {
			writeServiceError(w, r, "delete comment", err)
			return
		}

		if err := comments.Delete(r.Context(), commentID, actor); err != nil {
			writeServiceError(w, r, "delete comment", err)
			return
		}
		writeSuccess(w, http.StatusOK, MessageResponse{Message: "comment deleted"})
	}
}

func writeCommentView(w http.ResponseWriter, r *http.Request, renderer CommentRenderer, op string, status int, comment *models.CommentDB) {
	view, err := renderer.RenderComment(r.Context(), comment)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeSuccess(w, status, view)
}
