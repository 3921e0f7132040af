package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

//go:generate mockgen -source=posts.go -destination=mock_posts.go -package=handlers

// PostReader lists and loads live posts.
type PostReader interface {
	GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
	Feed(ctx context.Context, page models.Page) ([]models.PostDB, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page models.Page) ([]models.PostDB, error)
}

// PostWriter mutates posts on behalf of an actor.
type PostWriter interface {
	Create(ctx context.Context, actor models.Actor, contentLink string) (*models.PostDB, error)
	Update(ctx context.Context, postID uuid.UUID, actor models.Actor, contentLink string) (*models.PostDB, error)
	Delete(ctx context.Context, postID uuid.UUID, actor models.Actor) error
}

// PostRenderer composes posts into views.
type PostRenderer interface {
	RenderPost(ctx context.Context, post *models.PostDB) (*models.PostView, error)
	RenderPosts(ctx context.Context, posts []models.PostDB) ([]models.PostView, error)
}

// PostRequest carries the content link of a new or edited post
// swagger:model PostRequest
type PostRequest struct {
	// Absolute http(s) URL of already hosted media
	// required: true
	// default: https://cdn.example.com/media/1.jpg
	ContentLink string `json:"content_link"`
}

// NewFeedHandler returns live posts newest first.
// @Summary Feed
// @Tags posts
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (max 100)" default(20)
// @Success 200 {object} handlers.SuccessResponse{data=[]models.PostView}
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/posts [get]
func NewFeedHandler(posts PostReader, renderer PostRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePage(r)
		if err != nil {
			writeServiceError(w, r, "feed", err)
			return
		}

		list, err := posts.Feed(r.Context(), page)
		if err != nil {
			writeServiceError(w, r, "feed", err)
			return
		}
		writePostViews(w, r, renderer, "feed", list)
	}
}

// NewListUserPostsHandler returns a user's live posts newest first.
// @Summary Posts of a user
// @Tags posts
// @Produce json
// @Param userID path string true "User ID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (max 100)" default(20)
// @Success 200 {object} handlers.SuccessResponse{data=[]models.PostView}
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/users/{userID}/posts [get]
func NewListUserPostsHandler(posts PostReader, renderer PostRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := parseIDParam(r, "userID")
		if err != nil {
			writeServiceError(w, r, "list user posts", err)
			return
		}
		page, err := parsePage(r)
		if err != nil {
			writeServiceError(w, r, "list user posts", err)
			return
		}

		list, err := posts.ListByOwner(r.Context(), ownerID, page)
		if err != nil {
			writeServiceError(w, r, "list user posts", err)
			return
		}
		writePostViews(w, r, renderer, "list user posts", list)
	}
}

func writePostViews(w http.ResponseWriter, r *http.Request, renderer PostRenderer, op string, list []models.PostDB) {
	views, err := renderer.RenderPosts(r.Context(), list)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	if views == nil {
		views = []models.PostView{}
	}
	writeSuccess(w, http.StatusOK, views)
}

// NewGetPostHandler returns a single live post.
// @Summary Get post
// @Tags posts
// @Produce json
// @Param postID path string true "Post ID"
// @Success 200 {object} handlers.SuccessResponse{data=models.PostView}
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/posts/{postID} [get]
func NewGetPostHandler(posts PostReader, renderer PostRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			writeServiceError(w, r, "get post", err)
			return
		}

		post, err := posts.GetByID(r.Context(), postID)
		if err != nil {
			writeServiceError(w, r, "get post", err)
			return
		}
		writePostView(w, r, renderer, "get post", http.StatusOK, post)
	}
}

// NewCreatePostHandler creates a post owned by the caller.
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body handlers.PostRequest true "Post"
// @Success 201 {object} handlers.SuccessResponse{data=models.PostView}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Content link already used"
// @Failure 429 {object} handlers.ErrorResponse
// @Router /api/posts [post]
// @Security BearerAuth
func NewCreatePostHandler(posts PostWriter, renderer PostRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}

		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailed(w, http.StatusBadRequest, "invalid request body")
			return
		}

		post, err := posts.Create(r.Context(), actor, req.ContentLink)
		if err != nil {
			writeServiceError(w, r, "create post", err)
			return
		}
		writePostView(w, r, renderer, "create post", http.StatusCreated, post)
	}
}

// NewUpdatePostHandler replaces the content link of the caller's post.
// @Summary Update post
// @Tags posts
// @Accept json
// @Produce json
// @Param postID path string true "Post ID"
// @Param request body handlers.PostRequest true "Post"
// @Success 200 {object} handlers.SuccessResponse{data=models.PostView}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Duplicate content or concurrent update"
// @Router /api/posts/{postID} [put]
// @Security BearerAuth
func NewUpdatePostHandler(posts PostWriter, renderer PostRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			writeServiceError(w, r, "update post", err)
			return
		}

		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailed(w, http.StatusBadRequest, "invalid request body")
			return
		}

		post, err := posts.Update(r.Context(), postID, actor, req.ContentLink)
		if err != nil {
			writeServiceError(w, r, "update post", err)
			return
		}
		writePostView(w, r, renderer, "update post", http.StatusOK, post)
	}
}

// NewDeletePostHandler soft deletes the caller's post.
// @Summary Delete post
// @Tags posts
// @Produce json
// @Param postID path string true "Post ID"
// @Success 200 {object} handlers.SuccessResponse{data=handlers.MessageResponse}
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/posts/{postID} [delete]
// @Security BearerAuth
func NewDeletePostHandler(posts PostWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			writeServiceError(w, r, "delete post", err)
			return
		}

		if err := posts.Delete(r.Context(), postID, actor); err != nil {
			writeServiceError(w, r, "delete post", err)
			return
		}
		writeSuccess(w, http.StatusOK, MessageResponse{Message: "post deleted"})
	}
}

func writePostView(w http.ResponseWriter, r *http.Request, renderer PostRenderer, op string, status int, post *models.PostDB) {
	view, err := renderer.RenderPost(r.Context(), post)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeSuccess(w, status, view)
}
