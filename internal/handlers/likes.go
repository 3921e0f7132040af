package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

//go:generate mockgen -source=likes.go -destination=mock_likes.go -package=handlers

// Liker manages the caller's like on a post.
type Liker interface {
	Like(ctx context.Context, postID uuid.UUID, actor models.Actor) (*models.LikeResult, error)
	Unlike(ctx context.Context, postID uuid.UUID, actor models.Actor) (*models.LikeResult, error)
	Toggle(ctx context.Context, postID uuid.UUID, actor models.Actor) (bool, error)
	Count(ctx context.Context, postID uuid.UUID) (int64, error)
}

// NewLikeHandler likes a post as the caller.
// @Summary Like post
// @Tags likes
// @Produce json
// @Param postID path string true "Post ID"
// @Success 200 {object} handlers.SuccessResponse{data=models.LikeResult}
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Already liked"
// @Router /api/posts/{postID}/like [post]
// @Security BearerAuth
func NewLikeHandler(likes Liker) http.HandlerFunc {
	return likeAction("like post", likes.Like)
}

// NewUnlikeHandler removes the caller's like from a post.
// @Summary Unlike post
// @Tags likes
// @Produce json
// @Param postID path string true "Post ID"
// @Success 200 {object} handlers.SuccessResponse{data=models.LikeResult}
// @Failure 404 {object} handlers.ErrorResponse "Post or like not found"
// @Router /api/posts/{postID}/like [delete]
// @Security BearerAuth
func NewUnlikeHandler(likes Liker) http.HandlerFunc {
	return likeAction("unlike post", likes.Unlike)
}

func likeAction(op string, do func(context.Context, uuid.UUID, models.Actor) (*models.LikeResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			writeServiceError(w, r, op, err)
			return
		}

		result, err := do(r.Context(), postID, actor)
		if err != nil {
			writeServiceError(w, r, op, err)
			return
		}
		writeSuccess(w, http.StatusOK, result)
	}
}

// NewToggleLikeHandler flips the caller's like on a post.
// @Summary Toggle like
// @Tags likes
// @Produce json
// @Param postID path string true "Post ID"
// @Success 200 {object} handlers.SuccessResponse{data=models.LikeResult}
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Lost a race with a concurrent toggle"
// @Router /api/posts/{postID}/like/toggle [post]
// @Security BearerAuth
func NewToggleLikeHandler(likes Liker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			writeServiceError(w, r, "toggle like", err)
			return
		}

		liked, err := likes.Toggle(r.Context(), postID, actor)
		if err != nil {
			writeServiceError(w, r, "toggle like", err)
			return
		}

		count, err := likes.Count(r.Context(), postID)
		if err != nil {
			writeServiceError(w, r, "toggle like", err)
			return
		}
		writeSuccess(w, http.StatusOK, models.LikeResult{Liked: liked, LikeCount: count})
	}
}
