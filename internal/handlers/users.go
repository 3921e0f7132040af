package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/models"
	"github.com/sbilibin2017/gw-social-content/internal/services"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// UserFinder loads a live user.
type UserFinder interface {
	FindByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileUpdater applies a partial profile update.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) (*models.UserDB, error)
}

// AccountRemover deletes the caller's account.
type AccountRemover interface {
	SoftDelete(ctx context.Context, userID uuid.UUID) error
	Purge(ctx context.Context, userID uuid.UUID) error
}

// UpdateProfileRequest is a partial profile update. Omitted fields are kept;
// an empty middlename or profile_picture clears the field.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	FirstName      *string `json:"firstname"`
	MiddleName     *string `json:"middlename"`
	LastName       *string `json:"lastname"`
	ProfilePicture *string `json:"profile_picture"`
}

// NewGetMeHandler returns the authenticated user's profile.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} handlers.SuccessResponse{data=models.UserView}
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/users/me [get]
// @Security BearerAuth
func NewGetMeHandler(svc UserFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}

		user, err := svc.FindByID(r.Context(), actor.UserID)
		if err != nil {
			writeServiceError(w, r, "get profile", err)
			return
		}

		writeSuccess(w, http.StatusOK, services.RenderUser(user))
	}
}

// NewUpdateMeHandler applies a partial update to the authenticated user's profile.
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} handlers.SuccessResponse{data=models.UserView}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Username or email taken, or concurrent update"
// @Router /api/users/me [patch]
// @Security BearerAuth
func NewUpdateMeHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailed(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.UpdateProfile(r.Context(), actor.UserID, models.UserUpdate{
			Username:       req.Username,
			Email:          req.Email,
			FirstName:      req.FirstName,
			MiddleName:     req.MiddleName,
			LastName:       req.LastName,
			ProfilePicture: req.ProfilePicture,
		})
		if err != nil {
			writeServiceError(w, r, "update profile", err)
			return
		}

		writeSuccess(w, http.StatusOK, services.RenderUser(user))
	}
}

// NewDeleteMeHandler soft deletes the authenticated user.
// @Summary Delete current user
// @Description Marks the account deleted. Posts and comments stay and render with a placeholder owner.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.SuccessResponse{data=handlers.MessageResponse}
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/users/me [delete]
// @Security BearerAuth
func NewDeleteMeHandler(svc AccountRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}

		if err := svc.SoftDelete(r.Context(), actor.UserID); err != nil {
			writeServiceError(w, r, "delete account", err)
			return
		}

		writeSuccess(w, http.StatusOK, MessageResponse{Message: "account deleted"})
	}
}

// NewPurgeMeHandler permanently removes the authenticated user and everything they own.
// @Summary Purge current user
// @Tags users
// @Produce json
// @Success 200 {object} handlers.SuccessResponse{data=handlers.MessageResponse}
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/users/me/purge [delete]
// @Security BearerAuth
func NewPurgeMeHandler(svc AccountRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}

		if err := svc.Purge(r.Context(), actor.UserID); err != nil {
			writeServiceError(w, r, "purge account", err)
			return
		}

		writeSuccess(w, http.StatusOK, MessageResponse{Message: "account purged"})
	}
}
