package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/middlewares"
	"github.com/sbilibin2017/gw-social-content/internal/models"
	"github.com/sbilibin2017/gw-social-content/internal/services"
)

// parseIDParam reads a uuid path parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, &services.ValidationError{Field: name, Message: "must be a uuid"}
	}
	return id, nil
}

// parsePage reads ?offset= and ?limit=. Missing values fall back to the
// defaults; the service clamps the limit.
func parsePage(r *http.Request) (models.Page, error) {
	page := models.Page{Offset: 0, Limit: models.DefaultPageLimit}
	q := r.URL.Query()

	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return page, &services.ValidationError{Field: "offset", Message: "must be a non-negative integer"}
		}
		page.Offset = offset
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return page, &services.ValidationError{Field: "limit", Message: "must be a non-negative integer"}
		}
		page.Limit = limit
	}
	return page, nil
}

// requireActor returns the authenticated actor or writes 401.
func requireActor(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := middlewares.ActorFromContext(r.Context())
	if !ok {
		writeFailed(w, http.StatusUnauthorized, "unauthorized")
	}
	return actor, ok
}
