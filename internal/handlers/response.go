package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/middlewares"
	"github.com/sbilibin2017/gw-social-content/internal/services"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// SuccessResponse wraps the payload of a successful request
// swagger:model SuccessResponse
type SuccessResponse struct {
	// default: success
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// ErrorResponse represents a failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// default: failed
	Status string `json:"status"`
	// default: post not found
	Message string `json:"message"`
}

// MessageResponse is the payload of operations that return no entity
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, SuccessResponse{Status: statusSuccess, Data: data})
}

func writeFailed(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Status: statusFailed, Message: message})
}

// statusFor maps an error kind to its HTTP status code.
func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindNotFound, services.KindLikeNotFound:
		return http.StatusNotFound
	case services.KindAlreadyExists, services.KindAlreadyLiked, services.KindStaleWrite:
		return http.StatusConflict
	case services.KindUnauthorized:
		return http.StatusForbidden
	case services.KindInvalidInput:
		return http.StatusBadRequest
	case services.KindInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError classifies err and writes the matching failed response.
// Storage failures are logged with the request id and hidden behind a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	kind := services.KindOf(err)
	status := statusFor(kind)
	reqID := middlewares.RequestIDFromContext(r.Context())
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "op", op, "request_id", reqID, "error", err)
		writeFailed(w, status, "internal server error")
		return
	}
	logger.Log.Debugw("request rejected", "op", op, "request_id", reqID, "kind", kind.String(), "error", err)
	writeFailed(w, status, err.Error())
}
