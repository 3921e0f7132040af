package middlewares

import (
	"encoding/json"
	"net/http"
)

// writeError writes the failed-status envelope used by the handlers.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "failed",
		"message": message,
	})
}
