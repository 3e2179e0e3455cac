package config

import (
	"encoding/json"
	"net/http"
)

type ErrorBody struct {
	Detail string `json:"detail"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		Logger.WithError(err).Error("failed to encode response body")
	}
}

// Error writes {"detail": detail} with the given status.
func Error(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, ErrorBody{Detail: detail})
}
