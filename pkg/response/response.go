package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the failure shape every endpoint returns.
type ErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func Success(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

func Error(w http.ResponseWriter, statusCode int, message string, details interface{}) {
	JSON(w, statusCode, ErrorBody{
		Error:   message,
		Details: details,
	})
}
