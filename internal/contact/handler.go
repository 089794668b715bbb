package contact

import (
	"encoding/json"
	"net/http"

	"github.com/dualinkhq/dualink-api/pkg/response"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactHandler struct {
	service ContactService
}

func NewContactHandler(service ContactService) ContactHandler {
	return ContactHandler{service: service}
}

func (h *ContactHandler) ContactHandler(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		response.Error(w, http.StatusBadRequest, "All fields are required", nil)
		return
	}

	if err := h.service.Relay(req.Name, req.Email, req.Message); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to send message", nil)
		return
	}

	response.Success(w, map[string]string{"message": "Message sent successfully"})
}
