package subscription

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dualinkhq/dualink-api/pkg/response"
)

type SubscriptionHandler struct {
	service SubscriptionService
}

func NewSubscriptionHandler(service SubscriptionService) SubscriptionHandler {
	return SubscriptionHandler{service: service}
}

func (h *SubscriptionHandler) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	_, err := h.service.Subscribe(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
				"email": "a valid email is required",
			})
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to subscribe", err.Error())
		return
	}

	response.Success(w, map[string]string{"message": "Subscribed to daily inspiration"})
}

func (h *SubscriptionHandler) UnsubscribeHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"token": "token is required",
		})
		return
	}

	if err := h.service.Unsubscribe(r.Context(), token); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Subscriber not found", nil)
			return
		}
		response.Error(w, http.StatusBadRequest, "Failed to unsubscribe", err.Error())
		return
	}

	response.Success(w, map[string]string{"message": "You have been unsubscribed"})
}
