package inspiration

import (
	"net/http"

	"github.com/dualinkhq/dualink-api/pkg/response"
)

type InspirationHandler struct {
	service InspirationService
}

func NewInspirationHandler(service InspirationService) InspirationHandler {
	return InspirationHandler{service: service}
}

// DailyInspirationHandler serves today's verse and hadith pairing. GET and POST
// behave identically; the UI posts from its midnight refresh timer.
func (h *InspirationHandler) DailyInspirationHandler(w http.ResponseWriter, r *http.Request) {
	insp, err := h.service.GetOrCreateToday(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to generate inspiration", err.Error())
		return
	}

	response.Success(w, insp.ToResponse())
}
