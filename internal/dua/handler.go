package dua

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dualinkhq/dualink-api/pkg/response"
)

type DuaHandler struct {
	service DuaService
}

func NewDuaHandler(service DuaService) DuaHandler {
	return DuaHandler{service: service}
}

func (h *DuaHandler) CheckDuaHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckDuaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	result, err := h.service.SubmitDua(r.Context(), req.DuaContent)
	if err != nil {
		if errors.Is(err, ErrEmptyContent) {
			response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
				"duaContent": "duaContent is required",
			})
			return
		}
		response.Error(w, http.StatusInternalServerError, "An error occurred while processing your request.", err.Error())
		return
	}

	if !result.Approved {
		response.Success(w, CheckDuaResponse{IsValid: false})
		return
	}

	response.Success(w, CheckDuaResponse{
		IsValid:         true,
		RelatedText:     result.Dua.RelatedText,
		TextTranslation: result.Dua.TextTranslation,
		TextReference:   result.Dua.TextReference,
		TextType:        result.Dua.TextType,
		InsertedDua:     result.Dua,
	})
}

func (h *DuaHandler) ListDuasHandler(w http.ResponseWriter, r *http.Request) {
	duas, err := h.service.ListDuas(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get duas", err.Error())
		return
	}

	if duas == nil {
		duas = []Dua{}
	}

	response.Success(w, duas)
}

func (h *DuaHandler) ResonanceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid dua id", err.Error())
		return
	}

	d, err := h.service.IncrementResonance(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Dua not found", nil)
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to update resonance count", err.Error())
		return
	}

	response.Success(w, ResonanceResponse{
		ID:             d.ID,
		ResonanceCount: d.ResonanceCount,
	})
}
