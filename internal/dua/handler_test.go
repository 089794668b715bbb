package dua

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo DuaRepo, gen Generator) http.Handler {
	service := NewDuaService(repo, gen)
	handler := NewDuaHandler(service)

	r := chi.NewRouter()
	r.Post("/checkdua", handler.CheckDuaHandler)
	r.Get("/duas", handler.ListDuasHandler)
	r.Post("/duas/{id}/resonance", handler.ResonanceHandler)
	return r
}

func TestCheckDuaHandler(t *testing.T) {
	t.Run("approved submission returns the inserted row", func(t *testing.T) {
		repo := &fakeRepo{}
		gen := &fakeGenerator{response: `{"isAppropriate": true, "relatedText": "آية", "textTranslation": "tr", "textReference": "Al-Baqarah: 286", "textType": "ayah"}`}
		router := newTestRouter(repo, gen)

		req := httptest.NewRequest(http.MethodPost, "/checkdua", strings.NewReader(`{"duaContent": "please pray for my exam"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp CheckDuaResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.IsValid)
		assert.Equal(t, "Al-Baqarah: 286", resp.TextReference)
		assert.Equal(t, TextTypeAyah, resp.TextType)
		require.NotNil(t, resp.InsertedDua)
		assert.Zero(t, resp.InsertedDua.ResonanceCount)
	})

	t.Run("rejected submission omits reference fields", func(t *testing.T) {
		repo := &fakeRepo{}
		gen := &fakeGenerator{response: `{"isAppropriate": false}`}
		router := newTestRouter(repo, gen)

		req := httptest.NewRequest(http.MethodPost, "/checkdua", strings.NewReader(`{"duaContent": "something inappropriate"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"isValid": false}`, rec.Body.String())
		assert.Empty(t, repo.duas)
	})

	t.Run("empty content is a 400", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{}, &fakeGenerator{})

		req := httptest.NewRequest(http.MethodPost, "/checkdua", strings.NewReader(`{"duaContent": "  "}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "duaContent")
	})

	t.Run("moderation failure is a 500 with details", func(t *testing.T) {
		gen := &fakeGenerator{response: "not json at all"}
		router := newTestRouter(&fakeRepo{}, gen)

		req := httptest.NewRequest(http.MethodPost, "/checkdua", strings.NewReader(`{"duaContent": "pray for rain"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})
}

func TestListDuasHandler(t *testing.T) {
	repo := &fakeRepo{duas: []Dua{{ID: uuid.New(), Content: "pray for us"}}}
	router := newTestRouter(repo, &fakeGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/duas", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var duas []Dua
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &duas))
	require.Len(t, duas, 1)
	assert.Equal(t, "pray for us", duas[0].Content)
}

func TestResonanceHandler(t *testing.T) {
	t.Run("increments and returns the new count", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeRepo{duas: []Dua{{ID: id, ResonanceCount: 5}}}
		router := newTestRouter(repo, &fakeGenerator{})

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/duas/%s/resonance", id), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ResonanceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 6, resp.ResonanceCount)
		assert.Equal(t, id, resp.ID)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{}, &fakeGenerator{})

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/duas/%s/resonance", uuid.New()), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{}, &fakeGenerator{})

		req := httptest.NewRequest(http.MethodPost, "/duas/not-a-uuid/resonance", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
