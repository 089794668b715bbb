package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func candidateBody(text string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	})
	return string(b)
}

func TestGenerate(t *testing.T) {
	t.Run("returns candidate text", func(t *testing.T) {
		var gotPath string
		var gotBody generateRequest
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(candidateBody("model output")))
		})

		c := NewClient("test-key", "gemini-pro", srv.URL)
		text, err := c.Generate(context.Background(), "a prompt")
		require.NoError(t, err)
		assert.Equal(t, "model output", text)
		assert.Equal(t, "/models/gemini-pro:generateContent", gotPath)
		require.Len(t, gotBody.Contents, 1)
		assert.Equal(t, "a prompt", gotBody.Contents[0].Parts[0].Text)
	})

	t.Run("missing api key", func(t *testing.T) {
		c := NewClient("", "gemini-pro", "http://unused")
		_, err := c.Generate(context.Background(), "a prompt")
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("non-200 status includes body", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("model overloaded"))
		})

		c := NewClient("test-key", "gemini-pro", srv.URL)
		_, err := c.Generate(context.Background(), "a prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "model overloaded")
	})

	t.Run("empty candidates", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		})

		c := NewClient("test-key", "gemini-pro", srv.URL)
		_, err := c.Generate(context.Background(), "a prompt")
		assert.ErrorIs(t, err, ErrNoCandidates)
	})

	t.Run("api error object", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error": {"code": 400, "message": "invalid argument"}}`))
		})

		c := NewClient("test-key", "gemini-pro", srv.URL)
		_, err := c.Generate(context.Background(), "a prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid argument")
	})
}
