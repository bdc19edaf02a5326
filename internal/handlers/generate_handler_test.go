package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rashedaq/cv-tailor/internal/config"
	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/services"
)

type countingGenerator struct {
	calls int64
}

func (g *countingGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	atomic.AddInt64(&g.calls, 1)
	return "", services.ErrEmptyGeneration
}

func newTestApp(generator services.Generator) *fiber.App {
	cfg := config.GeminiConfig{
		Model:           "gemini-2.5-flash",
		Temperature:     0.3,
		MaxOutputTokens: 4096,
		Timeout:         5 * time.Second,
	}
	handler := NewGenerateHandler(services.NewTailorService(generator, cfg))

	app := fiber.New()
	app.Post("/api/generate-cv", handler.HandleGenerateCV)
	app.Get("/api/health", handler.HandleHealth)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHandleGenerateCV(t *testing.T) {
	t.Run("missing cvText is rejected before any model call", func(t *testing.T) {
		gen := &countingGenerator{}
		app := newTestApp(gen)

		resp := postJSON(t, app, "/api/generate-cv", models.GenerateCVRequest{
			JobDescription: "Senior Go engineer, 5 years",
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["error"])
		assert.Equal(t, int64(0), atomic.LoadInt64(&gen.calls))
	})

	t.Run("missing jobDescription is rejected", func(t *testing.T) {
		gen := &countingGenerator{}
		app := newTestApp(gen)

		resp := postJSON(t, app, "/api/generate-cv", models.GenerateCVRequest{
			CVText: "Jane Doe, backend engineer",
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, int64(0), atomic.LoadInt64(&gen.calls))
	})

	t.Run("offline mode returns the full envelope", func(t *testing.T) {
		app := newTestApp(nil)

		resp := postJSON(t, app, "/api/generate-cv", models.GenerateCVRequest{
			JobDescription: "Senior Go engineer, 5 years, Kubernetes experience required.",
			CVText:         "Name: Jane Doe\nEmail: jane@example.com\n10 years of Go.",
		})

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body models.GenerateCVResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		assert.True(t, body.Success)
		require.NotNil(t, body.Data)
		assert.Contains(t, body.Data.CVText, "Name: Jane Doe")
		assert.NotEmpty(t, body.Data.HTMLContent)
		assert.GreaterOrEqual(t, body.Data.Analysis.MatchScore, float64(0))
		assert.LessOrEqual(t, body.Data.Analysis.MatchScore, float64(100))
		assert.NotEmpty(t, body.Data.Analysis.Strengths)
		assert.NotEmpty(t, body.Data.Analysis.Improvements)

		_, err := time.Parse(time.RFC3339, body.Data.Timestamp)
		assert.NoError(t, err)
	})

	t.Run("html mode returns a full document", func(t *testing.T) {
		app := newTestApp(nil)

		resp := postJSON(t, app, "/api/generate-cv", models.GenerateCVRequest{
			JobDescription: "Platform team lead role.",
			CVText:         "Name: Jane Doe\nBackend engineer.",
			Mode:           "html",
		})

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body models.GenerateCVResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotNil(t, body.Data)
		assert.Contains(t, body.Data.HTMLContent, "<!DOCTYPE html>")
	})
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
}
