package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rashedaq/cv-tailor/internal/config"
	"rashedaq/cv-tailor/internal/models"
)

// stubGenerator returns a fixed response, or error, after an optional
// delay. One instance per test.
type stubGenerator struct {
	response string
	err      error
	delay    time.Duration
	mu       sync.Mutex
	calls    int
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ErrGenerationTimeout
		}
	}
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testGeminiConfig() config.GeminiConfig {
	return config.GeminiConfig{
		Model:           "gemini-2.5-flash",
		Temperature:     0.3,
		MaxOutputTokens: 4096,
		Timeout:         5 * time.Second,
		FallbackToMock:  false,
	}
}

var validEnvelope = `{
	"cv": {
		"personalInfo": {"name": "Jane Doe", "email": "jane@example.com", "phone": "555-0101", "location": "Berlin"},
		"summary": "Backend engineer with 10 years of Go.",
		"experience": [],
		"education": [],
		"skills": [{"name": "Go", "level": "expert", "category": "core"}]
	},
	"analysis": {
		"matchScore": 91,
		"strengths": ["Deep Go experience"],
		"improvements": ["Mention Kubernetes"],
		"tailoredSummary": "Strong fit."
	}
}`

func TestTailorService_Generate(t *testing.T) {
	req := models.GenerationRequest{
		OriginalCV:     "Jane Doe\njane@example.com\n10 years of Go.",
		JobDescription: "Senior Go engineer, 5 years.",
	}

	t.Run("rejects empty cv text", func(t *testing.T) {
		svc := NewTailorService(nil, testGeminiConfig())
		_, err := svc.Generate(context.Background(), "", models.GenerationRequest{
			JobDescription: "some job",
		}, models.ModeJSON)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects empty job description", func(t *testing.T) {
		svc := NewTailorService(nil, testGeminiConfig())
		_, err := svc.Generate(context.Background(), "", models.GenerationRequest{
			OriginalCV: "some cv",
		}, models.ModeJSON)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("nil generator serves the offline result", func(t *testing.T) {
		svc := NewTailorService(nil, testGeminiConfig())
		data, err := svc.Generate(context.Background(), "", req, models.ModeJSON)
		require.NoError(t, err)
		assert.Equal(t, float64(85), data.Analysis.MatchScore)
		assert.NotEmpty(t, data.CVText)
	})

	t.Run("photo flows through to the rendered result", func(t *testing.T) {
		gen := &stubGenerator{response: validEnvelope}
		svc := NewTailorService(gen, testGeminiConfig())

		withPhoto := req
		withPhoto.Photo = "data:image/jpeg;base64,/9j/4AAQ"

		data, err := svc.Generate(context.Background(), "", withPhoto, models.ModeJSON)
		require.NoError(t, err)
		assert.Equal(t, withPhoto.Photo, data.CV.Photo)
		assert.Contains(t, data.CV.HTMLContent, withPhoto.Photo)
	})

	t.Run("parses json mode result and derives html", func(t *testing.T) {
		gen := &stubGenerator{response: "```json\n" + validEnvelope + "\n```"}
		svc := NewTailorService(gen, testGeminiConfig())

		data, err := svc.Generate(context.Background(), "", req, models.ModeJSON)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", data.CV.PersonalInfo.Name)
		assert.Equal(t, float64(91), data.Analysis.MatchScore)
		assert.Contains(t, data.CVText, "Jane Doe")
		assert.Contains(t, data.CV.HTMLContent, "Jane Doe")
	})

	t.Run("malformed json output fails even with fallback enabled", func(t *testing.T) {
		gen := &stubGenerator{response: "I cannot produce JSON today."}
		cfg := testGeminiConfig()
		cfg.FallbackToMock = true
		svc := NewTailorService(gen, cfg)

		_, err := svc.Generate(context.Background(), "", req, models.ModeJSON)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("upstream failure falls back to offline result", func(t *testing.T) {
		gen := &stubGenerator{err: ErrEmptyGeneration}
		cfg := testGeminiConfig()
		cfg.FallbackToMock = true
		svc := NewTailorService(gen, cfg)

		data, err := svc.Generate(context.Background(), "", req, models.ModeJSON)
		require.NoError(t, err)
		assert.Equal(t, float64(85), data.Analysis.MatchScore)
	})

	t.Run("upstream failure without fallback surfaces the error", func(t *testing.T) {
		gen := &stubGenerator{err: ErrEmptyGeneration}
		svc := NewTailorService(gen, testGeminiConfig())

		_, err := svc.Generate(context.Background(), "", req, models.ModeJSON)
		assert.ErrorIs(t, err, ErrEmptyGeneration)
	})

	t.Run("html mode wraps untagged output", func(t *testing.T) {
		gen := &stubGenerator{response: "just prose, no markup"}
		svc := NewTailorService(gen, testGeminiConfig())

		data, err := svc.Generate(context.Background(), "", req, models.ModeHTML)
		require.NoError(t, err)
		assert.Contains(t, data.CV.HTMLContent, "<!DOCTYPE html>")
		assert.Contains(t, data.CV.HTMLContent, "just prose, no markup")
	})

	t.Run("second generation for a busy session is rejected", func(t *testing.T) {
		gen := &stubGenerator{response: validEnvelope, delay: 200 * time.Millisecond}
		svc := NewTailorService(gen, testGeminiConfig())

		started := make(chan struct{})
		done := make(chan struct{})
		go func() {
			close(started)
			_, _ = svc.Generate(context.Background(), "session-1", req, models.ModeJSON)
			close(done)
		}()

		<-started
		time.Sleep(50 * time.Millisecond)

		_, err := svc.Generate(context.Background(), "session-1", req, models.ModeJSON)
		assert.ErrorIs(t, err, ErrGenerationInFlight)

		<-done

		// session is free again after completion
		_, err = svc.Generate(context.Background(), "session-1", req, models.ModeJSON)
		assert.NoError(t, err)
	})

	t.Run("distinct sessions do not block each other", func(t *testing.T) {
		gen := &stubGenerator{response: validEnvelope, delay: 100 * time.Millisecond}
		svc := NewTailorService(gen, testGeminiConfig())

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, session := range []string{"a", "b"} {
			wg.Add(1)
			go func(i int, session string) {
				defer wg.Done()
				_, errs[i] = svc.Generate(context.Background(), session, req, models.ModeJSON)
			}(i, session)
		}
		wg.Wait()

		assert.NoError(t, errs[0])
		assert.NoError(t, errs[1])
		assert.Equal(t, 2, gen.callCount())
	})
}
