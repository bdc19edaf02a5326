package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rashedaq/cv-tailor/internal/models"
)

func TestMockService_GenerateData(t *testing.T) {
	mock := NewMockService()
	req := models.GenerationRequest{
		OriginalCV:     "Name: Jane Doe\nEmail: jane@example.com\nPhone: 555-0101\n10 years of Go.",
		JobDescription: "Senior Go engineer, 5 years, Kubernetes experience required.",
	}

	t.Run("json mode", func(t *testing.T) {
		data := mock.GenerateData(req, models.ModeJSON)
		require.NotNil(t, data)

		assert.Equal(t, "Jane Doe", data.CV.PersonalInfo.Name)
		assert.Equal(t, "jane@example.com", data.CV.PersonalInfo.Email)
		assert.Equal(t, "555-0101", data.CV.PersonalInfo.Phone)

		assert.GreaterOrEqual(t, data.Analysis.MatchScore, float64(0))
		assert.LessOrEqual(t, data.Analysis.MatchScore, float64(100))
		assert.NotEmpty(t, data.Analysis.Strengths)
		assert.NotEmpty(t, data.Analysis.Improvements)

		// cvText keeps the opening of the original CV
		assert.Contains(t, data.CVText, "Name: Jane Doe")
		assert.NotEmpty(t, data.CV.HTMLContent)
		assert.NotContains(t, data.CV.HTMLContent, "{{")
	})

	t.Run("html mode produces a full document", func(t *testing.T) {
		data := mock.GenerateData(req, models.ModeHTML)
		require.NotNil(t, data)

		assert.True(t, strings.HasPrefix(data.CV.HTMLContent, "<!DOCTYPE html>"))
		assert.Contains(t, data.CV.HTMLContent, "Jane Doe")
	})

	t.Run("photo is carried into the result", func(t *testing.T) {
		withPhoto := req
		withPhoto.Photo = "data:image/png;base64,iVBORw0KGgo="
		data := mock.GenerateData(withPhoto, models.ModeJSON)

		assert.Equal(t, withPhoto.Photo, data.CV.Photo)
		assert.Contains(t, data.CV.HTMLContent, withPhoto.Photo)
	})

	t.Run("contact fallbacks when missing", func(t *testing.T) {
		data := mock.GenerateData(models.GenerationRequest{
			OriginalCV:     "Just some experience notes.",
			JobDescription: "Any role",
		}, models.ModeJSON)

		assert.Equal(t, "Your Name", data.CV.PersonalInfo.Name)
		assert.Equal(t, "your.email@example.com", data.CV.PersonalInfo.Email)
	})
}

func TestTruncate(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "abc", truncate("abc", 10))
	})

	t.Run("ascii cut", func(t *testing.T) {
		assert.Equal(t, "abc...", truncate("abcdef", 3))
	})

	t.Run("never splits a multibyte rune", func(t *testing.T) {
		s := strings.Repeat("é", 50)
		for n := 1; n < 20; n++ {
			out := truncate(s, n)
			assert.True(t, utf8.ValidString(out), "cut at %d produced invalid UTF-8", n)
		}
	})
}
