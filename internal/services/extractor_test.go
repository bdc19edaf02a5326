package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		out, err := ExtractJSON(`{"a": 1}`)
		require.NoError(t, err)
		assert.Equal(t, `{"a": 1}`, out)
	})

	t.Run("object wrapped in prose and fences", func(t *testing.T) {
		raw := "Here is your result:\n```json\n{\"a\": 1}\n```\nLet me know if you need changes."
		out, err := ExtractJSON(raw)
		require.NoError(t, err)
		assert.Equal(t, `{"a": 1}`, out)
	})

	t.Run("no braces is malformed", func(t *testing.T) {
		_, err := ExtractJSON("I could not produce a result, sorry.")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("stray brace in trailing prose is ignored", func(t *testing.T) {
		out, err := ExtractJSON(`{"a": 1} hope that helps :}`)
		require.NoError(t, err)
		assert.Equal(t, `{"a": 1}`, out)
	})

	t.Run("braces inside string values do not end the region", func(t *testing.T) {
		out, err := ExtractJSON(`{"a": "uses } and { freely", "b": 2}`)
		require.NoError(t, err)
		assert.Equal(t, `{"a": "uses } and { freely", "b": 2}`, out)
	})

	t.Run("escaped quote inside a string is handled", func(t *testing.T) {
		out, err := ExtractJSON(`{"a": "say \"}\" out loud"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"a": "say \"}\" out loud"}`, out)
	})

	t.Run("unbalanced object is malformed", func(t *testing.T) {
		_, err := ExtractJSON(`{"a": {"b": 1}`)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestParseGeneration(t *testing.T) {
	valid := `{
		"cv": {
			"personalInfo": {"name": "Jane Doe", "email": "jane@example.com"},
			"summary": "Backend engineer.",
			"experience": [],
			"education": [],
			"skills": []
		},
		"analysis": {
			"matchScore": 72,
			"strengths": ["Go experience"],
			"improvements": ["Add metrics"],
			"tailoredSummary": "Reordered for the role."
		}
	}`

	t.Run("valid envelope", func(t *testing.T) {
		data, err := ParseGeneration(valid)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", data.CV.PersonalInfo.Name)
		assert.Equal(t, float64(72), data.Analysis.MatchScore)
		assert.Equal(t, []string{"Go experience"}, data.Analysis.Strengths)
	})

	t.Run("envelope surrounded by chatter", func(t *testing.T) {
		noisy := "Sure! Here is the tailored CV:\n```json\n" + valid + "\n```\nHope this helps."
		data, err := ParseGeneration(noisy)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", data.CV.PersonalInfo.Name)
	})

	t.Run("missing cv key", func(t *testing.T) {
		_, err := ParseGeneration(`{"analysis": {"matchScore": 50}}`)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("missing analysis key", func(t *testing.T) {
		_, err := ParseGeneration(`{"cv": {"summary": "x"}}`)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("unparseable body", func(t *testing.T) {
		_, err := ParseGeneration("{not json at all}")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestExtractHTML(t *testing.T) {
	t.Run("full document passes through", func(t *testing.T) {
		doc := "<!DOCTYPE html>\n<html><body><h1>CV</h1></body></html>"
		out := ExtractHTML("Here you go:\n" + doc + "\nEnjoy!")
		assert.Equal(t, doc, out)
	})

	t.Run("html tag without doctype", func(t *testing.T) {
		doc := `<html lang="en"><body>x</body></html>`
		out := ExtractHTML(doc)
		assert.Equal(t, doc, out)
	})

	t.Run("body only", func(t *testing.T) {
		out := ExtractHTML("prefix <body><p>x</p></body> suffix")
		assert.Equal(t, "<body><p>x</p></body>", out)
	})

	t.Run("no markup wraps into default document", func(t *testing.T) {
		out := ExtractHTML("just some text, no tags")
		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
		assert.Contains(t, out, "just some text, no tags")
	})
}
