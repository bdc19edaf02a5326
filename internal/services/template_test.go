package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/templates"
)

func TestFillTemplate_Scalars(t *testing.T) {
	t.Run("substitutes present keys", func(t *testing.T) {
		out := FillTemplate("Hello {{name}}, welcome to {{city}}!", map[string]any{
			"name": "Jane",
			"city": "Berlin",
		})
		assert.Equal(t, "Hello Jane, welcome to Berlin!", out)
	})

	t.Run("absent key renders empty", func(t *testing.T) {
		out := FillTemplate("Hello {{name}}!", map[string]any{})
		assert.Equal(t, "Hello !", out)
	})

	t.Run("filling is idempotent for plain values", func(t *testing.T) {
		data := map[string]any{"name": "Jane"}
		once := FillTemplate("{{name}}", data)
		twice := FillTemplate(once, data)
		assert.Equal(t, once, twice)
	})
}

func TestFillTemplate_Blocks(t *testing.T) {
	t.Run("expands string list in order", func(t *testing.T) {
		out := FillTemplate("<ul>{{#skills}}<li>{{.}}</li>{{/skills}}</ul>", map[string]any{
			"skills": []string{"Go", "Rust"},
		})
		assert.Equal(t, "<ul><li>Go</li><li>Rust</li></ul>", out)
		assert.NotContains(t, out, "{{#skills}}")
	})

	t.Run("expands map list with field keys", func(t *testing.T) {
		out := FillTemplate("{{#jobs}}{{position}} at {{company}}; {{/jobs}}", map[string]any{
			"jobs": []map[string]any{
				{"position": "Engineer", "company": "Acme"},
				{"position": "Lead", "company": "Initech"},
			},
		})
		assert.Equal(t, "Engineer at Acme; Lead at Initech; ", out)
	})

	t.Run("empty list removes the block", func(t *testing.T) {
		out := FillTemplate("before{{#skills}}<li>{{.}}</li>{{/skills}}after", map[string]any{
			"skills": []string{},
		})
		assert.Equal(t, "beforeafter", out)
	})

	t.Run("absent key leaves markers as literal text", func(t *testing.T) {
		tmpl := "{{#missing}}<li>{{.}}</li>{{/missing}}"
		out := FillTemplate(tmpl, map[string]any{})
		assert.Equal(t, tmpl, out)
	})

	t.Run("non-list value leaves markers as literal text", func(t *testing.T) {
		tmpl := "{{#skills}}x{{/skills}}"
		out := FillTemplate(tmpl, map[string]any{"skills": "not a list"})
		assert.Equal(t, tmpl, out)
	})

	t.Run("mismatched open and close stay literal", func(t *testing.T) {
		tmpl := "{{#skills}}x{{/jobs}}"
		out := FillTemplate(tmpl, map[string]any{"skills": []string{"Go"}})
		assert.Equal(t, tmpl, out)
	})
}

func TestCVTemplateData(t *testing.T) {
	end := "2022"
	data := &models.GenerationData{
		CV: models.CV{
			PersonalInfo: models.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
			Summary:      "Backend engineer.",
			Experience: []models.WorkExperience{
				{
					Position:     "Senior Engineer",
					Company:      "Acme",
					StartDate:    "2020",
					EndDate:      &end,
					Achievements: []string{"Shipped v2", "Cut latency 40%"},
					Technologies: []string{"Go", "Postgres"},
				},
				{Position: "Engineer", Company: "Initech", StartDate: "2018", Current: true},
			},
			Skills: []models.Skill{
				{Name: "Go", Level: models.SkillAdvanced},
			},
		},
	}

	flat := cvTemplateData(data)

	assert.Equal(t, "Jane Doe", flat["name"])
	assert.Equal(t, "Senior Engineer", flat["jobTitle"])

	experience, ok := flat["experience"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, experience, 2)
	assert.Equal(t, "2022", experience[0]["endDate"])
	assert.Equal(t, "Present", experience[1]["endDate"])
	assert.Equal(t, "<li>Shipped v2</li><li>Cut latency 40%</li>", experience[0]["achievementsHtml"])
	assert.Equal(t, "Go, Postgres", experience[0]["technologiesLine"])

	skills, ok := flat["skills"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"Go"}, skills)
}

func TestFillTemplate_TailoredCVTemplate(t *testing.T) {
	data := &models.GenerationData{
		CV: models.CV{
			PersonalInfo: models.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
			Summary:      "Backend engineer.",
			Skills: []models.Skill{
				{Name: "Go"},
				{Name: "Rust"},
			},
		},
	}

	html := FillTemplate(templates.TailoredCV, cvTemplateData(data))

	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "<li>Go</li>")
	assert.Contains(t, html, "<li>Rust</li>")
	assert.NotContains(t, html, "{{#skills}}")
	assert.NotContains(t, html, "{{name}}")
}

func TestFillTemplate_Photo(t *testing.T) {
	data := &models.GenerationData{
		CV: models.CV{
			PersonalInfo: models.PersonalInfo{Name: "Jane Doe"},
		},
	}

	t.Run("photo renders as an img tag", func(t *testing.T) {
		data.CV.Photo = "data:image/png;base64,iVBORw0KGgo="
		html := FillTemplate(templates.TailoredCV, cvTemplateData(data))

		assert.Contains(t, html, `<img src="data:image/png;base64,iVBORw0KGgo="`)
		assert.Contains(t, html, `class="photo"`)
	})

	t.Run("no photo leaves no img behind", func(t *testing.T) {
		data.CV.Photo = ""
		html := FillTemplate(templates.TailoredCV, cvTemplateData(data))

		assert.NotContains(t, html, "<img")
		assert.NotContains(t, html, "{{photoHtml}}")
	})
}
