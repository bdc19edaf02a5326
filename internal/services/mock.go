package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/templates"
)

// MockService is the deterministic offline generator used when no API
// credential is configured, or as the fallback after an upstream failure.
// It never touches the network.
type MockService struct{}

func NewMockService() *MockService {
	return &MockService{}
}

// GenerateData produces a canned result derived from the request inputs,
// so previews and tests behave like the live pipeline without a
// credential.
func (m *MockService) GenerateData(req models.GenerationRequest, mode models.GenerationMode) *models.GenerationData {
	name := scanContactLine(req.OriginalCV, "name", "Your Name")
	email := scanContactLine(req.OriginalCV, "email", "your.email@example.com")
	phone := scanContactLine(req.OriginalCV, "phone", "Your Phone")

	data := &models.GenerationData{
		CV: models.CV{
			PersonalInfo: models.PersonalInfo{
				Name:  name,
				Email: email,
				Phone: phone,
			},
			Photo: req.Photo,
			Summary: fmt.Sprintf(
				"Tailored for the job requirements: %s",
				truncate(req.JobDescription, 100),
			),
			Skills: []models.Skill{
				{Name: "Relevant skills based on job requirements", Level: models.SkillAdvanced, Category: models.CategoryCore},
				{Name: "Experience matching the position", Level: models.SkillAdvanced, Category: models.CategoryRelevant},
				{Name: "Professional achievements", Level: models.SkillIntermediate, Category: models.CategoryAdditional},
			},
		},
		Analysis: models.Analysis{
			MatchScore: 85,
			Strengths: []string{
				"Relevant experience highlighted",
				"Skills aligned with job requirements",
			},
			Improvements: []string{
				"Add more specific achievements",
				"Include quantifiable results",
			},
			TailoredSummary: "Generated offline: the CV content was reorganized to emphasize skills and experience matching the job description.",
		},
		CVText: m.buildCVText(req),
	}

	if mode == models.ModeHTML {
		data.CV.HTMLContent = m.buildHTML(req, name, email, phone)
	} else {
		data.CV.HTMLContent = FillTemplate(templates.TailoredCV, cvTemplateData(data))
	}

	return data
}

func (m *MockService) buildCVText(req models.GenerationRequest) string {
	lines := strings.Split(req.OriginalCV, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}

	return fmt.Sprintf(`TAILORED CV FOR JOB APPLICATION

%s

TAILORED SUMMARY:
This CV has been customized to match the job requirements: %s

KEY SKILLS (RELEVANT TO POSITION):
• Relevant skills based on job requirements
• Experience matching the position
• Professional achievements

EXPERIENCE (PRIORITIZED BY RELEVANCE):
• Experience relevant to the job description
• Additional relevant experience

EDUCATION:
• Relevant educational background

This CV has been tailored to emphasize skills and experience that match the job requirements.`,
		strings.Join(lines, "\n"), truncate(req.JobDescription, 100))
}

func (m *MockService) buildHTML(req models.GenerationRequest, name, email, phone string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>%s - Tailored CV</title>
</head>
<body>
    <h1>%s</h1>
    <div class="contact-info">
        <p>Email: %s | Phone: %s</p>
        <p>Tailored for the job requirements</p>
    </div>
    <h2>Job Description Summary</h2>
    <p>%s</p>
    <h2>Your CV Content</h2>
    <p>%s</p>
</body>
</html>`,
		name, name, email, phone,
		truncate(req.JobDescription, 200), truncate(req.OriginalCV, 500))
}

// scanContactLine finds the first "Key: value" line for the given key,
// case-insensitively.
func scanContactLine(text, key, fallback string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.Contains(strings.ToLower(trimmed), key) {
			if _, value, found := strings.Cut(trimmed, ":"); found {
				if v := strings.TrimSpace(value); v != "" {
					return v
				}
			}
		}
	}
	return fallback
}

// truncate cuts at a rune boundary so multibyte input never yields
// invalid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
