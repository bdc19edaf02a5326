package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"rashedaq/cv-tailor/internal/config"
	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/templates"
)

type TailorService interface {
	// Generate runs one full tailoring attempt: prompt, model call,
	// extraction, HTML derivation. Exactly one result per attempt.
	Generate(ctx context.Context, sessionKey string, req models.GenerationRequest, mode models.GenerationMode) (*models.GenerationData, error)
}

type tailorService struct {
	generator      Generator // nil routes every request to the mock
	mock           *MockService
	promptBuilder  *PromptBuilder
	temperature    float32
	timeout        time.Duration
	fallbackToMock bool

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewTailorService wires the pipeline. A nil generator (no credential
// configured) is a valid state: every request is served by the mock.
func NewTailorService(generator Generator, cfg config.GeminiConfig) TailorService {
	return &tailorService{
		generator:      generator,
		mock:           NewMockService(),
		promptBuilder:  NewPromptBuilder(),
		temperature:    float32(cfg.Temperature),
		timeout:        cfg.Timeout,
		fallbackToMock: cfg.FallbackToMock,
	}
}

func (t *tailorService) Generate(ctx context.Context, sessionKey string, req models.GenerationRequest, mode models.GenerationMode) (*models.GenerationData, error) {
	if strings.TrimSpace(req.OriginalCV) == "" {
		return nil, fmt.Errorf("%w: cvText is required", ErrValidation)
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, fmt.Errorf("%w: jobDescription is required", ErrValidation)
	}

	if sessionKey != "" {
		if !t.acquire(sessionKey) {
			return nil, ErrGenerationInFlight
		}
		defer t.release(sessionKey)
	}

	if t.generator == nil {
		return t.mock.GenerateData(req, mode), nil
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	var prompt string
	if mode == models.ModeHTML {
		prompt = t.promptBuilder.BuildHTMLCVPrompt(req.OriginalCV, req.JobDescription)
	} else {
		prompt = t.promptBuilder.BuildTailoredCVPrompt(req.OriginalCV, req.JobDescription)
	}

	raw, err := t.generator.GenerateText(ctx, prompt, t.temperature)
	if err != nil {
		if t.fallbackToMock {
			log.Printf("⚠️  Generation failed (%v), falling back to offline result\n", err)
			return t.mock.GenerateData(req, mode), nil
		}
		return nil, err
	}

	if mode == models.ModeHTML {
		// Leniency is deliberate here: text with no HTML region is
		// wrapped in the default document, never rejected.
		html := ExtractHTML(raw)
		return &models.GenerationData{
			CV: models.CV{HTMLContent: html, Photo: req.Photo},
			Analysis: models.Analysis{
				MatchScore:      85,
				Strengths:       []string{"Professional HTML formatting", "Clean and modern design", "Well-structured content"},
				Improvements:    []string{"Consider adding more specific achievements", "Include quantifiable results where possible"},
				TailoredSummary: "Generated professional HTML resume with modern styling and clean structure.",
			},
		}, nil
	}

	// JSON mode is strict: no extractable cv/analysis envelope is a hard
	// failure surfaced to the caller.
	data, err := ParseGeneration(raw)
	if err != nil {
		return nil, err
	}

	if req.Photo != "" {
		data.CV.Photo = req.Photo
	}
	data.CVText = RenderCVText(data)
	if data.CV.HTMLContent == "" {
		data.CV.HTMLContent = FillTemplate(templates.TailoredCV, cvTemplateData(data))
	}

	return data, nil
}

func (t *tailorService) acquire(sessionKey string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inflight == nil {
		t.inflight = make(map[string]struct{})
	}
	if _, busy := t.inflight[sessionKey]; busy {
		return false
	}
	t.inflight[sessionKey] = struct{}{}
	return true
}

func (t *tailorService) release(sessionKey string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inflight, sessionKey)
}

// RenderCVText produces the plain-text rendition of a structured result,
// preserving the generator's experience order.
func RenderCVText(data *models.GenerationData) string {
	cv := data.CV
	var b strings.Builder

	b.WriteString(cv.PersonalInfo.Name + "\n")
	contact := []string{}
	for _, part := range []string{cv.PersonalInfo.Email, cv.PersonalInfo.Phone, cv.PersonalInfo.Location} {
		if part != "" {
			contact = append(contact, part)
		}
	}
	b.WriteString(strings.Join(contact, " | ") + "\n")

	if cv.Summary != "" {
		b.WriteString("\nSUMMARY\n" + cv.Summary + "\n")
	}

	if len(cv.Experience) > 0 {
		b.WriteString("\nEXPERIENCE\n")
		for _, exp := range cv.Experience {
			b.WriteString(fmt.Sprintf("%s, %s (%s - %s)\n", exp.Position, exp.Company, exp.StartDate, endDateLabel(exp.EndDate, exp.Current)))
			if exp.Description != "" {
				b.WriteString(exp.Description + "\n")
			}
			for _, a := range exp.Achievements {
				b.WriteString("• " + a + "\n")
			}
		}
	}

	if len(cv.Education) > 0 {
		b.WriteString("\nEDUCATION\n")
		for _, edu := range cv.Education {
			b.WriteString(fmt.Sprintf("%s in %s, %s\n", edu.Degree, edu.Field, edu.Institution))
		}
	}

	if len(cv.Skills) > 0 {
		b.WriteString("\nSKILLS\n")
		for _, skill := range cv.Skills {
			b.WriteString(fmt.Sprintf("• %s (%s)\n", skill.Name, skill.Level))
		}
	}

	return b.String()
}
