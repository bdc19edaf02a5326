package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/services"
)

type GenerateHandler struct {
	tailorService services.TailorService
}

func NewGenerateHandler(tailorService services.TailorService) *GenerateHandler {
	return &GenerateHandler{tailorService: tailorService}
}

// HandleGenerateCV runs one synchronous tailoring pass and returns the
// full result envelope. Missing inputs are rejected before any model
// call happens.
func (h *GenerateHandler) HandleGenerateCV(c *fiber.Ctx) error {
	var req models.GenerateCVRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" || strings.TrimSpace(req.CVText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description and CV text are required",
		})
	}

	mode := models.ModeJSON
	if req.Mode == string(models.ModeHTML) {
		mode = models.ModeHTML
	}

	sessionKey := c.Get("X-Session-Key")

	data, err := h.tailorService.Generate(c.Context(), sessionKey, models.GenerationRequest{
		OriginalCV:     req.CVText,
		JobDescription: req.JobDescription,
		Photo:          req.Photo,
	}, mode)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(models.GenerateCVResponse{
		Success: true,
		Data: &models.GeneratedCVData{
			CVText:      data.CVText,
			HTMLContent: data.CV.HTMLContent,
			Analysis: models.AnalysisSummary{
				MatchScore:   data.Analysis.MatchScore,
				Strengths:    data.Analysis.Strengths,
				Improvements: data.Analysis.Improvements,
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Message: "CV generated successfully",
	})
}

// HandleHealth reports service liveness.
func (h *GenerateHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
