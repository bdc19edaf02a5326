package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/repositories"
	"rashedaq/cv-tailor/internal/services"
)

type GenerationHandler struct {
	genRepo repositories.GenerationRepository
	docRepo repositories.DocumentRepository
	worker  services.Worker
}

func NewGenerationHandler(
	genRepo repositories.GenerationRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *GenerationHandler {
	return &GenerationHandler{
		genRepo: genRepo,
		docRepo: docRepo,
		worker:  worker,
	}
}

// HandleCreateGeneration enqueues an async generation and returns 202.
// The CV text comes either inline or from a previously uploaded document.
func (h *GenerationHandler) HandleCreateGeneration(c *fiber.Ctx) error {
	var req models.CreateGenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	cvText := req.CVText
	var docID *uuid.UUID
	if strings.TrimSpace(cvText) == "" {
		if req.CVDocumentID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Either cv_text or cv_document_id is required",
			})
		}
		id, err := uuid.Parse(req.CVDocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid cv_document_id",
			})
		}
		doc, err := h.docRepo.FindByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "CV document not found",
			})
		}
		cvText = doc.ExtractedText
		docID = &id
	}

	mode := models.ModeJSON
	if req.Mode == string(models.ModeHTML) {
		mode = models.ModeHTML
	}

	gen := models.Generation{
		ID:             uuid.New(),
		SessionKey:     req.SessionKey,
		Mode:           mode,
		JobDescription: req.JobDescription,
		CVText:         cvText,
		Photo:          req.Photo,
		CVDocumentID:   docID,
		Status:         models.StatusQueued,
	}

	if err := h.genRepo.Create(&gen); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create generation",
		})
	}

	h.worker.EnqueueJob(gen.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.CreateGenerationResponse{
		ID:     gen.ID.String(),
		Status: string(gen.Status),
	})
}

// HandleGetGeneration returns the status and, when completed, the result.
func (h *GenerationHandler) HandleGetGeneration(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid generation id",
		})
	}

	gen, err := h.genRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Generation not found",
		})
	}

	resp := models.GenerationResultResponse{
		ID:           gen.ID.String(),
		Status:       string(gen.Status),
		ErrorMessage: gen.ErrorMessage,
	}

	if gen.Status == models.StatusCompleted {
		result := &models.GenerationData{}
		if gen.ResultCV != nil {
			if err := json.Unmarshal([]byte(*gen.ResultCV), &result.CV); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to decode stored result",
				})
			}
		}
		if gen.ResultAnalysis != nil {
			if err := json.Unmarshal([]byte(*gen.ResultAnalysis), &result.Analysis); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to decode stored analysis",
				})
			}
		}
		resp.Result = result
		if gen.ResultHTML != nil {
			resp.HTMLContent = *gen.ResultHTML
		}
	}

	return c.JSON(resp)
}
