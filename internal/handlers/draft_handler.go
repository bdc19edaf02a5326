package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/services"
)

type DraftHandler struct {
	draftService services.DraftService
}

func NewDraftHandler(draftService services.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// HandleSaveDraft accepts the session's editing state. The write is
// debounced, so the 204 only acknowledges receipt.
func (h *DraftHandler) HandleSaveDraft(c *fiber.Ctx) error {
	sessionKey := strings.TrimSpace(c.Params("session"))
	if sessionKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session key is required",
		})
	}

	var req models.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	h.draftService.Save(sessionKey, models.Draft{
		JobDescription: req.JobDescription,
		CVText:         req.CVText,
		LastResult:     req.LastResult,
		LegacyDraft:    req.LegacyDraft,
	})

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DraftHandler) HandleGetDraft(c *fiber.Ctx) error {
	sessionKey := strings.TrimSpace(c.Params("session"))
	if sessionKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session key is required",
		})
	}

	draft, err := h.draftService.Get(sessionKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No draft for this session",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load draft",
		})
	}

	return c.JSON(draft)
}

func (h *DraftHandler) HandleDeleteDraft(c *fiber.Ctx) error {
	sessionKey := strings.TrimSpace(c.Params("session"))
	if sessionKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session key is required",
		})
	}

	if err := h.draftService.Delete(sessionKey); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete draft",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
