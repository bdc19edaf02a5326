package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/services"
)

type ExportHandler struct {
	exporter       services.ExporterService
	storageService services.StorageService
}

func NewExportHandler(exporter services.ExporterService, storageService services.StorageService) *ExportHandler {
	return &ExportHandler{
		exporter:       exporter,
		storageService: storageService,
	}
}

// HandleExportHTML writes the document to the export directory and
// returns it as a download.
func (h *ExportHandler) HandleExportHTML(c *fiber.Ctx) error {
	var req models.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(req.HTML) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "html is required",
		})
	}

	if _, _, err := h.storageService.SaveExport([]byte(req.HTML), ".html"); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save export: %v", err),
		})
	}

	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, exportFilename(req.Filename, ".html")))
	return c.SendString(req.HTML)
}

// HandleExportPDF prints the document through headless Chrome and
// returns the PDF as a download.
func (h *ExportHandler) HandleExportPDF(c *fiber.Ctx) error {
	var req models.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(req.HTML) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "html is required",
		})
	}

	pdf, err := h.exporter.RenderHTMLToPDF(c.Context(), req.HTML)
	if err != nil {
		return err
	}

	if _, _, err := h.storageService.SaveExport(pdf, ".pdf"); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save export: %v", err),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, exportFilename(req.Filename, ".pdf")))
	return c.Send(pdf)
}

func exportFilename(name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "tailored-cv"
	}
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name
}
