package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/repositories"
)

type ProcessorService interface {
	ProcessGeneration(ctx context.Context, genID uuid.UUID) error
}

type processorService struct {
	genRepo     repositories.GenerationRepository
	tailor      TailorService
	maxAttempts int
}

func NewProcessorService(genRepo repositories.GenerationRepository, tailor TailorService, maxAttempts int) ProcessorService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &processorService{
		genRepo:     genRepo,
		tailor:      tailor,
		maxAttempts: maxAttempts,
	}
}

// ProcessGeneration runs one queued generation to completion, retrying
// transient failures. Validation errors never retry.
func (p *processorService) ProcessGeneration(ctx context.Context, genID uuid.UUID) error {
	gen, err := p.genRepo.FindByID(genID)
	if err != nil {
		return fmt.Errorf("failed to load generation %s: %w", genID, err)
	}
	if gen.Status == models.StatusCompleted {
		return nil
	}

	if err := p.genRepo.UpdateStatus(genID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to mark generation %s processing: %w", genID, err)
	}

	req := models.GenerationRequest{
		OriginalCV:     gen.CVText,
		JobDescription: gen.JobDescription,
		Photo:          gen.Photo,
	}

	var data *models.GenerationData
	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		data, lastErr = p.tailor.Generate(ctx, "", req, gen.Mode)
		if lastErr == nil {
			break
		}
		if !retryable(lastErr) {
			break
		}
		log.Printf("🔄 Generation %s attempt %d/%d failed: %v\n", genID, attempt, p.maxAttempts, lastErr)
	}

	if lastErr != nil {
		if uerr := p.genRepo.UpdateError(genID, lastErr.Error()); uerr != nil {
			log.Printf("❌ Failed to record error for generation %s: %v\n", genID, uerr)
		}
		return lastErr
	}

	update, err := buildResultUpdate(data)
	if err != nil {
		if uerr := p.genRepo.UpdateError(genID, err.Error()); uerr != nil {
			log.Printf("❌ Failed to record error for generation %s: %v\n", genID, uerr)
		}
		return err
	}

	if err := p.genRepo.UpdateResult(genID, update); err != nil {
		return fmt.Errorf("failed to store result for generation %s: %w", genID, err)
	}
	return nil
}

func retryable(err error) bool {
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrMalformedResponse) || errors.Is(err, ErrGenerationInFlight) {
		return false
	}
	return true
}

func buildResultUpdate(data *models.GenerationData) (*repositories.GenerationUpdateData, error) {
	cvJSON, err := json.Marshal(data.CV)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cv result: %w", err)
	}
	analysisJSON, err := json.Marshal(data.Analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis result: %w", err)
	}

	cvStr := string(cvJSON)
	analysisStr := string(analysisJSON)
	htmlStr := data.CV.HTMLContent

	return &repositories.GenerationUpdateData{
		ResultCV:       &cvStr,
		ResultHTML:     &htmlStr,
		ResultAnalysis: &analysisStr,
	}, nil
}
