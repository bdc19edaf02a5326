package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"rashedaq/cv-tailor/internal/config"
)

// Generator produces raw text from a prompt with fixed sampling
// parameters. Single attempt per call; retry policy lives with the
// caller (the async processor loops, the sync endpoint does not).
type Generator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client          *genai.Client
	modelName       string
	maxOutputTokens int32
}

func NewGeminiService(cfg config.GeminiConfig) (Generator, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:          client,
		modelName:       cfg.Model,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
	}, nil
}

// GenerateText implements Generator. The caller decides whether to fall
// back to the canned offline result.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrGenerationTimeout, err)
		}

		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &GenerationFailedError{StatusCode: apiErr.Code, Message: apiErr.Message}
		}

		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if resp == nil {
		return "", ErrEmptyGeneration
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyGeneration
	}

	return text, nil
}
