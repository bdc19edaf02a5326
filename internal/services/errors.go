package services

import (
	"errors"
	"fmt"
)

// Every failure in the pipeline is scoped to a single user operation;
// nothing here is fatal to the process.
var (
	// ErrValidation marks a request missing required text input.
	ErrValidation = errors.New("missing required input")

	// ErrTransport marks a network-level failure reaching the generation
	// endpoint before any HTTP status was obtained.
	ErrTransport = errors.New("generation transport error")

	// ErrEmptyGeneration marks a response with no text payload.
	ErrEmptyGeneration = errors.New("empty generation response")

	// ErrMalformedResponse marks generated text with no extractable JSON
	// (or JSON missing the required cv/analysis envelope).
	ErrMalformedResponse = errors.New("malformed generation response")

	// ErrGenerationTimeout marks a generation exceeding the configured
	// deadline.
	ErrGenerationTimeout = errors.New("generation timed out")

	// ErrGenerationInFlight rejects a second submission while one
	// generation is outstanding for the same session.
	ErrGenerationInFlight = errors.New("a generation is already in flight for this session")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileRead            = errors.New("failed to read file")

	// ErrExportFailure marks PDF rasterization failing even after the
	// simpler fallback strategy.
	ErrExportFailure = errors.New("export failed")
)

// GenerationFailedError carries the non-success HTTP status returned by
// the upstream generation endpoint.
type GenerationFailedError struct {
	StatusCode int
	Message    string
}

func (e *GenerationFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("generation failed: upstream status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("generation failed: upstream status %d", e.StatusCode)
}
