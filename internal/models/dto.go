package models

// GenerateCVRequest is the body of POST /api/generate-cv.
type GenerateCVRequest struct {
	JobDescription string `json:"jobDescription" validate:"required"`
	CVText         string `json:"cvText" validate:"required"`
	Mode           string `json:"mode,omitempty"`
	// Photo is an optional data URL rendered into the CV header.
	Photo string `json:"photo,omitempty"`
}

type GenerateCVResponse struct {
	Success bool             `json:"success"`
	Data    *GeneratedCVData `json:"data,omitempty"`
	Message string           `json:"message"`
}

type GeneratedCVData struct {
	CVText      string          `json:"cvText"`
	HTMLContent string          `json:"htmlContent"`
	Analysis    AnalysisSummary `json:"analysis"`
	Timestamp   string          `json:"timestamp"`
}

type AnalysisSummary struct {
	MatchScore   float64  `json:"matchScore"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Text         string `json:"text"`
}

// CreateGenerationRequest enqueues an async generation. Either cv_text or
// cv_document_id must be supplied.
type CreateGenerationRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	CVText         string `json:"cv_text"`
	CVDocumentID   string `json:"cv_document_id"`
	Mode           string `json:"mode"`
	SessionKey     string `json:"session_key"`
	Photo          string `json:"photo"`
}

type CreateGenerationResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type GenerationResultResponse struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Result       *GenerationData `json:"result,omitempty"`
	HTMLContent  string          `json:"html_content,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

type ExportRequest struct {
	HTML     string `json:"html" validate:"required"`
	Filename string `json:"filename"`
}

type DraftRequest struct {
	JobDescription string `json:"job_description"`
	CVText         string `json:"cv_text"`
	LastResult     string `json:"last_result"`
	LegacyDraft    string `json:"legacy_draft"`
}
