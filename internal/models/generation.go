package models

import (
	"time"

	"github.com/google/uuid"
)

type GenerationStatus string

const (
	StatusQueued     GenerationStatus = "queued"
	StatusProcessing GenerationStatus = "processing"
	StatusCompleted  GenerationStatus = "completed"
	StatusFailed     GenerationStatus = "failed"
)

// Generation is one queued generation attempt. Exactly one attempt
// produces exactly one result; there are no partial or streaming states
// beyond queued/processing and completed/failed.
type Generation struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionKey     string           `gorm:"type:text;index" json:"session_key"`
	Mode           GenerationMode   `gorm:"type:text;not null;default:'json'" json:"mode"`
	JobDescription string           `gorm:"type:text;not null" json:"job_description"`
	CVText         string           `gorm:"type:text;not null" json:"cv_text"`
	Photo          string           `gorm:"type:text" json:"photo,omitempty"`
	CVDocumentID   *uuid.UUID       `gorm:"type:uuid" json:"cv_document_id,omitempty"`
	Status         GenerationStatus `gorm:"not null;default:'queued'" json:"status"`
	ResultCV       *string          `gorm:"type:jsonb" json:"result_cv,omitempty"`
	ResultHTML     *string          `gorm:"type:text" json:"result_html,omitempty"`
	ResultAnalysis *string          `gorm:"type:jsonb" json:"result_analysis,omitempty"`
	ErrorMessage   *string          `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt      time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	CVDocument *Document `gorm:"foreignKey:CVDocumentID" json:"-"`
}

func (Generation) TableName() string {
	return "generations"
}
