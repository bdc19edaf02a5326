package models

import "time"

// Draft holds one session's autosaved editing state: the same four string
// fields the web client kept in local storage. No schema versioning.
type Draft struct {
	SessionKey     string    `gorm:"type:text;primary_key" json:"session_key"`
	JobDescription string    `gorm:"type:text" json:"job_description"`
	CVText         string    `gorm:"type:text" json:"cv_text"`
	LastResult     string    `gorm:"type:text" json:"last_result"`
	LegacyDraft    string    `gorm:"type:text" json:"legacy_draft"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Draft) TableName() string {
	return "drafts"
}
