package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rashedaq/cv-tailor/internal/models"
)

type DraftRepository interface {
	Upsert(draft *models.Draft) error
	FindBySession(sessionKey string) (*models.Draft, error)
	DeleteBySession(sessionKey string) error
}

type draftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) DraftRepository {
	return &draftRepository{db: db}
}

func (r *draftRepository) Upsert(draft *models.Draft) error {
	draft.UpdatedAt = time.Now()

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_key"}},
		UpdateAll: true,
	}).Create(draft).Error

	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (r *draftRepository) FindBySession(sessionKey string) (*models.Draft, error) {
	var draft models.Draft
	if err := r.db.Where("session_key = ?", sessionKey).First(&draft).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("draft not found: %w", gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to find draft: %w", err)
	}
	return &draft, nil
}

func (r *draftRepository) DeleteBySession(sessionKey string) error {
	if err := r.db.Where("session_key = ?", sessionKey).Delete(&models.Draft{}).Error; err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
