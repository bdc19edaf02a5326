package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/repositories"
)

type DraftService interface {
	// Save schedules a debounced write. Rapid successive saves for the
	// same session coalesce into one database write.
	Save(sessionKey string, draft models.Draft)
	// Flush writes any pending draft for the session immediately.
	Flush(sessionKey string) error
	Get(sessionKey string) (*models.Draft, error)
	Delete(sessionKey string) error
	// Stop flushes every pending draft and cancels all timers.
	Stop()
}

type draftService struct {
	repo     repositories.DraftRepository
	interval time.Duration

	mu      sync.Mutex
	pending map[string]*pendingDraft
}

type pendingDraft struct {
	draft models.Draft
	timer *time.Timer
}

func NewDraftService(repo repositories.DraftRepository, interval time.Duration) DraftService {
	return &draftService{
		repo:     repo,
		interval: interval,
		pending:  make(map[string]*pendingDraft),
	}
}

func (d *draftService) Save(sessionKey string, draft models.Draft) {
	draft.SessionKey = sessionKey
	draft.UpdatedAt = time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[sessionKey]; ok {
		p.draft = draft
		p.timer.Reset(d.interval)
		return
	}

	p := &pendingDraft{draft: draft}
	p.timer = time.AfterFunc(d.interval, func() {
		if err := d.Flush(sessionKey); err != nil {
			log.Printf("❌ Failed to save draft for session %s: %v\n", sessionKey, err)
		}
	})
	d.pending[sessionKey] = p
}

func (d *draftService) Flush(sessionKey string) error {
	d.mu.Lock()
	p, ok := d.pending[sessionKey]
	if ok {
		p.timer.Stop()
		delete(d.pending, sessionKey)
	}
	d.mu.Unlock()

	if !ok {
		return nil
	}
	if err := d.repo.Upsert(&p.draft); err != nil {
		return fmt.Errorf("failed to persist draft: %w", err)
	}
	return nil
}

func (d *draftService) Get(sessionKey string) (*models.Draft, error) {
	// A pending in-memory draft is newer than whatever the table holds.
	d.mu.Lock()
	if p, ok := d.pending[sessionKey]; ok {
		draft := p.draft
		d.mu.Unlock()
		return &draft, nil
	}
	d.mu.Unlock()

	return d.repo.FindBySession(sessionKey)
}

func (d *draftService) Delete(sessionKey string) error {
	d.mu.Lock()
	if p, ok := d.pending[sessionKey]; ok {
		p.timer.Stop()
		delete(d.pending, sessionKey)
	}
	d.mu.Unlock()

	return d.repo.DeleteBySession(sessionKey)
}

func (d *draftService) Stop() {
	d.mu.Lock()
	keys := make([]string, 0, len(d.pending))
	for k := range d.pending {
		keys = append(keys, k)
	}
	d.mu.Unlock()

	for _, k := range keys {
		if err := d.Flush(k); err != nil {
			log.Printf("❌ Failed to flush draft for session %s: %v\n", k, err)
		}
	}
}
