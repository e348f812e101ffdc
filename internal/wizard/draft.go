package wizard

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"awaaz/internal/domain"
	"awaaz/internal/port"
)

// Draft is the wizard's persisted snapshot: form state, recipients, selected
// categories, signing requirements, the active step, and the verification
// flag set after the starter's phone is confirmed.
type Draft struct {
	UserID              uuid.UUID                  `json:"userId"`
	Form                FormState                  `json:"formData"`
	Recipients          []Recipient                `json:"recipients"`
	Categories          []string                   `json:"selectedCategories"`
	SigningRequirements domain.SigningRequirements `json:"signingRequirements"`
	Step                Step                       `json:"step"`
	Verified            bool                       `json:"verified"`
	SavedAt             time.Time                  `json:"savedAt"`
}

// NewDraft returns an empty draft on step 1 for the given user, with a single
// blank recipient row so step 2 has something to fill in.
func NewDraft(userID uuid.UUID) *Draft {
	return &Draft{
		UserID:     userID,
		Recipients: []Recipient{{}},
		Categories: []string{},
		Step:       StepTitle,
	}
}

// Manager mirrors wizard state to a DraftStore. Writes are serialized so a
// later save can never be interleaved with, or overtaken by, an earlier one;
// the stored record is always the most recent state ("last write wins").
type Manager struct {
	store  port.DraftStore
	maxAge time.Duration

	mu sync.Mutex
}

// NewManager creates a Manager. maxAge of zero disables staleness checks.
func NewManager(store port.DraftStore, maxAge time.Duration) *Manager {
	return &Manager{store: store, maxAge: maxAge}
}

// Save overwrites the user's draft wholesale with the given state.
func (m *Manager) Save(ctx context.Context, d *Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d.SavedAt = time.Now().UTC()
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return m.store.Save(ctx, &domain.DraftRecord{
		UserID:  d.UserID,
		Payload: payload,
		SavedAt: d.SavedAt,
	})
}

// Load restores the user's draft. It returns nil (no error) when there is no
// draft, when the stored record belongs to a different user, when the record
// is stale, or when it cannot be parsed. A corrupt or foreign draft never
// blocks wizard use and never leaks into another user's session.
func (m *Manager) Load(ctx context.Context, userID uuid.UUID) *Draft {
	rec, err := m.store.Load(ctx, userID)
	if err != nil || rec == nil {
		return nil
	}
	if rec.UserID != userID {
		return nil
	}
	if m.maxAge > 0 && time.Since(rec.SavedAt) > m.maxAge {
		return nil
	}

	var d Draft
	if err := json.Unmarshal(rec.Payload, &d); err != nil {
		log.Printf("wizard.Manager: discarding unparseable draft for user %s: %v", userID, err)
		return nil
	}
	// Ownership is checked against the payload too: a record row rewritten to
	// another user's snapshot must not be restored.
	if d.UserID != userID {
		return nil
	}
	if d.Step < StepTitle || d.Step > StepStarter {
		d.Step = StepTitle
	}
	return &d
}

// Clear deletes the user's draft. Called on successful submission and on an
// explicit "start fresh"; never called on authentication failures, so work in
// progress survives a forced re-login.
func (m *Manager) Clear(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Clear(ctx, userID)
}
