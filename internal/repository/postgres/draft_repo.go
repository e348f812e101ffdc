package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"awaaz/internal/domain"
	"awaaz/internal/port"
)

type draftRepo struct {
	db *sqlx.DB
}

// NewDraftRepo creates a new PostgreSQL-backed DraftStore. One row per user,
// overwritten wholesale on every save.
func NewDraftRepo(db *sqlx.DB) port.DraftStore {
	return &draftRepo{db: db}
}

func (r *draftRepo) Save(ctx context.Context, rec *domain.DraftRecord) error {
	query := `INSERT INTO petition_drafts (user_id, payload, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET payload = EXCLUDED.payload, saved_at = EXCLUDED.saved_at`

	_, err := r.db.ExecContext(ctx, query, rec.UserID, rec.Payload, rec.SavedAt)
	if err != nil {
		return fmt.Errorf("draftRepo.Save: %w", err)
	}
	return nil
}

func (r *draftRepo) Load(ctx context.Context, userID uuid.UUID) (*domain.DraftRecord, error) {
	var rec domain.DraftRecord
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM petition_drafts WHERE user_id = $1", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("draftRepo.Load: %w", err)
	}
	return &rec, nil
}

func (r *draftRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM petition_drafts WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("draftRepo.Clear: %w", err)
	}
	return nil
}
