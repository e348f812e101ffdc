package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"awaaz/internal/domain"
	"awaaz/internal/port"
)

type signatureRepo struct {
	db *sqlx.DB
}

// NewSignatureRepo creates a new PostgreSQL-backed SignatureRepository.
func NewSignatureRepo(db *sqlx.DB) port.SignatureRepository {
	return &signatureRepo{db: db}
}

func (r *signatureRepo) Create(ctx context.Context, s *domain.Signature) error {
	s.SignedAt = time.Now().UTC()

	query := `INSERT INTO signatures (id, petition_id, user_id, signer_name, constituency, comment, signed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.PetitionID, s.UserID, s.SignerName, s.Constituency, s.Comment, s.SignedAt)
	if err != nil {
		if strings.Contains(err.Error(), "signatures_petition_user_key") {
			return domain.ErrAlreadySigned
		}
		return fmt.Errorf("signatureRepo.Create: %w", err)
	}
	return nil
}

func (r *signatureRepo) GetByPetitionAndUser(ctx context.Context, petitionID, userID uuid.UUID) (*domain.Signature, error) {
	var s domain.Signature
	err := r.db.GetContext(ctx, &s,
		"SELECT * FROM signatures WHERE petition_id = $1 AND user_id = $2", petitionID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("signatureRepo.GetByPetitionAndUser: %w", err)
	}
	return &s, nil
}

func (r *signatureRepo) ListByPetition(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Signature, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM signatures WHERE petition_id = $1", petitionID)
	if err != nil {
		return nil, 0, fmt.Errorf("signatureRepo.ListByPetition count: %w", err)
	}

	var signatures []domain.Signature
	err = r.db.SelectContext(ctx, &signatures,
		"SELECT * FROM signatures WHERE petition_id = $1 ORDER BY signed_at DESC LIMIT $2 OFFSET $3",
		petitionID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("signatureRepo.ListByPetition: %w", err)
	}
	return signatures, total, nil
}

func (r *signatureRepo) ListAllByPetition(ctx context.Context, petitionID uuid.UUID) ([]domain.Signature, error) {
	var signatures []domain.Signature
	err := r.db.SelectContext(ctx, &signatures,
		"SELECT * FROM signatures WHERE petition_id = $1 ORDER BY signed_at ASC", petitionID)
	if err != nil {
		return nil, fmt.Errorf("signatureRepo.ListAllByPetition: %w", err)
	}
	return signatures, nil
}
