package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"awaaz/internal/domain"
	"awaaz/internal/port"
)

type otpChallengeRepo struct {
	db *sqlx.DB
}

// NewOTPChallengeRepo creates a new PostgreSQL-backed OTPChallengeRepository.
func NewOTPChallengeRepo(db *sqlx.DB) port.OTPChallengeRepository {
	return &otpChallengeRepo{db: db}
}

func (r *otpChallengeRepo) Create(ctx context.Context, ch *domain.OTPChallenge) error {
	ch.CreatedAt = time.Now().UTC()

	query := `INSERT INTO otp_challenges (id, user_id, phone, code_hash, attempts, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		ch.ID, ch.UserID, ch.Phone, ch.CodeHash, ch.Attempts, ch.ExpiresAt, ch.CreatedAt)
	if err != nil {
		return fmt.Errorf("otpChallengeRepo.Create: %w", err)
	}
	return nil
}

func (r *otpChallengeRepo) GetByID(ctx context.Context, challengeID uuid.UUID) (*domain.OTPChallenge, error) {
	var ch domain.OTPChallenge
	err := r.db.GetContext(ctx, &ch, "SELECT * FROM otp_challenges WHERE id = $1", challengeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("otpChallengeRepo.GetByID: %w", err)
	}
	return &ch, nil
}

func (r *otpChallengeRepo) IncrementAttempts(ctx context.Context, challengeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE otp_challenges SET attempts = attempts + 1 WHERE id = $1", challengeID)
	if err != nil {
		return fmt.Errorf("otpChallengeRepo.IncrementAttempts: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrChallengeNotFound
	}
	return nil
}

func (r *otpChallengeRepo) Delete(ctx context.Context, challengeID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM otp_challenges WHERE id = $1", challengeID)
	if err != nil {
		return fmt.Errorf("otpChallengeRepo.Delete: %w", err)
	}
	return nil
}

func (r *otpChallengeRepo) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM otp_challenges WHERE expires_at < $1", time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("otpChallengeRepo.DeleteExpired: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}
