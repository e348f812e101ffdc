package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"awaaz/internal/domain"
	"awaaz/internal/port"
)

type petitionRepo struct {
	db *sqlx.DB
}

// NewPetitionRepo creates a new PostgreSQL-backed PetitionRepository.
func NewPetitionRepo(db *sqlx.DB) port.PetitionRepository {
	return &petitionRepo{db: db}
}

func (r *petitionRepo) Create(ctx context.Context, p *domain.Petition) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO petitions
		(id, title, country, categories, decision_makers, details, starter, signing_requirements, image_key, signature_count, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Country, p.Categories, p.DecisionMakers, p.Details, p.Starter,
		p.SigningRequirements, p.ImageKey, p.SignatureCount, p.Status, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("petitionRepo.Create: %w", err)
	}
	return nil
}

func (r *petitionRepo) GetByID(ctx context.Context, petitionID uuid.UUID) (*domain.Petition, error) {
	var p domain.Petition
	err := r.db.GetContext(ctx, &p, "SELECT * FROM petitions WHERE id = $1", petitionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPetitionNotFound
		}
		return nil, fmt.Errorf("petitionRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *petitionRepo) List(ctx context.Context, filter port.PetitionFilter, offset, limit int) ([]domain.Petition, int, error) {
	where := []string{"TRUE"}
	args := []interface{}{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Category != "" {
		where = append(where, "categories @> "+arg(fmt.Sprintf(`["%s"]`, filter.Category)))
	}
	if filter.Country != "" {
		where = append(where, "country = "+arg(filter.Country))
	}
	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}
	if filter.CreatedBy != (uuid.UUID{}) {
		where = append(where, "created_by = "+arg(filter.CreatedBy))
	}
	if filter.Search != "" {
		where = append(where, "title ILIKE "+arg("%"+filter.Search+"%"))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM petitions WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("petitionRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM petitions WHERE %s ORDER BY created_at DESC LIMIT %s OFFSET %s",
		cond, arg(limit), arg(offset))

	var petitions []domain.Petition
	if err := r.db.SelectContext(ctx, &petitions, query, args...); err != nil {
		return nil, 0, fmt.Errorf("petitionRepo.List: %w", err)
	}
	return petitions, total, nil
}

func (r *petitionRepo) IncrementSignatureCount(ctx context.Context, petitionID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE petitions SET signature_count = signature_count + 1, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), petitionID)
	if err != nil {
		return fmt.Errorf("petitionRepo.IncrementSignatureCount: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPetitionNotFound
	}
	return nil
}

func (r *petitionRepo) UpdateStatus(ctx context.Context, petitionID uuid.UUID, status domain.PetitionStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE petitions SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), petitionID)
	if err != nil {
		return fmt.Errorf("petitionRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPetitionNotFound
	}
	return nil
}
