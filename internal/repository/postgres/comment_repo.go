package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"awaaz/internal/domain"
	"awaaz/internal/port"
)

type commentRepo struct {
	db *sqlx.DB
}

// NewCommentRepo creates a new PostgreSQL-backed CommentRepository.
func NewCommentRepo(db *sqlx.DB) port.CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, c *domain.Comment) error {
	c.CreatedAt = time.Now().UTC()

	query := `INSERT INTO comments (id, petition_id, user_id, author_name, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.PetitionID, c.UserID, c.AuthorName, c.Body, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("commentRepo.Create: %w", err)
	}
	return nil
}

func (r *commentRepo) ListByPetition(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Comment, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM comments WHERE petition_id = $1", petitionID)
	if err != nil {
		return nil, 0, fmt.Errorf("commentRepo.ListByPetition count: %w", err)
	}

	var comments []domain.Comment
	err = r.db.SelectContext(ctx, &comments,
		"SELECT * FROM comments WHERE petition_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		petitionID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("commentRepo.ListByPetition: %w", err)
	}
	return comments, total, nil
}
