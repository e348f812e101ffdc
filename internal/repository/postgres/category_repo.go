package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"awaaz/internal/domain"
	"awaaz/internal/port"
)

type categoryRepo struct {
	db *sqlx.DB
}

// NewCategoryRepo creates a new PostgreSQL-backed CategoryRepository.
func NewCategoryRepo(db *sqlx.DB) port.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *domain.Category) error {
	c.CreatedAt = time.Now().UTC()

	query := `INSERT INTO categories (id, slug, name, icon, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Slug, c.Name, c.Icon, c.CreatedBy, c.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "categories_slug_key") {
			return domain.ErrDuplicateCategory
		}
		return fmt.Errorf("categoryRepo.Create: %w", err)
	}
	return nil
}

func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.GetContext(ctx, &c, "SELECT * FROM categories WHERE slug = $1", slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("categoryRepo.GetBySlug: %w", err)
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.SelectContext(ctx, &categories, "SELECT * FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("categoryRepo.List: %w", err)
	}
	return categories, nil
}
