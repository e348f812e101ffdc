package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"awaaz/internal/domain"
	"awaaz/internal/port"
	"awaaz/internal/wizard"
)

// CreateCategoryInput is the DTO for creating a category.
type CreateCategoryInput struct {
	CreatedBy uuid.UUID
	Name      string
	Icon      string
}

// CategoryService defines the category management contract.
type CategoryService interface {
	List(ctx context.Context) []domain.Category
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
}

type categoryService struct {
	categoryRepo port.CategoryRepository
}

// NewCategoryService creates a new CategoryService implementation.
func NewCategoryService(categoryRepo port.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// List returns all categories. A repository failure degrades to an empty
// list rather than an error: the creation wizard must keep working with zero
// selectable categories.
func (s *categoryService) List(ctx context.Context) []domain.Category {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		log.Printf("categoryService.List: degrading to empty list: %v", err)
		return []domain.Category{}
	}
	if categories == nil {
		return []domain.Category{}
	}
	return categories
}

func (s *categoryService) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if res := wizard.ValidateField(wizard.FieldCategoryName, input.Name); !res.Valid {
		return nil, domain.ErrInvalidCategoryName
	}

	name := strings.TrimSpace(input.Name)
	category := &domain.Category{
		ID:        uuid.New(),
		Slug:      slugify(name),
		Name:      name,
		Icon:      input.Icon,
		CreatedBy: input.CreatedBy,
	}

	log.Printf("categoryService.Create: creating category %q (%s) by user %s",
		category.Name, category.Slug, input.CreatedBy)

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// slugify lowercases and dash-joins a category name.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
