package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"awaaz/internal/domain"
	"awaaz/internal/port"
)

// CreateCommentInput is the DTO for posting a comment on a petition.
type CreateCommentInput struct {
	PetitionID uuid.UUID
	UserID     uuid.UUID
	Body       string
}

// CommentService defines the petition comment contract.
type CommentService interface {
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	ListByPetition(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Comment, int, error)
}

type commentService struct {
	commentRepo  port.CommentRepository
	petitionRepo port.PetitionRepository
	userRepo     port.UserRepository
}

// NewCommentService creates a new CommentService implementation.
func NewCommentService(
	commentRepo port.CommentRepository,
	petitionRepo port.PetitionRepository,
	userRepo port.UserRepository,
) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		petitionRepo: petitionRepo,
		userRepo:     userRepo,
	}
}

func (s *commentService) Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, domain.ErrEmptyComment
	}

	if _, err := s.petitionRepo.GetByID(ctx, input.PetitionID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:         uuid.New(),
		PetitionID: input.PetitionID,
		UserID:     input.UserID,
		AuthorName: user.FullName,
		Body:       body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListByPetition(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Comment, int, error) {
	return s.commentRepo.ListByPetition(ctx, petitionID, offset, limit)
}
