package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"awaaz/internal/domain"
	"awaaz/internal/port"
)

// UpdateProfileInput is the DTO for profile updates. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	FullName *string `json:"full_name"`
	Location *string `json:"location"`
}

// UserService defines the user profile contract.
type UserService interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error)
}

type userService struct {
	userRepo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(userRepo port.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return s.userRepo.GetByPhone(ctx, strings.TrimSpace(phone))
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		if name := strings.TrimSpace(*input.FullName); name != "" {
			user.FullName = name
		}
	}
	if input.Location != nil {
		user.Location = strings.TrimSpace(*input.Location)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
