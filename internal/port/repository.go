package port

import (
	"context"

	"github.com/google/uuid"

	"awaaz/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetPhoneVerified(ctx context.Context, userID uuid.UUID) error
}

// PetitionRepository defines the contract for petition persistence.
type PetitionRepository interface {
	Create(ctx context.Context, p *domain.Petition) error
	GetByID(ctx context.Context, petitionID uuid.UUID) (*domain.Petition, error)
	List(ctx context.Context, filter PetitionFilter, offset, limit int) ([]domain.Petition, int, error)
	IncrementSignatureCount(ctx context.Context, petitionID uuid.UUID) error
	UpdateStatus(ctx context.Context, petitionID uuid.UUID, status domain.PetitionStatus) error
}

// PetitionFilter narrows petition listings.
type PetitionFilter struct {
	Category  string
	Country   string
	Status    domain.PetitionStatus
	CreatedBy uuid.UUID
	Search    string
}

// CategoryRepository defines the contract for category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// DraftStore defines the contract for wizard draft persistence. One record
// per user; Save overwrites wholesale.
type DraftStore interface {
	Save(ctx context.Context, rec *domain.DraftRecord) error
	Load(ctx context.Context, userID uuid.UUID) (*domain.DraftRecord, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// SignatureRepository defines the contract for signature persistence.
type SignatureRepository interface {
	Create(ctx context.Context, s *domain.Signature) error
	GetByPetitionAndUser(ctx context.Context, petitionID, userID uuid.UUID) (*domain.Signature, error)
	ListByPetition(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Signature, int, error)
	ListAllByPetition(ctx context.Context, petitionID uuid.UUID) ([]domain.Signature, error)
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByPetition(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Comment, int, error)
}

// OTPChallengeRepository defines the contract for pending verification codes.
type OTPChallengeRepository interface {
	Create(ctx context.Context, ch *domain.OTPChallenge) error
	GetByID(ctx context.Context, challengeID uuid.UUID) (*domain.OTPChallenge, error)
	IncrementAttempts(ctx context.Context, challengeID uuid.UUID) error
	Delete(ctx context.Context, challengeID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}
