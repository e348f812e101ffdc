package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"awaaz/internal/config"
	"awaaz/internal/domain"
	"awaaz/internal/port"
)

// OTPService models phone verification as an explicit request/response pair:
// SendCode issues a challenge, VerifyCode resolves it. A code is only ever
// checked when the caller submits it; there is no implicit auto-verify.
type OTPService interface {
	SendCode(ctx context.Context, userID uuid.UUID, phone string) (uuid.UUID, error)
	VerifyCode(ctx context.Context, userID, challengeID uuid.UUID, code string) error
	// ResolveChallenge verifies a code for an unauthenticated caller, such as
	// phone sign-in, and returns the challenge's owner on success.
	ResolveChallenge(ctx context.Context, challengeID uuid.UUID, code string) (*domain.User, error)
}

type otpService struct {
	challengeRepo port.OTPChallengeRepository
	userRepo      port.UserRepository
	sender        port.CodeSender
	cfg           config.OTPConfig
}

// NewOTPService creates a new OTPService implementation.
func NewOTPService(
	challengeRepo port.OTPChallengeRepository,
	userRepo port.UserRepository,
	sender port.CodeSender,
	cfg config.OTPConfig,
) OTPService {
	return &otpService{
		challengeRepo: challengeRepo,
		userRepo:      userRepo,
		sender:        sender,
		cfg:           cfg,
	}
}

func (s *otpService) SendCode(ctx context.Context, userID uuid.UUID, phone string) (uuid.UUID, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}

	code, err := generateCode(s.cfg.CodeLength)
	if err != nil {
		return uuid.Nil, fmt.Errorf("generating code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hashing code: %w", err)
	}

	challenge := &domain.OTPChallenge{
		ID:        uuid.New(),
		UserID:    userID,
		Phone:     phone,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().UTC().Add(s.cfg.Expiry),
	}
	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return uuid.Nil, fmt.Errorf("storing challenge: %w", err)
	}

	if err := s.sender.SendCode(ctx, phone, user.Email, user.FullName, code); err != nil {
		return uuid.Nil, fmt.Errorf("delivering code: %w", err)
	}

	log.Printf("otpService.SendCode: challenge %s issued for user %s", challenge.ID, userID)
	return challenge.ID, nil
}

func (s *otpService) VerifyCode(ctx context.Context, userID, challengeID uuid.UUID, code string) error {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return err
	}
	if challenge.UserID != userID {
		return domain.ErrChallengeNotFound
	}
	return s.resolve(ctx, challenge, code)
}

func (s *otpService) ResolveChallenge(ctx context.Context, challengeID uuid.UUID, code string) (*domain.User, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, challenge, code); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, challenge.UserID)
}

func (s *otpService) resolve(ctx context.Context, challenge *domain.OTPChallenge, code string) error {
	if time.Now().UTC().After(challenge.ExpiresAt) {
		_ = s.challengeRepo.Delete(ctx, challenge.ID)
		return domain.ErrChallengeNotFound
	}
	if challenge.Attempts >= s.cfg.MaxAttempts {
		_ = s.challengeRepo.Delete(ctx, challenge.ID)
		return domain.ErrTooManyAttempts
	}

	if err := bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code)); err != nil {
		if incErr := s.challengeRepo.IncrementAttempts(ctx, challenge.ID); incErr != nil && !errors.Is(incErr, domain.ErrChallengeNotFound) {
			log.Printf("otpService.resolve: failed to record attempt on %s: %v", challenge.ID, incErr)
		}
		return domain.ErrChallengeCode
	}

	if err := s.userRepo.SetPhoneVerified(ctx, challenge.UserID); err != nil {
		return fmt.Errorf("marking phone verified: %w", err)
	}
	if err := s.challengeRepo.Delete(ctx, challenge.ID); err != nil {
		log.Printf("otpService.resolve: failed to delete resolved challenge %s: %v", challenge.ID, err)
	}

	log.Printf("otpService.resolve: user %s verified phone via challenge %s", challenge.UserID, challenge.ID)
	return nil
}

// generateCode returns a random numeric code of the given length.
func generateCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
