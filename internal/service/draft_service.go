package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"awaaz/internal/wizard"
)

// DraftService exposes the petition wizard's draft lifecycle. The draft
// mirrors the client's wizard state continuously; every change overwrites the
// stored snapshot wholesale.
type DraftService interface {
	// Get restores the user's draft, or starts a fresh one when no usable
	// draft exists (absent, foreign, stale, or corrupt).
	Get(ctx context.Context, userID uuid.UUID) *wizard.Draft
	// Save persists the given wizard state for the user. Ownership is forced:
	// a draft can only ever be stored under the calling user's identity.
	Save(ctx context.Context, userID uuid.UUID, d *wizard.Draft) error
	// Reset discards the user's draft ("start fresh").
	Reset(ctx context.Context, userID uuid.UUID) error
	// Verify resolves an OTP challenge for the starter's phone and flips the
	// draft's verification flag required by the final step.
	Verify(ctx context.Context, userID, challengeID uuid.UUID, code string) (*wizard.Draft, error)
}

type draftService struct {
	manager *wizard.Manager
	otpSvc  OTPService
}

// NewDraftService creates a new DraftService implementation.
func NewDraftService(manager *wizard.Manager, otpSvc OTPService) DraftService {
	return &draftService{manager: manager, otpSvc: otpSvc}
}

func (s *draftService) Get(ctx context.Context, userID uuid.UUID) *wizard.Draft {
	if d := s.manager.Load(ctx, userID); d != nil {
		return d
	}
	return wizard.NewDraft(userID)
}

func (s *draftService) Save(ctx context.Context, userID uuid.UUID, d *wizard.Draft) error {
	d.UserID = userID
	if len(d.Recipients) == 0 {
		d.Recipients = []wizard.Recipient{{}}
	}
	if d.Step < wizard.StepTitle || d.Step > wizard.StepStarter {
		d.Step = wizard.StepTitle
	}
	if err := s.manager.Save(ctx, d); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

func (s *draftService) Reset(ctx context.Context, userID uuid.UUID) error {
	if err := s.manager.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	log.Printf("draftService.Reset: cleared draft for user %s", userID)
	return nil
}

func (s *draftService) Verify(ctx context.Context, userID, challengeID uuid.UUID, code string) (*wizard.Draft, error) {
	if err := s.otpSvc.VerifyCode(ctx, userID, challengeID, code); err != nil {
		return nil, err
	}

	d := s.Get(ctx, userID)
	d.Verified = true
	if err := s.Save(ctx, userID, d); err != nil {
		return nil, err
	}
	return d, nil
}
