package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"awaaz/internal/config"
	"awaaz/internal/domain"
	"awaaz/internal/port"
	"awaaz/internal/wizard"
)

// PublishInput carries the multipart payload of the publish endpoint. The
// JSON-string fields match the wizard's submission assembler part for part.
type PublishInput struct {
	UserID                  uuid.UUID
	Title                   string
	Country                 string
	CategoriesJSON          string
	DecisionMakersJSON      string
	PetitionDetailsJSON     string
	PetitionStarterJSON     string
	SigningRequirementsJSON string
	Image                   multipart.File
	ImageHeader             *multipart.FileHeader
}

// SignInput carries one user's signature on a petition.
type SignInput struct {
	PetitionID   uuid.UUID
	UserID       uuid.UUID
	SignerName   string
	Constituency string
	Comment      string
	AadharNumber string
}

// PetitionService defines the petition lifecycle contract.
type PetitionService interface {
	Publish(ctx context.Context, input *PublishInput) (*domain.Petition, error)
	SubmitDraft(ctx context.Context, userID uuid.UUID) (*domain.Petition, error)
	GetByID(ctx context.Context, petitionID uuid.UUID) (*domain.Petition, error)
	List(ctx context.Context, filter port.PetitionFilter, offset, limit int) ([]domain.Petition, int, error)
	Sign(ctx context.Context, input *SignInput) (*domain.Signature, error)
	ListSignatures(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Signature, int, error)
	AllSignatures(ctx context.Context, petitionID, callerID uuid.UUID) (*domain.Petition, []domain.Signature, error)
}

type petitionService struct {
	petitionRepo  port.PetitionRepository
	categoryRepo  port.CategoryRepository
	signatureRepo port.SignatureRepository
	drafts        *wizard.Manager
	storage       port.ObjectStorage
	s3cfg         *config.S3Config
}

// NewPetitionService creates a new PetitionService implementation.
func NewPetitionService(
	petitionRepo port.PetitionRepository,
	categoryRepo port.CategoryRepository,
	signatureRepo port.SignatureRepository,
	drafts *wizard.Manager,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
) PetitionService {
	return &petitionService{
		petitionRepo:  petitionRepo,
		categoryRepo:  categoryRepo,
		signatureRepo: signatureRepo,
		drafts:        drafts,
		storage:       storage,
		s3cfg:         s3cfg,
	}
}

func (s *petitionService) Publish(ctx context.Context, input *PublishInput) (*domain.Petition, error) {
	if res := wizard.ValidateField(wizard.FieldTitle, input.Title); !res.Valid {
		return nil, fmt.Errorf("%w: title: %s", domain.ErrDraftIncomplete, res.Error)
	}
	if res := wizard.ValidateField(wizard.FieldCountry, input.Country); !res.Valid {
		return nil, fmt.Errorf("%w: country: %s", domain.ErrDraftIncomplete, res.Error)
	}

	var categories []string
	if err := json.Unmarshal([]byte(input.CategoriesJSON), &categories); err != nil || len(categories) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", domain.ErrDraftIncomplete)
	}

	var makers []domain.DecisionMaker
	if err := json.Unmarshal([]byte(input.DecisionMakersJSON), &makers); err != nil {
		return nil, fmt.Errorf("%w: decisionMakers is not valid JSON", domain.ErrDraftIncomplete)
	}
	// Entries without a name are dropped, never stored.
	kept := makers[:0]
	for _, m := range makers {
		if strings.TrimSpace(m.Name) == "" {
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: at least one decision maker with a name is required", domain.ErrDraftIncomplete)
	}

	var details domain.PetitionDetails
	if err := json.Unmarshal([]byte(input.PetitionDetailsJSON), &details); err != nil {
		return nil, fmt.Errorf("%w: petitionDetails is not valid JSON", domain.ErrDraftIncomplete)
	}
	if res := wizard.ValidateField(wizard.FieldProblem, details.Problem); !res.Valid {
		return nil, fmt.Errorf("%w: problem: %s", domain.ErrDraftIncomplete, res.Error)
	}
	if res := wizard.ValidateField(wizard.FieldSolution, details.Solution); !res.Valid {
		return nil, fmt.Errorf("%w: solution: %s", domain.ErrDraftIncomplete, res.Error)
	}

	var starter domain.PetitionStarter
	if err := json.Unmarshal([]byte(input.PetitionStarterJSON), &starter); err != nil {
		return nil, fmt.Errorf("%w: petitionStarter is not valid JSON", domain.ErrDraftIncomplete)
	}
	if res := wizard.ValidateField(wizard.FieldAadharNumber, starter.AadharNumber); !res.Valid {
		return nil, fmt.Errorf("%w: aadharNumber: %s", domain.ErrDraftIncomplete, res.Error)
	}

	var requirements domain.SigningRequirements
	if input.SigningRequirementsJSON != "" {
		if err := json.Unmarshal([]byte(input.SigningRequirementsJSON), &requirements); err != nil {
			return nil, fmt.Errorf("%w: signingRequirements is not valid JSON", domain.ErrDraftIncomplete)
		}
	}

	// Slugs must refer to stored categories; the wizard creates any new
	// category before the draft is submitted.
	for _, slug := range categories {
		if _, err := s.categoryRepo.GetBySlug(ctx, slug); err != nil {
			if errors.Is(err, domain.ErrCategoryNotFound) {
				return nil, fmt.Errorf("%w: unknown category %q", domain.ErrDraftIncomplete, slug)
			}
			return nil, fmt.Errorf("checking category %q: %w", slug, err)
		}
	}

	petitionID := uuid.New()

	imageKey := ""
	if input.Image != nil && input.ImageHeader != nil {
		key, err := s.uploadImage(ctx, petitionID, input.Image, input.ImageHeader)
		if err != nil {
			return nil, err
		}
		imageKey = key
	}

	categoriesJSON, _ := json.Marshal(categories)
	makersJSON, _ := json.Marshal(kept)
	detailsJSON, _ := json.Marshal(details)
	starterJSON, _ := json.Marshal(starter)
	requirementsJSON, _ := json.Marshal(requirements)

	petition := &domain.Petition{
		ID:                  petitionID,
		Title:               strings.TrimSpace(input.Title),
		Country:             strings.TrimSpace(input.Country),
		Categories:          categoriesJSON,
		DecisionMakers:      makersJSON,
		Details:             detailsJSON,
		Starter:             starterJSON,
		SigningRequirements: requirementsJSON,
		ImageKey:            imageKey,
		Status:              domain.PetitionStatusActive,
		CreatedBy:           input.UserID,
	}

	log.Printf("petitionService.Publish: creating petition %s by user %s", petitionID, input.UserID)

	if err := s.petitionRepo.Create(ctx, petition); err != nil {
		return nil, fmt.Errorf("creating petition: %w", err)
	}
	s.attachImageURL(ctx, petition)
	return petition, nil
}

// SubmitDraft assembles the user's completed draft into a petition, creates
// it, and clears the draft. A failed creation keeps the draft so no work is
// lost on retry.
func (s *petitionService) SubmitDraft(ctx context.Context, userID uuid.UUID) (*domain.Petition, error) {
	d := s.drafts.Load(ctx, userID)
	if d == nil {
		return nil, domain.ErrNotFound
	}

	sub, err := wizard.BuildSubmission(d)
	if err != nil {
		return nil, err
	}

	petition, err := s.Publish(ctx, &PublishInput{
		UserID:                  userID,
		Title:                   sub.Fields[wizard.PartTitle],
		Country:                 sub.Fields[wizard.PartCountry],
		CategoriesJSON:          sub.Fields[wizard.PartCategories],
		DecisionMakersJSON:      sub.Fields[wizard.PartDecisionMakers],
		PetitionDetailsJSON:     sub.Fields[wizard.PartPetitionDetails],
		PetitionStarterJSON:     sub.Fields[wizard.PartPetitionStarter],
		SigningRequirementsJSON: sub.Fields[wizard.PartSigningRequirements],
	})
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Clear(ctx, userID); err != nil {
		// The petition exists; a draft that failed to clear must not fail the
		// submission. It will be superseded on the next wizard mount.
		log.Printf("petitionService.SubmitDraft: failed to clear draft for user %s: %v", userID, err)
	}
	return petition, nil
}

func (s *petitionService) GetByID(ctx context.Context, petitionID uuid.UUID) (*domain.Petition, error) {
	petition, err := s.petitionRepo.GetByID(ctx, petitionID)
	if err != nil {
		return nil, err
	}
	s.attachImageURL(ctx, petition)
	return petition, nil
}

func (s *petitionService) List(ctx context.Context, filter port.PetitionFilter, offset, limit int) ([]domain.Petition, int, error) {
	petitions, total, err := s.petitionRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	for i := range petitions {
		s.attachImageURL(ctx, &petitions[i])
	}
	return petitions, total, nil
}

func (s *petitionService) Sign(ctx context.Context, input *SignInput) (*domain.Signature, error) {
	petition, err := s.petitionRepo.GetByID(ctx, input.PetitionID)
	if err != nil {
		return nil, err
	}

	var requirements domain.SigningRequirements
	if len(petition.SigningRequirements) > 0 {
		if err := json.Unmarshal(petition.SigningRequirements, &requirements); err != nil {
			log.Printf("petitionService.Sign: petition %s has unparseable signing requirements: %v", petition.ID, err)
		}
	}

	if requirements.Constituency.Required {
		allowed := strings.TrimSpace(requirements.Constituency.AllowedConstituency)
		if strings.TrimSpace(input.Constituency) == "" {
			return nil, domain.ErrConstituencyDenied
		}
		// Empty allowedConstituency means any constituency is accepted.
		if allowed != "" && !strings.EqualFold(allowed, strings.TrimSpace(input.Constituency)) {
			return nil, domain.ErrConstituencyDenied
		}
	}
	if requirements.Aadhar.Required {
		if res := wizard.ValidateField(wizard.FieldAadharNumber, input.AadharNumber); !res.Valid {
			return nil, domain.ErrAadharRequired
		}
	}

	if _, err := s.signatureRepo.GetByPetitionAndUser(ctx, input.PetitionID, input.UserID); err == nil {
		return nil, domain.ErrAlreadySigned
	}

	signature := &domain.Signature{
		ID:           uuid.New(),
		PetitionID:   input.PetitionID,
		UserID:       input.UserID,
		SignerName:   input.SignerName,
		Constituency: strings.TrimSpace(input.Constituency),
		Comment:      input.Comment,
	}
	if err := s.signatureRepo.Create(ctx, signature); err != nil {
		return nil, err
	}
	if err := s.petitionRepo.IncrementSignatureCount(ctx, input.PetitionID); err != nil {
		log.Printf("petitionService.Sign: failed to bump signature count on %s: %v", input.PetitionID, err)
	}
	return signature, nil
}

func (s *petitionService) ListSignatures(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Signature, int, error) {
	return s.signatureRepo.ListByPetition(ctx, petitionID, offset, limit)
}

// AllSignatures returns the petition and its full signature list for export.
// Only the petition's creator may call it.
func (s *petitionService) AllSignatures(ctx context.Context, petitionID, callerID uuid.UUID) (*domain.Petition, []domain.Signature, error) {
	petition, err := s.petitionRepo.GetByID(ctx, petitionID)
	if err != nil {
		return nil, nil, err
	}
	if petition.CreatedBy != callerID {
		return nil, nil, domain.ErrForbidden
	}
	signatures, err := s.signatureRepo.ListAllByPetition(ctx, petitionID)
	if err != nil {
		return nil, nil, err
	}
	return petition, signatures, nil
}

func (s *petitionService) uploadImage(ctx context.Context, petitionID uuid.UUID, file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	imageType, ok := domain.AllowedImageExtensions[ext]
	if !ok {
		return "", domain.ErrUnsupportedFileType
	}
	if header.Size > s.s3cfg.MaxFileSizeMB*1024*1024 {
		return "", domain.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if _, ok := domain.AllowedImageContentTypes[contentType]; !ok {
		contentType = "image/" + string(imageType)
		if imageType == domain.ImageTypeJPG {
			contentType = "image/jpeg"
		}
	}

	key := fmt.Sprintf("petitions/%s/%s.%s", petitionID, uuid.New(), ext)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        file,
		ContentType: contentType,
		Size:        header.Size,
	})
	if err != nil {
		return "", domain.ErrUploadFailed
	}
	return key, nil
}

func (s *petitionService) attachImageURL(ctx context.Context, p *domain.Petition) {
	if p.ImageKey == "" {
		return
	}
	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, p.ImageKey, s.s3cfg.PresignExpiry)
	if err != nil {
		log.Printf("petitionService: failed to presign image for petition %s: %v", p.ID, err)
		return
	}
	p.ImageURL = url
}
