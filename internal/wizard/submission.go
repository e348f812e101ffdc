package wizard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"awaaz/internal/domain"
)

// Submission is the assembled multipart payload for publishing a petition.
// Fields holds the serialized form parts keyed by part name; Image, when set,
// is attached as the file part.
type Submission struct {
	Fields map[string]string
	Image  io.Reader
	// ImageName and ImageContentType describe the optional image part.
	ImageName        string
	ImageContentType string
}

// Multipart part names, matching the publish endpoint's contract.
const (
	PartTitle               = "title"
	PartCountry             = "country"
	PartCategories          = "categories"
	PartDecisionMakers      = "decisionMakers"
	PartPetitionDetails     = "petitionDetails"
	PartPetitionStarter     = "petitionStarter"
	PartSigningRequirements = "signingRequirements"
	PartImage               = "image"
)

// BuildSubmission gathers a completed draft into the outbound payload. The
// draft must pass every wizard step; recipients without a non-empty name are
// dropped from decisionMakers regardless of their other fields.
func BuildSubmission(d *Draft) (*Submission, error) {
	if !d.Complete() {
		return nil, domain.ErrDraftIncomplete
	}

	decisionMakers := make([]Recipient, 0, len(d.Recipients))
	for _, r := range d.Recipients {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		decisionMakers = append(decisionMakers, r)
	}

	categories, err := json.Marshal(d.Categories)
	if err != nil {
		return nil, fmt.Errorf("marshaling categories: %w", err)
	}
	makers, err := json.Marshal(decisionMakers)
	if err != nil {
		return nil, fmt.Errorf("marshaling decision makers: %w", err)
	}
	details, err := json.Marshal(domain.PetitionDetails{
		Problem:  d.Form.Problem,
		Solution: d.Form.Solution,
		VideoURL: d.Form.VideoURL,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling petition details: %w", err)
	}
	starter, err := json.Marshal(domain.PetitionStarter{
		Name:                  d.Form.Starter.Name,
		Age:                   d.Form.Starter.Age,
		Email:                 d.Form.Starter.Email,
		Mobile:                d.Form.Starter.Mobile,
		Location:              d.Form.Starter.Location,
		Comment:               d.Form.Starter.Comment,
		AadharNumber:          d.Form.Starter.AadharNumber,
		PANNumber:             d.Form.Starter.PANNumber,
		VoterNumber:           d.Form.Starter.VoterNumber,
		Pincode:               d.Form.Starter.Pincode,
		MPConstituencyNumber:  d.Form.Starter.MPConstituencyNumber,
		MLAConstituencyNumber: d.Form.Starter.MLAConstituencyNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling petition starter: %w", err)
	}
	requirements, err := json.Marshal(d.SigningRequirements)
	if err != nil {
		return nil, fmt.Errorf("marshaling signing requirements: %w", err)
	}

	return &Submission{
		Fields: map[string]string{
			PartTitle:               strings.TrimSpace(d.Form.Title),
			PartCountry:             strings.TrimSpace(d.Form.Country),
			PartCategories:          string(categories),
			PartDecisionMakers:      string(makers),
			PartPetitionDetails:     string(details),
			PartPetitionStarter:     string(starter),
			PartSigningRequirements: string(requirements),
		},
	}, nil
}
