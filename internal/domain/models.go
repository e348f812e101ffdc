package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account on the platform.
type User struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	Phone         string    `db:"phone" json:"phone"`
	PasswordHash  string    `db:"password_hash" json:"-"`
	FullName      string    `db:"full_name" json:"full_name"`
	Location      string    `db:"location" json:"location"`
	Role          UserRole  `db:"role" json:"role"`
	PhoneVerified bool      `db:"phone_verified" json:"phone_verified"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Category represents a petition topic selectable during creation.
type Category struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug"`
	Name      string    `db:"name" json:"name"`
	Icon      string    `db:"icon" json:"icon"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DecisionMaker is a contact a petition is addressed to.
type DecisionMaker struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// PetitionDetails holds the narrative body of a petition.
type PetitionDetails struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	VideoURL string `json:"videoUrl"`
}

// PetitionStarter identifies the person starting a petition, including the
// identity fields collected on the final wizard step.
type PetitionStarter struct {
	Name                  string `json:"name"`
	Age                   string `json:"age"`
	Email                 string `json:"email"`
	Mobile                string `json:"mobile"`
	Location              string `json:"location"`
	Comment               string `json:"comment"`
	AadharNumber          string `json:"aadharNumber"`
	PANNumber             string `json:"panNumber"`
	VoterNumber           string `json:"voterNumber"`
	Pincode               string `json:"pincode"`
	MPConstituencyNumber  string `json:"mpConstituencyNumber"`
	MLAConstituencyNumber string `json:"mlaConstituencyNumber"`
}

// ConstituencyRequirement restricts who may sign by constituency.
// An empty AllowedConstituency means any constituency is accepted.
type ConstituencyRequirement struct {
	Required            bool   `json:"required"`
	AllowedConstituency string `json:"allowedConstituency,omitempty"`
}

// AadharRequirement requires signers to have an Aadhar number on file.
type AadharRequirement struct {
	Required bool `json:"required"`
}

// SigningRequirements are optional constraints a signer must satisfy.
// They are petition metadata, independent of the starter's own identity fields.
type SigningRequirements struct {
	Constituency ConstituencyRequirement `json:"constituency"`
	Aadhar       AadharRequirement       `json:"aadhar"`
}

// Petition represents a published petition.
type Petition struct {
	ID                  uuid.UUID       `db:"id" json:"id"`
	Title               string          `db:"title" json:"title"`
	Country             string          `db:"country" json:"country"`
	Categories          json.RawMessage `db:"categories" json:"categories"`
	DecisionMakers      json.RawMessage `db:"decision_makers" json:"decision_makers"`
	Details             json.RawMessage `db:"details" json:"details"`
	Starter             json.RawMessage `db:"starter" json:"starter"`
	SigningRequirements json.RawMessage `db:"signing_requirements" json:"signing_requirements"`
	ImageKey            string          `db:"image_key" json:"image_key,omitempty"`
	ImageURL            string          `db:"-" json:"image_url,omitempty"`
	SignatureCount      int             `db:"signature_count" json:"signature_count"`
	Status              PetitionStatus  `db:"status" json:"status"`
	CreatedBy           uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updated_at"`
}

// Signature records one user signing a petition.
type Signature struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PetitionID   uuid.UUID `db:"petition_id" json:"petition_id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	SignerName   string    `db:"signer_name" json:"signer_name"`
	Constituency string    `db:"constituency" json:"constituency"`
	Comment      string    `db:"comment" json:"comment"`
	SignedAt     time.Time `db:"signed_at" json:"signed_at"`
}

// Comment is a user comment on a petition.
type Comment struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PetitionID uuid.UUID `db:"petition_id" json:"petition_id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	AuthorName string    `db:"author_name" json:"author_name"`
	Body       string    `db:"body" json:"body"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// DraftRecord is the persisted snapshot of an in-progress petition wizard,
// keyed by the owning user. Payload is the serialized wizard draft.
type DraftRecord struct {
	UserID  uuid.UUID       `db:"user_id" json:"user_id"`
	Payload json.RawMessage `db:"payload" json:"payload"`
	SavedAt time.Time       `db:"saved_at" json:"saved_at"`
}

// OTPChallenge is a pending phone verification code.
type OTPChallenge struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Phone     string    `db:"phone" json:"phone"`
	CodeHash  string    `db:"code_hash" json:"-"`
	Attempts  int       `db:"attempts" json:"attempts"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
