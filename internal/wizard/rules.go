package wizard

import (
	"regexp"
	"strings"
)

// RequiredMessage is the fixed sentinel returned whenever a required field is
// empty. Callers branch on this exact string to distinguish "required-missing"
// from a pattern failure, so per-field messages are never used for that case.
const RequiredMessage = "This field is required"

var (
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobilePattern  = regexp.MustCompile(`^[6-9]\d{9}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	voterPattern   = regexp.MustCompile(`^[A-Z]{3}\d{7}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	agePattern     = regexp.MustCompile(`^\d{1,3}$`)
	urlPattern     = regexp.MustCompile(`^https?://[^\s]+$`)
	namePattern    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z .'-]*$`)
	digitsPattern  = regexp.MustCompile(`^\d+$`)
	nonDigits      = regexp.MustCompile(`\D`)
)

// FieldResult is the outcome of validating a single field value.
type FieldResult struct {
	Valid bool   `json:"isValid"`
	Error string `json:"error,omitempty"`
}

// Rule is the declarative validation contract for one field. When Custom is
// set it alone determines the result; MinLength/MaxLength/Pattern are ignored.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Custom    func(value string) FieldResult
	Message   string
	Example   string
}

// Field identifiers for the closed rule registry. Every FormState field has a
// rule here or is explicitly exempt (country sub-fields carry no free text).
const (
	FieldTitle    = "title"
	FieldCountry  = "country"
	FieldProblem  = "problem"
	FieldSolution = "solution"
	FieldVideoURL = "videoUrl"

	FieldRecipientName         = "recipientName"
	FieldRecipientOrganization = "recipientOrganization"
	FieldRecipientEmail        = "recipientEmail"
	FieldRecipientPhone        = "recipientPhone"

	FieldCategoryName = "categoryName"

	FieldStarterName     = "name"
	FieldStarterAge      = "age"
	FieldStarterEmail    = "email"
	FieldStarterMobile   = "mobile"
	FieldStarterLocation = "location"
	FieldStarterComment  = "comment"
	FieldAadharNumber    = "aadharNumber"
	FieldPANNumber       = "panNumber"
	FieldVoterNumber     = "voterNumber"
	FieldPincode         = "pincode"
	FieldMPConstituency  = "mpConstituencyNumber"
	FieldMLAConstituency = "mlaConstituencyNumber"
)

var rules = map[string]Rule{
	FieldTitle: {
		Required: true, MinLength: 10, MaxLength: 150,
		Message: "Title must be between 10 and 150 characters",
		Example: "Stop Illegal Deforestation Now",
	},
	FieldCountry: {
		Required: true,
		Message:  "Select the country this petition applies to",
		Example:  "India",
	},
	FieldProblem: {
		Required: true, MinLength: 50, MaxLength: 5000,
		Message: "Describe the problem in at least 50 characters",
		Example: "Over 2,000 acres of protected forest have been cleared since...",
	},
	FieldSolution: {
		Required: true, MinLength: 50, MaxLength: 5000,
		Message: "Describe the solution in at least 50 characters",
		Example: "The forest department must enforce the 1980 Conservation Act by...",
	},
	FieldVideoURL: {
		Pattern: urlPattern,
		Message: "Enter a valid video link starting with http:// or https://",
		Example: "https://youtube.com/watch?v=xyz",
	},

	FieldRecipientName: {
		Required: true, MinLength: 2, MaxLength: 100, Pattern: namePattern,
		Message: "Enter the decision maker's full name",
		Example: "Smt. Priya Sharma",
	},
	FieldRecipientOrganization: {
		MaxLength: 150,
		Message:   "Organization name is too long",
		Example:   "Ministry of Environment",
	},
	FieldRecipientEmail: {
		Pattern: emailPattern,
		Message: "Enter a valid email address",
		Example: "office@example.gov.in",
	},
	FieldRecipientPhone: {
		Pattern: mobilePattern,
		Message: "Enter a valid 10-digit mobile number",
		Example: "9876543210",
	},

	FieldCategoryName: {
		Required: true, MinLength: 3, MaxLength: 15,
		Message: "Category name must be 3-15 characters",
		Example: "Environment",
	},

	FieldStarterName: {
		Required: true, MinLength: 2, MaxLength: 100, Pattern: namePattern,
		Message: "Enter your full name",
		Example: "Ravi Kumar",
	},
	FieldStarterAge: {
		Required: true, Pattern: agePattern,
		Message: "Enter a valid age",
		Example: "34",
	},
	FieldStarterEmail: {
		Required: true, Pattern: emailPattern,
		Message: "Enter a valid email address",
		Example: "ravi@example.com",
	},
	FieldStarterMobile: {
		Required: true, Pattern: mobilePattern,
		Message: "Enter a valid 10-digit mobile number",
		Example: "9876543210",
	},
	FieldStarterLocation: {
		Required: true, MaxLength: 150,
		Message: "Enter your city or district",
		Example: "Bengaluru, Karnataka",
	},
	FieldStarterComment: {
		MaxLength: 500,
		Message:   "Comment must be under 500 characters",
		Example:   "This affects my village directly.",
	},
	FieldAadharNumber: {
		Required: true,
		Custom:   validateAadhar,
		Message:  "Enter a valid 12-digit Aadhar number",
		Example:  "2345 6789 0123",
	},
	FieldPANNumber: {
		Pattern: panPattern,
		Message: "Enter a valid PAN (5 letters, 4 digits, 1 letter)",
		Example: "ABCDE1234F",
	},
	FieldVoterNumber: {
		Pattern: voterPattern,
		Message: "Enter a valid Voter ID (3 letters followed by 7 digits)",
		Example: "ABC1234567",
	},
	FieldPincode: {
		Required: true, Pattern: pincodePattern,
		Message: "Enter a valid 6-digit pincode",
		Example: "560001",
	},
	FieldMPConstituency: {
		Pattern: digitsPattern, MaxLength: 3,
		Message: "Enter a valid MP constituency number",
		Example: "24",
	},
	FieldMLAConstituency: {
		Pattern: digitsPattern, MaxLength: 3,
		Message: "Enter a valid MLA constituency number",
		Example: "112",
	},
}

// Rules returns the closed field-to-rule registry.
func Rules() map[string]Rule {
	return rules
}

// LookupRule returns the rule for a field identifier.
func LookupRule(field string) (Rule, bool) {
	r, ok := rules[field]
	return r, ok
}

// NormalizeValue applies the per-field input normalization that happens before
// validation: PAN and Voter IDs are upper-cased; other fields are returned as
// typed. Aadhar digit-stripping lives inside its custom validator because the
// raw (formatted) value is what gets stored and redisplayed.
func NormalizeValue(field, value string) string {
	switch field {
	case FieldPANNumber, FieldVoterNumber:
		return strings.ToUpper(value)
	default:
		return value
	}
}

// ValidateField evaluates a single field value against its registered rule.
// The value is trimmed first. A required field with an empty trimmed value
// fails with RequiredMessage; an optional empty field passes without running
// any further checks. A custom validator fully overrides length and pattern.
func ValidateField(field, raw string) FieldResult {
	rule, ok := rules[field]
	if !ok {
		// Unregistered fields are explicitly exempt.
		return FieldResult{Valid: true}
	}

	value := strings.TrimSpace(NormalizeValue(field, raw))

	if value == "" {
		if rule.Required {
			return FieldResult{Valid: false, Error: RequiredMessage}
		}
		return FieldResult{Valid: true}
	}

	if rule.Custom != nil {
		return rule.Custom(value)
	}

	if rule.MinLength > 0 && len(value) < rule.MinLength {
		return FieldResult{Valid: false, Error: rule.Message}
	}
	if rule.MaxLength > 0 && len(value) > rule.MaxLength {
		return FieldResult{Valid: false, Error: rule.Message}
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return FieldResult{Valid: false, Error: rule.Message}
	}
	return FieldResult{Valid: true}
}

// validateAadhar checks the structural Aadhar format: after stripping all
// non-digit characters there must be exactly 12 digits and the first digit
// must be in 2-9.
func validateAadhar(value string) FieldResult {
	digits := nonDigits.ReplaceAllString(value, "")
	if len(digits) != 12 {
		return FieldResult{Valid: false, Error: "Aadhar number must be exactly 12 digits"}
	}
	if digits[0] < '2' || digits[0] > '9' {
		return FieldResult{Valid: false, Error: "Aadhar number cannot start with 0 or 1"}
	}
	return FieldResult{Valid: true}
}

// StripToDigits removes everything but digits; used for display formatting of
// phone and Aadhar values.
func StripToDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}
