package wizard

import (
	"strconv"
	"strings"
)

// Step is one linearly-ordered stage of the creation wizard.
type Step int

const (
	StepTitle      Step = 1 // title + categories
	StepRecipients Step = 2 // decision makers + country
	StepDetails    Step = 3 // problem / solution / media
	StepStarter    Step = 4 // starter identity + verification + submission
)

// StepValid reports whether the given step's validity predicate holds. The
// predicate is a pure function of the draft; it never errors.
func StepValid(d *Draft, s Step) bool {
	return len(StepErrors(d, s)) == 0
}

// StepErrors returns the per-field errors blocking a step, keyed by field
// identifier (recipient fields are keyed "recipients[i].<field>"). An empty
// map means the step is valid and the Next control may be enabled.
func StepErrors(d *Draft, s Step) map[string]string {
	errs := make(map[string]string)

	switch s {
	case StepTitle:
		collect(errs, FieldTitle, d.Form.Title)
		if len(d.Categories) == 0 {
			errs["categories"] = "Select at least one category"
		}

	case StepRecipients:
		collect(errs, FieldCountry, d.Form.Country)
		validName := false
		for i, r := range d.Recipients {
			if res := ValidateField(FieldRecipientName, r.Name); res.Valid && strings.TrimSpace(r.Name) != "" {
				validName = true
			}
			// Optional fields only block the step when present but malformed.
			if strings.TrimSpace(r.Email) != "" {
				if res := ValidateField(FieldRecipientEmail, r.Email); !res.Valid {
					errs[recipientKey(i, FieldRecipientEmail)] = res.Error
				}
			}
			if strings.TrimSpace(r.Phone) != "" {
				if res := ValidateField(FieldRecipientPhone, r.Phone); !res.Valid {
					errs[recipientKey(i, FieldRecipientPhone)] = res.Error
				}
			}
			if strings.TrimSpace(r.Organization) != "" {
				if res := ValidateField(FieldRecipientOrganization, r.Organization); !res.Valid {
					errs[recipientKey(i, FieldRecipientOrganization)] = res.Error
				}
			}
		}
		if !validName {
			errs["recipients"] = "Add at least one decision maker with a valid name"
		}

	case StepDetails:
		collect(errs, FieldProblem, d.Form.Problem)
		collect(errs, FieldSolution, d.Form.Solution)
		if strings.TrimSpace(d.Form.VideoURL) != "" {
			collect(errs, FieldVideoURL, d.Form.VideoURL)
		}

	case StepStarter:
		for _, field := range starterFields {
			if res := ValidateField(field, starterField(d.Form.Starter, field)); !res.Valid {
				errs["starter."+field] = res.Error
			}
		}
		if !d.Verified {
			errs["verification"] = "Complete phone verification before submitting"
		}
	}

	return errs
}

func collect(errs map[string]string, field, value string) {
	if res := ValidateField(field, value); !res.Valid {
		errs[field] = res.Error
	}
}

func recipientKey(i int, field string) string {
	return "recipients[" + strconv.Itoa(i) + "]." + field
}

// Next advances the draft to the following step if the current step's
// predicate holds. It reports whether the transition happened. Data entered
// on later steps is untouched either way.
func (d *Draft) Next() bool {
	if d.Step >= StepStarter {
		return false
	}
	if !StepValid(d, d.Step) {
		return false
	}
	d.Step++
	return true
}

// Prev moves back one step. Always allowed except from step 1.
func (d *Draft) Prev() bool {
	if d.Step <= StepTitle {
		return false
	}
	d.Step--
	return true
}

// Complete reports whether every step of the wizard passes, which is the
// precondition for assembling a submission.
func (d *Draft) Complete() bool {
	for s := StepTitle; s <= StepStarter; s++ {
		if !StepValid(d, s) {
			return false
		}
	}
	return true
}
