package wizard

// Starter holds the petition starter's identity fields from the final step.
type Starter struct {
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

// FormState is the single source of truth for the wizard's free-text fields.
// It is only ever changed through Reduce.
type FormState struct {
	Title    string  `json:"title"`
	Country  string  `json:"country"`
	Problem  string  `json:"problem"`
	Solution string  `json:"solution"`
	VideoURL string  `json:"videoUrl"`
	Starter  Starter `json:"starter"`
}

// Recipient is one decision-maker contact entered on step 2.
type Recipient struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// ActionType enumerates the reducer actions.
type ActionType string

const (
	ActionSetField        ActionType = "setField"
	ActionAddRecipient    ActionType = "addRecipient"
	ActionRemoveRecipient ActionType = "removeRecipient"
	ActionSetRecipient    ActionType = "setRecipientField"
)

// Action describes a single state change. SetField is keyed by dotted field
// path ("title", "starter.email"); recipient actions carry an index and, for
// field updates, the recipient field name.
type Action struct {
	Type  ActionType `json:"type"`
	Path  string     `json:"path,omitempty"`
	Value string     `json:"value,omitempty"`
	Index int        `json:"index,omitempty"`
	Field string     `json:"field,omitempty"`
}

// Reduce applies an action and returns the new state. The input state is
// never mutated. Unknown paths and out-of-range indexes leave the state
// unchanged rather than erroring.
func Reduce(form FormState, recipients []Recipient, a Action) (FormState, []Recipient) {
	switch a.Type {
	case ActionSetField:
		return setField(form, a.Path, a.Value), recipients

	case ActionAddRecipient:
		out := make([]Recipient, len(recipients)+1)
		copy(out, recipients)
		return form, out

	case ActionRemoveRecipient:
		if a.Index < 0 || a.Index >= len(recipients) {
			return form, recipients
		}
		out := make([]Recipient, 0, len(recipients)-1)
		out = append(out, recipients[:a.Index]...)
		out = append(out, recipients[a.Index+1:]...)
		return form, out

	case ActionSetRecipient:
		if a.Index < 0 || a.Index >= len(recipients) {
			return form, recipients
		}
		out := make([]Recipient, len(recipients))
		copy(out, recipients)
		r := &out[a.Index]
		switch a.Field {
		case FieldRecipientName:
			r.Name = a.Value
		case FieldRecipientOrganization:
			r.Organization = a.Value
		case FieldRecipientEmail:
			r.Email = a.Value
		case FieldRecipientPhone:
			r.Phone = a.Value
		}
		return form, out
	}
	return form, recipients
}

func setField(f FormState, path, value string) FormState {
	switch path {
	case FieldTitle:
		f.Title = value
	case FieldCountry:
		f.Country = value
	case FieldProblem:
		f.Problem = value
	case FieldSolution:
		f.Solution = value
	case FieldVideoURL:
		f.VideoURL = value
	case "starter." + FieldStarterName:
		f.Starter.Name = value
	case "starter." + FieldStarterAge:
		f.Starter.Age = value
	case "starter." + FieldStarterEmail:
		f.Starter.Email = value
	case "starter." + FieldStarterMobile:
		f.Starter.Mobile = value
	case "starter." + FieldStarterLocation:
		f.Starter.Location = value
	case "starter." + FieldStarterComment:
		f.Starter.Comment = value
	case "starter." + FieldAadharNumber:
		f.Starter.AadharNumber = value
	case "starter." + FieldPANNumber:
		f.Starter.PANNumber = NormalizeValue(FieldPANNumber, value)
	case "starter." + FieldVoterNumber:
		f.Starter.VoterNumber = NormalizeValue(FieldVoterNumber, value)
	case "starter." + FieldPincode:
		f.Starter.Pincode = value
	case "starter." + FieldMPConstituency:
		f.Starter.MPConstituencyNumber = value
	case "starter." + FieldMLAConstituency:
		f.Starter.MLAConstituencyNumber = value
	}
	return f
}

// starterField maps a starter field identifier to its current value.
func starterField(s Starter, field string) string {
	switch field {
	case FieldStarterName:
		return s.Name
	case FieldStarterAge:
		return s.Age
	case FieldStarterEmail:
		return s.Email
	case FieldStarterMobile:
		return s.Mobile
	case FieldStarterLocation:
		return s.Location
	case FieldStarterComment:
		return s.Comment
	case FieldAadharNumber:
		return s.AadharNumber
	case FieldPANNumber:
		return s.PANNumber
	case FieldVoterNumber:
		return s.VoterNumber
	case FieldPincode:
		return s.Pincode
	case FieldMPConstituency:
		return s.MPConstituencyNumber
	case FieldMLAConstituency:
		return s.MLAConstituencyNumber
	}
	return ""
}

// starterFields lists every starter field checked on step 4, in display order.
var starterFields = []string{
	FieldStarterName,
	FieldStarterAge,
	FieldStarterEmail,
	FieldStarterMobile,
	FieldStarterLocation,
	FieldStarterComment,
	FieldAadharNumber,
	FieldPANNumber,
	FieldVoterNumber,
	FieldPincode,
	FieldMPConstituency,
	FieldMLAConstituency,
}
