package domain

import "time"

// TravelPreferences holds the questionnaire answers an itinerary is generated
// from. Only Destination and Days drive generation; the rest are kept with the
// itinerary so a client can re-enter the questionnaire with its answers.
type TravelPreferences struct {
	Destination  string     `json:"destination"`
	Days         int        `json:"days"`
	Budget       string     `json:"budget,omitempty"`
	TravelStyles []string   `json:"travel_styles"`
	Travelers    int        `json:"travelers"`
	StartDate    *time.Time `json:"start_date,omitempty"` // nil when the traveller has not picked a date
}

// Clone returns a copy that shares no slices or pointers with the original.
func (p TravelPreferences) Clone() TravelPreferences {
	out := p
	if p.TravelStyles != nil {
		out.TravelStyles = append([]string(nil), p.TravelStyles...)
	}
	if p.StartDate != nil {
		sd := *p.StartDate
		out.StartDate = &sd
	}
	return out
}

// Option is a selectable questionnaire answer.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// BudgetRange is a selectable budget band with its display range.
type BudgetRange struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Range string `json:"range"`
}

// QuestionnaireOptions is the answer set a client renders for the
// preference questionnaire.
type QuestionnaireOptions struct {
	TravelStyles []Option      `json:"travel_styles"`
	BudgetRanges []BudgetRange `json:"budget_ranges"`
}
