package domain

// ServiceRecord is one entry in the government service catalogue.
type ServiceRecord struct {
	// ID is a stable identifier derived from the state and name.
	ID string `json:"id"`

	// Name is the human-readable display name.
	Name string `json:"name"`

	// Category groups the service by purpose.
	Category Category `json:"category"`

	// State is the region the service belongs to.
	State State `json:"state"`

	// URL is the official website. Not validated at construction.
	URL string `json:"url"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`
}

// Selection holds the optional filters a user has applied.
// A zero field means "do not filter on this attribute".
type Selection struct {
	State    State
	Category Category
}

// ParseSelection builds a Selection from user-supplied names.
// Empty names leave the corresponding filter unset.
func ParseSelection(state, category string) (Selection, error) {
	st, err := ParseState(state)
	if err != nil {
		return Selection{}, err
	}
	cat, err := ParseCategory(category)
	if err != nil {
		return Selection{}, err
	}
	return Selection{State: st, Category: cat}, nil
}

// IsEmpty reports whether the selection filters nothing.
func (s Selection) IsEmpty() bool {
	return s.State.IsZero() && s.Category.IsZero()
}

// Matches reports whether a record passes both filters.
// Comparison is exact equality.
func (s Selection) Matches(r *ServiceRecord) bool {
	if !s.State.IsZero() && r.State != s.State {
		return false
	}
	if !s.Category.IsZero() && r.Category != s.Category {
		return false
	}
	return true
}

// Helpline is a national quick-dial number.
type Helpline struct {
	Name   string   `json:"name"`
	Number string   `json:"number"`
	Group  Category `json:"group"`
}
