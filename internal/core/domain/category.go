package domain

import "fmt"

const unknownDescription = "Unknown"

// Category groups services by purpose.
// The zero value means no category has been chosen.
type Category string

// Available categories, in display order.
const (
	CategoryEmergency     Category = "Emergency"
	CategoryWomenSafety   Category = "Women Safety"
	CategoryPublicSafety  Category = "Public Safety"
	CategoryDocuments     Category = "Documents"
	CategoryEnvironmental Category = "Environmental"
	CategoryTraffic       Category = "Traffic"
)

var allCategories = []Category{
	CategoryEmergency,
	CategoryWomenSafety,
	CategoryPublicSafety,
	CategoryDocuments,
	CategoryEnvironmental,
	CategoryTraffic,
}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// ParseCategory converts a category label into a Category.
// The empty string yields the zero Category. Matching is case-sensitive.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", nil
	}
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryEmergency, CategoryWomenSafety, CategoryPublicSafety,
		CategoryDocuments, CategoryEnvironmental, CategoryTraffic:
		return true
	default:
		return false
	}
}

// IsZero reports whether no category is set.
func (c Category) IsZero() bool {
	return c == ""
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Heading returns the title shown on the category tile.
func (c Category) Heading() string {
	switch c {
	case CategoryEmergency:
		return "Emergency Services"
	case CategoryWomenSafety:
		return "Women and Child Safety"
	case CategoryPublicSafety:
		return "Public Safety and Civic Issues"
	case CategoryDocuments:
		return "Documents and Certificates"
	case CategoryEnvironmental:
		return "Environmental and Pollution Complaints"
	case CategoryTraffic:
		return "Traffic and Transport"
	default:
		return unknownDescription
	}
}

// Description returns a one-line summary of what the category covers.
func (c Category) Description() string {
	switch c {
	case CategoryEmergency:
		return "Police, Fire, Ambulance and Disaster relief."
	case CategoryWomenSafety:
		return "Helplines, domestic violence and child support."
	case CategoryPublicSafety:
		return "Road safety, streetlights and waste."
	case CategoryDocuments:
		return "Certificates and online applications."
	case CategoryEnvironmental:
		return "Noise, Air, Water pollution and waste burning."
	case CategoryTraffic:
		return "Traffic police, challans and transport offices."
	default:
		return unknownDescription
	}
}
