package listing

import (
	"fmt"
	"time"
)

// Status is the listing action: for sale or for rent.
type Status string

// Listing status constants.
const (
	StatusSale Status = "sale"
	StatusRent Status = "rent"
)

// IsValid checks if the status is one of the supported values.
func (s Status) IsValid() bool {
	return s == StatusSale || s == StatusRent
}

// Listing is one property record as stored in the catalog.
// Optional attributes are pointers so "unknown" is distinct from zero:
// a record with Beds == nil has an unknown bed count, not zero beds.
type Listing struct {
	ID          string
	Title       string
	Description string

	Status   Status
	Type     string
	Subtype  string
	Category string

	Price     float64
	Area      string
	City      string
	Developer string

	Beds      *int
	Baths     *int
	Sqft      *float64
	Furnished *bool

	Parking     string
	PropertyAge string
	Completion  string

	Features []string
	Featured bool

	CreatedAt time.Time
}

// HasFeature reports whether the listing carries the given feature tag.
func (l *Listing) HasFeature(tag string) bool {
	for _, f := range l.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// Validate checks structural invariants: identifier present, known status,
// and non-negative numeric attributes where set.
func (l *Listing) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("listing id is required")
	}
	if !l.Status.IsValid() {
		return fmt.Errorf("unknown status %q", l.Status)
	}
	if l.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if l.Beds != nil && *l.Beds < 0 {
		return fmt.Errorf("beds must not be negative")
	}
	if l.Baths != nil && *l.Baths < 0 {
		return fmt.Errorf("baths must not be negative")
	}
	if l.Sqft != nil && *l.Sqft < 0 {
		return fmt.Errorf("sqft must not be negative")
	}
	return nil
}
