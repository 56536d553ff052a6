package propfind

import (
	"time"

	"github.com/propfind-io/propfind/internal/domain/listing"
)

// Listing is one property record.
// Optional attributes are pointers so "unknown" stays distinct from zero.
type Listing struct {
	ID          string
	Title       string
	Description string

	Status   string // "sale" or "rent"
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

// SearchPage is one page of search results.
type SearchPage struct {
	Items      []Listing
	Total      int
	Page       int
	Limit      int
	TotalPages int
	HasMore    bool
}

func toDomainListing(l *Listing) listing.Listing {
	return listing.Listing{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Status:      listing.Status(l.Status),
		Type:        l.Type,
		Subtype:     l.Subtype,
		Category:    l.Category,
		Price:       l.Price,
		Area:        l.Area,
		City:        l.City,
		Developer:   l.Developer,
		Beds:        l.Beds,
		Baths:       l.Baths,
		Sqft:        l.Sqft,
		Furnished:   l.Furnished,
		Parking:     l.Parking,
		PropertyAge: l.PropertyAge,
		Completion:  l.Completion,
		Features:    l.Features,
		Featured:    l.Featured,
		CreatedAt:   l.CreatedAt,
	}
}

func fromDomainListing(l *listing.Listing) Listing {
	return Listing{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Status:      string(l.Status),
		Type:        l.Type,
		Subtype:     l.Subtype,
		Category:    l.Category,
		Price:       l.Price,
		Area:        l.Area,
		City:        l.City,
		Developer:   l.Developer,
		Beds:        l.Beds,
		Baths:       l.Baths,
		Sqft:        l.Sqft,
		Furnished:   l.Furnished,
		Parking:     l.Parking,
		PropertyAge: l.PropertyAge,
		Completion:  l.Completion,
		Features:    l.Features,
		Featured:    l.Featured,
		CreatedAt:   l.CreatedAt,
	}
}
