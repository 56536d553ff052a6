package listing

import (
	"strconv"
	"strings"
	"time"

	domlisting "github.com/propfind-io/propfind/internal/domain/listing"
)

// Hash field names. Flat strings so every attribute can carry an FT
// index entry.
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldStatus      = "status"
	fieldType        = "type"
	fieldSubtype     = "subtype"
	fieldCategory    = "category"
	fieldPrice       = "price"
	fieldArea        = "area"
	fieldCity        = "city"
	fieldDeveloper   = "developer"
	fieldBeds        = "beds"
	fieldBaths       = "baths"
	fieldSqft        = "sqft"
	fieldFurnished   = "furnished"
	fieldParking     = "parking"
	fieldPropertyAge = "property_age"
	fieldCompletion  = "completion"
	fieldFeatures    = "features"
	fieldFeatured    = "featured"
	fieldCreatedAt   = "created_at"
)

// buildHashFields converts a domain Listing into a flat map for HSET.
// Optional attributes that are unset are omitted entirely, so parsing
// can restore the present/absent distinction.
func buildHashFields(l *domlisting.Listing) map[string]string {
	m := map[string]string{
		fieldTitle:       l.Title,
		fieldDescription: l.Description,
		fieldStatus:      string(l.Status),
		fieldType:        l.Type,
		fieldSubtype:     l.Subtype,
		fieldCategory:    l.Category,
		fieldPrice:       strconv.FormatFloat(l.Price, 'f', -1, 64),
		fieldArea:        l.Area,
		fieldCity:        l.City,
		fieldDeveloper:   l.Developer,
		fieldParking:     l.Parking,
		fieldPropertyAge: l.PropertyAge,
		fieldCompletion:  l.Completion,
		fieldFeatures:    strings.Join(l.Features, ","),
		fieldFeatured:    boolField(l.Featured),
	}
	if l.Beds != nil {
		m[fieldBeds] = strconv.Itoa(*l.Beds)
	}
	if l.Baths != nil {
		m[fieldBaths] = strconv.Itoa(*l.Baths)
	}
	if l.Sqft != nil {
		m[fieldSqft] = strconv.FormatFloat(*l.Sqft, 'f', -1, 64)
	}
	if l.Furnished != nil {
		m[fieldFurnished] = boolField(*l.Furnished)
	}
	if !l.CreatedAt.IsZero() {
		m[fieldCreatedAt] = strconv.FormatInt(l.CreatedAt.UnixMilli(), 10)
	}
	return m
}

// parseHashFields converts a flat hash map back into a domain Listing.
// Unparseable optional fields stay absent rather than failing the record.
func parseHashFields(id string, m map[string]string) domlisting.Listing {
	l := domlisting.Listing{
		ID:          id,
		Title:       m[fieldTitle],
		Description: m[fieldDescription],
		Status:      domlisting.Status(m[fieldStatus]),
		Type:        m[fieldType],
		Subtype:     m[fieldSubtype],
		Category:    m[fieldCategory],
		Area:        m[fieldArea],
		City:        m[fieldCity],
		Developer:   m[fieldDeveloper],
		Parking:     m[fieldParking],
		PropertyAge: m[fieldPropertyAge],
		Completion:  m[fieldCompletion],
		Featured:    m[fieldFeatured] == "1",
	}

	if f, err := strconv.ParseFloat(m[fieldPrice], 64); err == nil {
		l.Price = f
	}
	if raw, ok := m[fieldBeds]; ok {
		if n, err := strconv.Atoi(raw); err == nil {
			l.Beds = &n
		}
	}
	if raw, ok := m[fieldBaths]; ok {
		if n, err := strconv.Atoi(raw); err == nil {
			l.Baths = &n
		}
	}
	if raw, ok := m[fieldSqft]; ok {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			l.Sqft = &f
		}
	}
	if raw, ok := m[fieldFurnished]; ok {
		furnished := raw == "1"
		l.Furnished = &furnished
	}
	if raw := m[fieldFeatures]; raw != "" {
		parts := strings.Split(raw, ",")
		features := make([]string, 0, len(parts))
		for _, p := range parts {
			if tag := strings.TrimSpace(p); tag != "" {
				features = append(features, tag)
			}
		}
		l.Features = features
	}
	if ms, err := strconv.ParseInt(m[fieldCreatedAt], 10, 64); err == nil && ms > 0 {
		l.CreatedAt = time.UnixMilli(ms).UTC()
	}

	return l
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
