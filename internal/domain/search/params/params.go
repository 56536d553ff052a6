// Package params translates raw query-string parameters into the typed
// filter, sort, and page configuration.
package params

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/propfind-io/propfind/internal/domain/listing"
	"github.com/propfind-io/propfind/internal/domain/search/filter"
	"github.com/propfind-io/propfind/internal/domain/search/page"
	"github.com/propfind-io/propfind/internal/domain/search/sort"
)

// Parser normalizes externally supplied string parameters. Malformed
// optional values degrade to "no filter on this dimension"; nothing here
// returns an error. Unknown keys are ignored.
type Parser struct {
	defaultLimit int
	maxLimit     int
}

// NewParser creates a Parser with the given pagination limits.
// Non-positive values fall back to the package defaults.
func NewParser(defaultLimit, maxLimit int) *Parser {
	if defaultLimit <= 0 {
		defaultLimit = page.DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = page.MaxLimit
	}
	return &Parser{defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Parse builds the search configuration from URL query values.
func (p *Parser) Parse(values url.Values) (filter.Filter, sort.Key, page.Request) {
	b := filter.NewBuilder()

	// Absent action means the public "buy" listing; an unrecognized
	// value leaves status unconstrained.
	switch values.Get("action") {
	case "", "buy":
		b.Status(listing.StatusSale)
	case "rent":
		b.Status(listing.StatusRent)
	}

	if v := values.Get("type"); v != "" {
		b.Type(v)
	}
	if v := values.Get("area"); v != "" {
		b.Area(v)
	}
	if v := values.Get("developer"); v != "" {
		b.Developer(v)
	}
	if f, ok := parseFloat(values.Get("minPrice")); ok {
		b.MinPrice(f)
	}
	if f, ok := parseFloat(values.Get("maxPrice")); ok {
		b.MaxPrice(f)
	}
	if n, ok := parseInt(values.Get("beds")); ok {
		b.Beds(n)
	}
	if n, ok := parseInt(values.Get("baths")); ok {
		b.Baths(n)
	}
	if f, ok := parseFloat(values.Get("minSqft")); ok {
		b.MinSqft(f)
	}
	if f, ok := parseFloat(values.Get("maxSqft")); ok {
		b.MaxSqft(f)
	}
	if values.Get("furnished") == "true" {
		b.Furnished()
	}
	if v := values.Get("parking"); v != "" {
		b.Parking(v)
	}
	if v := values.Get("propertyAge"); v != "" {
		b.PropertyAge(v)
	}
	if v := values.Get("completion"); v != "" {
		b.Completion(v)
	}
	if v := values.Get("subtype"); v != "" {
		b.Subtype(v)
	}
	if v := values.Get("category"); v != "" {
		b.Category(v)
	}
	if v := values.Get("search"); v != "" {
		b.Search(v)
	}
	if tags := splitFeatures(values.Get("features")); len(tags) > 0 {
		b.Features(tags...)
	}

	key := sort.Key(values.Get("sortBy"))
	if !key.IsValid() {
		key = sort.Default
	}

	return b.Build(), key, p.pageRequest(values)
}

func (p *Parser) pageRequest(values url.Values) page.Request {
	pageNum := 1
	if n, ok := parseInt(values.Get("page")); ok {
		pageNum = n
	}
	limit := p.defaultLimit
	if n, ok := parseInt(values.Get("limit")); ok && n > 0 {
		limit = n
	}
	if limit > p.maxLimit {
		limit = p.maxLimit
	}
	return page.NewRequest(pageNum, limit)
}

// splitFeatures splits a comma-joined tag list, trimming whitespace and
// dropping empty entries.
func splitFeatures(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloat(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
