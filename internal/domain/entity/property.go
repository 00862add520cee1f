// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category identifies which marketplace a listing belongs to.
type Category string

const (
	// CategoryRental is a rental listing.
	CategoryRental Category = "rental"
	// CategoryResale is a resale listing.
	CategoryResale Category = "resale"

	// CategoryAny is the sentinel meaning "no category constraint" in criteria.
	CategoryAny = "any"
)

// Property is the canonical listing shape consumed by the matching engine.
// Rental and resale listings are normalized into this single form at the
// ingestion boundary; the engine never branches on the listing category to
// decide which field holds the price.
type Property struct {
	ID              uuid.UUID `json:"id"`               // The unique identifier of the listing.
	Title           string    `json:"title"`            // Listing title (falls back to building/society name at ingestion).
	Category        Category  `json:"category"`         // rental or resale.
	Approved        bool      `json:"approved"`         // Set by admin action; only approved listings are matchable.
	Location        string    `json:"location"`         // Free-text location, used for substring matching.
	Zone            string    `json:"zone"`             // Structured zone code (e.g. "west").
	BuildingSociety string    `json:"building_society"` // Building or society name.
	PriceNumeric    float64   `json:"price_numeric"`    // Price normalized to the base currency unit.
	Area            float64   `json:"area"`             // Floor area in square feet.
	PropertyType    string    `json:"property_type"`    // Structured type code, e.g. "2BHK".
	Bedrooms        int       `json:"bedrooms"`         // Bedroom count.
	Furnishing      string    `json:"furnishing"`       // Furnishing level, e.g. "semi-furnished".
	Amenities       []string  `json:"amenities"`        // Normalized amenity tag set.
	Description     string    `json:"description"`      // Free-text description.
	Verified        bool      `json:"verified"`         // Verification flag.
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SearchText returns the concatenated free text a keyword is matched against:
// title, description and amenity tags, lower-cased once.
func (p *Property) SearchText() string {
	parts := make([]string, 0, 2+len(p.Amenities))
	parts = append(parts, p.Title, p.Description)
	parts = append(parts, p.Amenities...)

	return strings.ToLower(strings.Join(parts, " "))
}

// HasAmenity reports whether the property's amenity set contains the given
// tag, case-insensitively.
func (p *Property) HasAmenity(tag string) bool {
	needle := strings.ToLower(strings.TrimSpace(tag))
	for _, amenity := range p.Amenities {
		if strings.Contains(strings.ToLower(amenity), needle) {
			return true
		}
	}

	return false
}

// ParsePrice converts a display price string into the base currency unit.
// Listings carry prices like "₹45,000", "1.2 Cr", "85 Lakh" or "30K"; anything
// unparseable normalizes to 0 so it fails any range with a positive minimum.
func ParsePrice(price string) float64 {
	if price == "" {
		return 0
	}

	var digits strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			digits.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0
	}

	switch {
	case strings.Contains(price, "Cr"):
		return value * 10_000_000
	case strings.Contains(price, "Lakh"):
		return value * 100_000
	case strings.Contains(price, "K"):
		return value * 1_000
	}

	return value
}

// ParseAmenities splits a comma-joined amenity string into a normalized tag
// set, trimming whitespace and dropping empty entries.
func ParseAmenities(raw string) []string {
	if strings.TrimSpace(raw) == "" {
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
