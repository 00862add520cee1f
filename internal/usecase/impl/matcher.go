package impl

import (
	"strconv"
	"strings"

	"estatex/internal/domain/entity"
)

// Matches reports whether a listing satisfies every constrained dimension of
// the criteria. Unconstrained dimensions (empty strings, the "any" sentinel,
// zero numeric bounds) always pass, so empty criteria match everything.
func Matches(property *entity.Property, criteria *entity.AlertCriteria) bool {
	if !matchChoice(string(property.Category), criteria.Category) {
		return false
	}
	if !matchChoice(property.PropertyType, criteria.PropertyType) {
		return false
	}
	if !matchChoice(property.Zone, criteria.Zone) {
		return false
	}
	if !matchLocation(property.Location, criteria.Location) {
		return false
	}
	if !matchRange(property.PriceNumeric, criteria.MinPrice, criteria.MaxPrice) {
		return false
	}
	if !matchRange(property.Area, criteria.MinArea, criteria.MaxArea) {
		return false
	}
	if !matchBedrooms(property.Bedrooms, criteria.Bedrooms) {
		return false
	}
	if !matchChoice(property.Furnishing, criteria.Furnishing) {
		return false
	}
	if !matchKeywords(property, criteria.Keywords) {
		return false
	}
	if !matchAmenities(property, criteria.Amenities) {
		return false
	}
	if criteria.VerifiedOnly && !property.Verified {
		return false
	}

	return true
}

// MatchReason names the criteria dimensions that were actually constrained,
// for display in the notification. Empty criteria yield "new listing".
func MatchReason(criteria *entity.AlertCriteria) string {
	var parts []string

	if constrained(criteria.Category) {
		parts = append(parts, "category")
	}
	if constrained(criteria.PropertyType) {
		parts = append(parts, "property type")
	}
	if constrained(criteria.Zone) {
		parts = append(parts, "zone")
	}
	if strings.TrimSpace(criteria.Location) != "" {
		parts = append(parts, "location")
	}
	if criteria.MinPrice > 0 || criteria.MaxPrice > 0 {
		parts = append(parts, "price range")
	}
	if criteria.MinArea > 0 || criteria.MaxArea > 0 {
		parts = append(parts, "area")
	}
	if constrained(criteria.Bedrooms) {
		parts = append(parts, "bedrooms")
	}
	if constrained(criteria.Furnishing) {
		parts = append(parts, "furnishing")
	}
	if strings.TrimSpace(criteria.Keywords) != "" {
		parts = append(parts, "keywords")
	}
	if len(criteria.Amenities) > 0 {
		parts = append(parts, "amenities")
	}
	if criteria.VerifiedOnly {
		parts = append(parts, "verified")
	}

	if len(parts) == 0 {
		return "new listing"
	}

	return "matched on " + strings.Join(parts, ", ")
}

func constrained(value string) bool {
	trimmed := strings.TrimSpace(value)

	return trimmed != "" && !strings.EqualFold(trimmed, entity.CategoryAny)
}

func matchChoice(got, want string) bool {
	if !constrained(want) {
		return true
	}

	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}

func matchLocation(got, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return true
	}

	return strings.Contains(strings.ToLower(got), strings.ToLower(want))
}

func matchRange(value, min, max float64) bool {
	if min > 0 && value < min {
		return false
	}
	if max > 0 && value > max {
		return false
	}

	return true
}

// matchBedrooms compares the listing's bedroom count against the criteria
// string. A trailing "+" means at-or-above, e.g. "3+" admits 3, 4, 5 rooms.
// An unparseable criteria value never matches.
func matchBedrooms(got int, want string) bool {
	if !constrained(want) {
		return true
	}

	want = strings.TrimSpace(want)
	atLeast := strings.HasSuffix(want, "+")
	want = strings.TrimSuffix(want, "+")

	n, err := strconv.Atoi(want)
	if err != nil {
		return false
	}

	if atLeast {
		return got >= n
	}

	return got == n
}

// matchKeywords passes when any comma-separated keyword appears in the
// listing's searchable text.
func matchKeywords(property *entity.Property, keywords string) bool {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return true
	}

	haystack := property.SearchText()
	for _, keyword := range strings.Split(keywords, ",") {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(haystack, keyword) {
			return true
		}
	}

	return false
}

// matchAmenities passes only when the listing carries every required amenity.
func matchAmenities(property *entity.Property, amenities []string) bool {
	for _, amenity := range amenities {
		amenity = strings.TrimSpace(amenity)
		if amenity == "" {
			continue
		}
		if !property.HasAmenity(amenity) {
			return false
		}
	}

	return true
}
