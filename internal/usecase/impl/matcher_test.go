package impl

import (
	"testing"

	"estatex/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testProperty() *entity.Property {
	return &entity.Property{
		Title:           "Spacious 2BHK near metro",
		Category:        entity.CategoryRental,
		Approved:        true,
		Location:        "Andheri West, Mumbai",
		Zone:            "west",
		BuildingSociety: "Sunrise Heights",
		PriceNumeric:    45000,
		Area:            950,
		PropertyType:    "2BHK",
		Bedrooms:        2,
		Furnishing:      "semi-furnished",
		Amenities:       []string{"Gym", "Swimming Pool", "Parking"},
		Description:     "Bright corner flat with a sea view",
		Verified:        true,
	}
}

func TestMatches_EmptyCriteriaMatchesEverything(t *testing.T) {
	assert.True(t, Matches(testProperty(), &entity.AlertCriteria{}))
}

func TestMatches_AnySentinelIsUnconstrained(t *testing.T) {
	criteria := &entity.AlertCriteria{
		Category:     "any",
		PropertyType: "any",
		Zone:         "any",
		Bedrooms:     "any",
		Furnishing:   "any",
	}

	assert.True(t, Matches(testProperty(), criteria))
}

func TestMatches_Category(t *testing.T) {
	property := testProperty()

	assert.True(t, Matches(property, &entity.AlertCriteria{Category: "rental"}))
	assert.True(t, Matches(property, &entity.AlertCriteria{Category: "Rental"}))
	assert.False(t, Matches(property, &entity.AlertCriteria{Category: "resale"}))
}

func TestMatches_PropertyTypeAndZone(t *testing.T) {
	property := testProperty()

	assert.True(t, Matches(property, &entity.AlertCriteria{PropertyType: "2bhk", Zone: "West"}))
	assert.False(t, Matches(property, &entity.AlertCriteria{PropertyType: "3BHK"}))
	assert.False(t, Matches(property, &entity.AlertCriteria{Zone: "east"}))
}

func TestMatches_LocationSubstring(t *testing.T) {
	property := testProperty()

	assert.True(t, Matches(property, &entity.AlertCriteria{Location: "andheri"}))
	assert.True(t, Matches(property, &entity.AlertCriteria{Location: "Mumbai"}))
	assert.False(t, Matches(property, &entity.AlertCriteria{Location: "Bandra"}))
}

func TestMatches_PriceRange(t *testing.T) {
	property := testProperty() // 45000

	assert.True(t, Matches(property, &entity.AlertCriteria{MinPrice: 40000, MaxPrice: 50000}))
	assert.True(t, Matches(property, &entity.AlertCriteria{MinPrice: 45000, MaxPrice: 45000}), "range is inclusive on both ends")
	assert.False(t, Matches(property, &entity.AlertCriteria{MinPrice: 50000}))
	assert.False(t, Matches(property, &entity.AlertCriteria{MaxPrice: 40000}))
}

func TestMatches_InvertedRangeNeverMatches(t *testing.T) {
	property := testProperty()

	assert.False(t, Matches(property, &entity.AlertCriteria{MinPrice: 60000, MaxPrice: 30000}))
	assert.False(t, Matches(property, &entity.AlertCriteria{MinArea: 2000, MaxArea: 500}))
}

func TestMatches_AreaRange(t *testing.T) {
	property := testProperty() // 950 sqft

	assert.True(t, Matches(property, &entity.AlertCriteria{MinArea: 900, MaxArea: 1000}))
	assert.False(t, Matches(property, &entity.AlertCriteria{MinArea: 1000}))
	assert.False(t, Matches(property, &entity.AlertCriteria{MaxArea: 900}))
}

func TestMatches_Bedrooms(t *testing.T) {
	property := testProperty() // 2 bedrooms

	assert.True(t, Matches(property, &entity.AlertCriteria{Bedrooms: "2"}))
	assert.True(t, Matches(property, &entity.AlertCriteria{Bedrooms: "2+"}))
	assert.False(t, Matches(property, &entity.AlertCriteria{Bedrooms: "3"}))
	assert.False(t, Matches(property, &entity.AlertCriteria{Bedrooms: "3+"}))
	assert.False(t, Matches(property, &entity.AlertCriteria{Bedrooms: "studio"}), "unparseable bedroom criteria never match")
}

func TestMatches_Furnishing(t *testing.T) {
	property := testProperty()

	assert.True(t, Matches(property, &entity.AlertCriteria{Furnishing: "Semi-Furnished"}))
	assert.False(t, Matches(property, &entity.AlertCriteria{Furnishing: "unfurnished"}))
}

func TestMatches_KeywordsAnyOf(t *testing.T) {
	property := testProperty()

	assert.True(t, Matches(property, &entity.AlertCriteria{Keywords: "sea view"}))
	assert.True(t, Matches(property, &entity.AlertCriteria{Keywords: "garden, sea view"}), "one matching keyword is enough")
	assert.True(t, Matches(property, &entity.AlertCriteria{Keywords: "METRO"}))
	assert.False(t, Matches(property, &entity.AlertCriteria{Keywords: "garden, terrace"}))
	assert.False(t, Matches(property, &entity.AlertCriteria{Keywords: "sunrise heights"}),
		"keywords search title, description and amenities, not the society name")
	assert.True(t, Matches(property, &entity.AlertCriteria{Keywords: " , "}), "blank keyword list is unconstrained")
}

func TestMatches_AmenitiesAllOf(t *testing.T) {
	property := testProperty()

	assert.True(t, Matches(property, &entity.AlertCriteria{Amenities: []string{"gym"}}))
	assert.True(t, Matches(property, &entity.AlertCriteria{Amenities: []string{"gym", "parking"}}))
	assert.False(t, Matches(property, &entity.AlertCriteria{Amenities: []string{"gym", "clubhouse"}}), "every required amenity must be present")
}

func TestMatches_VerifiedOnly(t *testing.T) {
	property := testProperty()

	assert.True(t, Matches(property, &entity.AlertCriteria{VerifiedOnly: true}))

	property.Verified = false
	assert.False(t, Matches(property, &entity.AlertCriteria{VerifiedOnly: true}))
	assert.True(t, Matches(property, &entity.AlertCriteria{VerifiedOnly: false}))
}

func TestMatchReason(t *testing.T) {
	assert.Equal(t, "new listing", MatchReason(&entity.AlertCriteria{}))
	assert.Equal(t, "new listing", MatchReason(&entity.AlertCriteria{Category: "any"}))

	reason := MatchReason(&entity.AlertCriteria{
		Category: "rental",
		MinPrice: 10000,
		Keywords: "metro",
	})
	assert.Equal(t, "matched on category, price range, keywords", reason)
}
