package usecase

import (
	"context"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/repository"
)

// SearchResult is the channel-partner view of a listing. It never exposes
// the unit number, only the building or society name.
type SearchResult struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Location     string  `json:"location"`
	Zone         string  `json:"zone"`
	Society      string  `json:"society"`
	Price        float64 `json:"price"`
	Area         float64 `json:"area"`
	PropertyType string  `json:"propertyType"`
	Bedrooms     int     `json:"bedrooms"`
	Furnishing   string  `json:"furnishing"`
	Verified     bool    `json:"verified"`
}

// SearchUsecase defines the interface for the channel-partner search use case
type SearchUsecase interface {
	// Search returns approved listings matching the filter, serving
	// repeated queries from cache
	Search(ctx context.Context, filter repository.SearchFilter) ([]*SearchResult, error)
}

// NewSearchResult maps a listing to its channel-partner view.
func NewSearchResult(property *entity.Property) *SearchResult {
	return &SearchResult{
		ID:           property.ID.String(),
		Title:        property.Title,
		Category:     string(property.Category),
		Location:     property.Location,
		Zone:         property.Zone,
		Society:      property.BuildingSociety,
		Price:        property.PriceNumeric,
		Area:         property.Area,
		PropertyType: property.PropertyType,
		Bedrooms:     property.Bedrooms,
		Furnishing:   property.Furnishing,
		Verified:     property.Verified,
	}
}
