// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"estatex/internal/domain/entity"
)

// SearchFilter narrows the channel-partner search over approved listings.
// Zero values mean "unconstrained" for the respective dimension.
type SearchFilter struct {
	Query        string  // Free-text match against title, location, society, description and amenities.
	Location     string  // Case-insensitive location substring.
	Category     string  // rental or resale.
	PropertyType string  // Structured type code.
	MinPrice     float64
	MaxPrice     float64
}

// PropertyRepository defines the interface for listing-related database operations.
// The matching core only ever reads listings; creation and admin approval are
// owned by the surrounding application.
type PropertyRepository interface {
	// FindCandidatesSince retrieves approved listings created or updated
	// after the given instant. This is the candidate-set boundary for one
	// evaluation cycle.
	FindCandidatesSince(ctx context.Context, since time.Time) ([]*entity.Property, error)

	// FindApproved retrieves all approved listings. Used when a newly
	// created alert is evaluated against the existing inventory.
	FindApproved(ctx context.Context) ([]*entity.Property, error)

	// Search retrieves approved listings matching the filter, newest first.
	Search(ctx context.Context, filter SearchFilter) ([]*entity.Property, error)
}
