package postgres

import (
	"context"
	"strings"
	"time"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/repository"
	"estatex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// propertyRepository implements the repository.PropertyRepository interface.
// Listing writes are owned by the surrounding application; the matching core
// only reads.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// FindCandidatesSince retrieves approved listings created or updated after
// the given instant.
func (repo *propertyRepository) FindCandidatesSince(ctx context.Context, since time.Time) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("approved = ?", true).
		Where("created_at >= ? OR updated_at >= ?", since, since).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find candidate listings")
	}

	return toPropertyDomainList(propertyModels), nil
}

// FindApproved retrieves all approved listings, newest first.
func (repo *propertyRepository) FindApproved(ctx context.Context) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find approved listings")
	}

	return toPropertyDomainList(propertyModels), nil
}

// Search retrieves approved listings matching the filter, newest first.
func (repo *propertyRepository) Search(ctx context.Context, filter repository.SearchFilter) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	query := repo.db.WithContext(ctx).
		Where("approved = ?", true)

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(location) LIKE ? OR LOWER(building_society) LIKE ? OR LOWER(description) LIKE ? OR LOWER(amenities) LIKE ?",
			pattern, pattern, pattern, pattern, pattern)
	}
	if location := strings.TrimSpace(filter.Location); location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", strings.ToLower(filter.Category))
	}
	if filter.PropertyType != "" {
		query = query.Where("LOWER(property_type) = ?", strings.ToLower(filter.PropertyType))
	}
	if filter.MinPrice > 0 {
		query = query.Where("price_numeric >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price_numeric <= ?", filter.MaxPrice)
	}

	if err := query.Order("created_at DESC").Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	return toPropertyDomainList(propertyModels), nil
}

// toPropertyDomain maps a GORM model back to the domain entity.
func toPropertyDomain(propertyM *model.PropertyModel) *entity.Property {
	return &entity.Property{
		ID:              propertyM.ID,
		Title:           propertyM.Title,
		Category:        entity.Category(propertyM.Category),
		Approved:        propertyM.Approved,
		Location:        propertyM.Location,
		Zone:            propertyM.Zone,
		BuildingSociety: propertyM.BuildingSociety,
		PriceNumeric:    propertyM.PriceNumeric,
		Area:            propertyM.Area,
		PropertyType:    propertyM.PropertyType,
		Bedrooms:        propertyM.Bedrooms,
		Furnishing:      propertyM.Furnishing,
		Amenities:       entity.ParseAmenities(propertyM.Amenities),
		Description:     propertyM.Description,
		Verified:        propertyM.Verified,
		CreatedAt:       propertyM.CreatedAt,
		UpdatedAt:       propertyM.UpdatedAt,
	}
}

func toPropertyDomainList(propertyModels []*model.PropertyModel) []*entity.Property {
	properties := make([]*entity.Property, 0, len(propertyModels))
	for _, propertyM := range propertyModels {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties
}
