package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel is the GORM-specific struct for the 'properties' table.
// Rental and resale listings are stored in the normalized form the matching
// engine consumes; the raw display price is kept alongside its numeric value.
type PropertyModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string    `gorm:"type:text;not null"`
	Category        string    `gorm:"type:text;not null;index"`
	Approved        bool      `gorm:"not null;default:false;index"`
	Location        string    `gorm:"type:text"`
	Zone            string    `gorm:"type:text;index"`
	BuildingSociety string    `gorm:"type:text"`
	PriceDisplay    string    `gorm:"type:text"`
	PriceNumeric    float64   `gorm:"type:numeric;not null;default:0;index"`
	Area            float64   `gorm:"type:numeric;default:0"`
	PropertyType    string    `gorm:"type:text;index"`
	Bedrooms        int       `gorm:"not null;default:0"`
	Furnishing      string    `gorm:"type:text"`
	Amenities       string    `gorm:"type:text"`
	Description     string    `gorm:"type:text"`
	Verified        bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
