package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel is the GORM-specific struct for the 'property_alerts' table.
// Criteria are flattened into columns so the evaluation cycle can load alerts
// without JSON decoding; the amenity list is stored comma-joined.
type AlertModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:text;not null"`
	Description     string    `gorm:"type:text"`
	IsActive        bool      `gorm:"not null;default:true;index"`
	Frequency       string    `gorm:"type:text;not null"`
	EmailEnabled    bool      `gorm:"not null;default:false"`
	SMSEnabled      bool      `gorm:"not null;default:false"`
	WhatsAppEnabled bool      `gorm:"not null;default:false"`

	Category     string  `gorm:"type:text"`
	PropertyType string  `gorm:"type:text"`
	Zone         string  `gorm:"type:text"`
	Location     string  `gorm:"type:text"`
	MinPrice     float64 `gorm:"type:numeric;default:0"`
	MaxPrice     float64 `gorm:"type:numeric;default:0"`
	MinArea      float64 `gorm:"type:numeric;default:0"`
	MaxArea      float64 `gorm:"type:numeric;default:0"`
	Bedrooms     string  `gorm:"type:text"`
	Furnishing   string  `gorm:"type:text"`
	Keywords     string  `gorm:"type:text"`
	Amenities    string  `gorm:"type:text"`
	VerifiedOnly bool    `gorm:"not null;default:false"`

	MatchCount      int `gorm:"not null;default:0"`
	LastTriggeredAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "property_alerts"
}
