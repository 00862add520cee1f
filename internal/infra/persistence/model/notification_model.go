package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationEventModel is the GORM-specific struct for the
// 'notification_events' table. Property fields are denormalized snapshots
// taken at dispatch time; the channel list is stored comma-joined.
type NotificationEventModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID          uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	AlertName        string    `gorm:"type:text;not null"`
	PropertyID       uuid.UUID `gorm:"type:uuid;not null"`
	PropertyTitle    string    `gorm:"type:text"`
	PropertyLocation string    `gorm:"type:text"`
	PropertyPrice    float64   `gorm:"type:numeric;default:0"`
	PropertyType     string    `gorm:"type:text"`
	MatchReason      string    `gorm:"type:text"`
	Channels         string    `gorm:"type:text"`
	Status           string    `gorm:"type:text;not null;default:'sent'"`
	SentAt           time.Time `gorm:"not null;index"`
	IsRead           bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationEventModel) TableName() string {
	return "notification_events"
}
