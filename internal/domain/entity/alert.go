// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Frequency controls how often an alert may trigger a notification burst.
type Frequency string

const (
	// FrequencyInstant never throttles.
	FrequencyInstant Frequency = "instant"
	// FrequencyDaily permits at most one burst per 24 hours.
	FrequencyDaily Frequency = "daily"
	// FrequencyWeekly permits at most one burst per 7 days.
	FrequencyWeekly Frequency = "weekly"
)

// IsValid reports whether the frequency is one of the known values.
// Unknown frequencies are kept on the record but fail closed at the gate.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyInstant, FrequencyDaily, FrequencyWeekly:
		return true
	}

	return false
}

// AlertCriteria is a saved search specification. A zero/empty value for any
// optional dimension (or the "any" sentinel) means that dimension is
// unconstrained. Price and area ranges are inclusive on both ends; a range
// with min greater than max is valid input that simply can never match.
type AlertCriteria struct {
	Category     string   `json:"category"`      // Listing category filter; "" or "any" = unconstrained.
	PropertyType string   `json:"property_type"` // Structured type filter, e.g. "2BHK".
	Zone         string   `json:"zone"`          // Zone filter.
	Location     string   `json:"location"`      // Case-insensitive substring of the listing location.
	MinPrice     float64  `json:"min_price"`
	MaxPrice     float64  `json:"max_price"`
	MinArea      float64  `json:"min_area"`
	MaxArea      float64  `json:"max_area"`
	Bedrooms     string   `json:"bedrooms"`   // Exact bedroom count; kept as a string so "any" and "2" both round-trip.
	Furnishing   string   `json:"furnishing"` // Exact furnishing level.
	Keywords     string   `json:"keywords"`   // Comma-separated keywords; a listing passes if ANY keyword appears.
	Amenities    []string `json:"amenities"`  // Required amenity tags; a listing passes only if ALL are present.
	VerifiedOnly bool     `json:"verified_only"`
}

// Alert is a user-owned saved search plus notification preferences.
type Alert struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"user_id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	IsActive        bool          `json:"is_active"`
	Frequency       Frequency     `json:"frequency"`
	EmailEnabled    bool          `json:"email_enabled"`
	SMSEnabled      bool          `json:"sms_enabled"`
	WhatsAppEnabled bool          `json:"whatsapp_enabled"`
	Criteria        AlertCriteria `json:"criteria"`
	MatchCount      int           `json:"match_count"`               // Monotonically non-decreasing; incremented by the evaluator.
	LastTriggeredAt *time.Time    `json:"last_triggered_at"`         // Nil until the alert fires for the first time.
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// EnabledChannels returns the delivery channels the user opted into, in a
// stable order. The result may be empty.
func (a *Alert) EnabledChannels() []Channel {
	channels := make([]Channel, 0, 3)
	if a.EmailEnabled {
		channels = append(channels, ChannelEmail)
	}
	if a.SMSEnabled {
		channels = append(channels, ChannelSMS)
	}
	if a.WhatsAppEnabled {
		channels = append(channels, ChannelWhatsApp)
	}

	return channels
}
