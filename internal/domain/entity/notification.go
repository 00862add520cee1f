// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Channel is a notification delivery medium.
type Channel string

const (
	// ChannelEmail delivers via the email service.
	ChannelEmail Channel = "email"
	// ChannelSMS delivers via the SMS gateway.
	ChannelSMS Channel = "sms"
	// ChannelWhatsApp delivers via the WhatsApp Business API.
	ChannelWhatsApp Channel = "whatsapp"
)

// DeliveryStatus is the synchronous delivery state of a notification event.
type DeliveryStatus string

const (
	// StatusPending means the event was created but no send attempt was issued yet.
	StatusPending DeliveryStatus = "pending"
	// StatusSent means send attempts were issued on every enabled channel.
	// Delivery confirmation is not tracked at this layer.
	StatusSent DeliveryStatus = "sent"
	// StatusFailed means the event could not be handed to any channel.
	StatusFailed DeliveryStatus = "failed"
)

// NotificationEvent records one alert/property match that was handed to the
// dispatcher. Property fields are denormalized snapshots taken at send time
// because the source listing may change or be deleted afterwards. Immutable
// once written, except for the read flag which the user toggles.
type NotificationEvent struct {
	ID               uuid.UUID      `json:"id"`
	AlertID          uuid.UUID      `json:"alert_id"`
	UserID           uuid.UUID      `json:"user_id"`
	AlertName        string         `json:"alert_name"` // Snapshot of the alert name at send time.
	PropertyID       uuid.UUID      `json:"property_id"`
	PropertyTitle    string         `json:"property_title"`
	PropertyLocation string         `json:"property_location"`
	PropertyPrice    float64        `json:"property_price"`
	PropertyType     string         `json:"property_type"`
	MatchReason      string         `json:"match_reason"`
	Channels         []Channel      `json:"channels"` // Channels actually attempted; may be empty.
	Status           DeliveryStatus `json:"status"`
	SentAt           time.Time      `json:"sent_at"`
	IsRead           bool           `json:"is_read"`
}
