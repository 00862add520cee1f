// Package service defines interfaces for external collaborators the use cases
// depend on.
package service

import (
	"context"

	"estatex/internal/domain/entity"
)

// ChannelSender is a single-channel delivery capability. Implementations wrap
// the email service, the SMS gateway and the WhatsApp Business API; all of
// them are injected into the dispatcher, which treats them uniformly.
type ChannelSender interface {
	// Channel identifies which delivery medium this sender serves.
	Channel() entity.Channel

	// Send attempts delivery of one matched-property notification to the
	// owner of the alert. Implementations are expected to bound their own
	// network calls with the given context.
	Send(ctx context.Context, alert *entity.Alert, property *entity.Property) error
}
