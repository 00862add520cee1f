package notify

import (
	"log/slog"

	"estatex/config"
	"estatex/internal/domain/service"

	"go.uber.org/fx"
)

// SenderParams holds dependencies for the channel senders, injected by Fx
type SenderParams struct {
	fx.In

	Config    *config.Config
	Directory service.ContactDirectory
	Logger    *slog.Logger
}

// NewChannelSenders builds one sender per configured channel. A channel with
// no configuration is simply absent from the result; the dispatcher records a
// delivery failure for alerts that enable it.
func NewChannelSenders(params SenderParams) []service.ChannelSender {
	cfg := params.Config.Channels
	logger := params.Logger

	if cfg == nil {
		logger.Warn("No notification channels configured")

		return nil
	}

	senders := make([]service.ChannelSender, 0, 3)

	if cfg.Email != nil && cfg.Email.Host != "" {
		senders = append(senders, NewEmailSender(cfg.Email, params.Directory, logger))
	}
	if cfg.SMS != nil && cfg.SMS.Endpoint != "" {
		senders = append(senders, NewSMSSender(cfg.SMS, params.Directory, logger))
	}
	if cfg.WhatsApp != nil && cfg.WhatsApp.Endpoint != "" {
		senders = append(senders, NewWhatsAppSender(cfg.WhatsApp, params.Directory, logger))
	}

	channels := make([]string, 0, len(senders))
	for _, sender := range senders {
		channels = append(channels, string(sender.Channel()))
	}
	logger.Info("Notification channels enabled", slog.Any("channels", channels))

	return senders
}

// Module provides the notify FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChannelSenders),
)
