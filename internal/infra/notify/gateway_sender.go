package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"estatex/config"
	"estatex/internal/domain/entity"
	"estatex/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultGatewayTimeout = 15 * time.Second

// gatewayMessage is the JSON payload posted to the SMS and WhatsApp gateways.
type gatewayMessage struct {
	To         string `json:"to"`
	Message    string `json:"message"`
	AlertID    string `json:"alert_id"`
	PropertyID string `json:"property_id"`
}

// httpGatewaySender delivers match notifications through an HTTP messaging
// gateway. The SMS and WhatsApp channels share this implementation; only the
// endpoint and channel tag differ.
type httpGatewaySender struct {
	channel   entity.Channel
	endpoint  string
	apiKey    string
	client    *http.Client
	directory service.ContactDirectory
	logger    *slog.Logger
}

// NewSMSSender is the constructor for the SMS gateway sender.
func NewSMSSender(cfg *config.HTTPGatewayConfig, directory service.ContactDirectory, logger *slog.Logger) service.ChannelSender {
	return newGatewaySender(entity.ChannelSMS, cfg, directory, logger)
}

// NewWhatsAppSender is the constructor for the WhatsApp Business API sender.
func NewWhatsAppSender(cfg *config.HTTPGatewayConfig, directory service.ContactDirectory, logger *slog.Logger) service.ChannelSender {
	return newGatewaySender(entity.ChannelWhatsApp, cfg, directory, logger)
}

func newGatewaySender(channel entity.Channel, cfg *config.HTTPGatewayConfig, directory service.ContactDirectory, logger *slog.Logger) service.ChannelSender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}

	return &httpGatewaySender{
		channel:   channel,
		endpoint:  cfg.Endpoint,
		apiKey:    cfg.APIKey,
		client:    &http.Client{Timeout: timeout},
		directory: directory,
		logger:    logger,
	}
}

func (s *httpGatewaySender) Channel() entity.Channel {
	return s.channel
}

func (s *httpGatewaySender) Send(ctx context.Context, alert *entity.Alert, property *entity.Property) error {
	contact, err := s.directory.LookupContact(ctx, alert.UserID)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s recipient", s.channel)
	}
	if contact.Phone == "" {
		return errors.Errorf("user %s has no phone on file", alert.UserID)
	}

	payload, err := json.Marshal(gatewayMessage{
		To:         contact.Phone,
		Message:    matchSummary(alert, property),
		AlertID:    alert.ID.String(),
		PropertyID: property.ID.String(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal gateway message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create gateway request")
	}

	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to call %s gateway", s.channel)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("%s gateway returned status %d", s.channel, resp.StatusCode)
	}

	s.logger.Debug("Gateway notification sent",
		slog.String("channel", string(s.channel)),
		slog.String("alert_id", alert.ID.String()),
		slog.String("property_id", property.ID.String()),
	)

	return nil
}
