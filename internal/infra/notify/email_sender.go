package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"estatex/config"
	"estatex/internal/domain/entity"
	"estatex/internal/domain/service"

	"github.com/pkg/errors"
)

// emailSender delivers match notifications over SMTP.
type emailSender struct {
	cfg       *config.EmailConfig
	directory service.ContactDirectory
	logger    *slog.Logger
}

// NewEmailSender is the constructor for emailSender.
func NewEmailSender(cfg *config.EmailConfig, directory service.ContactDirectory, logger *slog.Logger) service.ChannelSender {
	return &emailSender{
		cfg:       cfg,
		directory: directory,
		logger:    logger,
	}
}

func (s *emailSender) Channel() entity.Channel {
	return entity.ChannelEmail
}

func (s *emailSender) Send(ctx context.Context, alert *entity.Alert, property *entity.Property) error {
	contact, err := s.directory.LookupContact(ctx, alert.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve email recipient")
	}
	if contact.Email == "" {
		return errors.Errorf("user %s has no email on file", alert.UserID)
	}

	subject := fmt.Sprintf("New property match for %q", alert.Name)
	msg := buildMessage(s.cfg.From, contact.Email, subject, matchBody(alert, property))

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{contact.Email}, msg); err != nil {
		return errors.Wrapf(err, "failed to send email via %s", addr)
	}

	s.logger.Debug("Email notification sent",
		slog.String("alert_id", alert.ID.String()),
		slog.String("property_id", property.ID.String()),
	)

	return nil
}

// buildMessage assembles an RFC 5322 plain-text message.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
