package mailer

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/rs/zerolog"

	"reach_backend/internals/configs"
	"reach_backend/internals/metrics"
)

// Message is a plain-text notification.
type Message struct {
	Kind    string
	To      string
	Subject string
	Text    string
}

// Sender delivers a message through one provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Service sends notifications best-effort: delivery failures are logged and
// counted, never returned to the operation that triggered them.
type Service struct {
	sender Sender
	logger zerolog.Logger
}

func NewService(sender Sender, logger zerolog.Logger) *Service {
	return &Service{
		sender: sender,
		logger: logger.With().Str("component", "mailer").Logger(),
	}
}

// NewFromConfig picks the sender named by EMAIL_PROVIDER.
func NewFromConfig(cfg configs.EmailConfig, logger zerolog.Logger) (*Service, error) {
	var sender Sender
	switch strings.ToLower(cfg.Provider) {
	case "smtp":
		if err := validateEmailAddress(cfg.From); err != nil {
			return nil, fmt.Errorf("invalid sender email in config: %w", err)
		}
		sender = NewSMTPSender(cfg)
	case "resend":
		if err := validateEmailAddress(cfg.From); err != nil {
			return nil, fmt.Errorf("invalid sender email in config: %w", err)
		}
		sender = NewResendSender(cfg.ResendAPIKey, cfg.From, logger)
	case "", "log":
		sender = NewLogSender(logger)
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
	return NewService(sender, logger), nil
}

// Notify sends msg and reports whether it was delivered.
func (s *Service) Notify(ctx context.Context, msg Message) bool {
	if err := validateEmailAddress(msg.To); err != nil {
		s.fail(msg, fmt.Errorf("invalid recipient email: %w", err))
		return false
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.fail(msg, err)
		return false
	}
	s.logger.Info().Str("to", msg.To).Str("kind", msg.Kind).Msg("notification sent")
	return true
}

func (s *Service) fail(msg Message, err error) {
	metrics.EmailFailures.WithLabelValues(msg.Kind).Inc()
	s.logger.Warn().Err(err).Str("to", msg.To).Str("kind", msg.Kind).Msg("notification not sent")
}

// validateEmailAddress validates an email address for format and header injection attempts
func validateEmailAddress(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	if strings.ContainsAny(addr.Address, "\r\n") {
		return fmt.Errorf("invalid email address: contains newline characters")
	}
	return nil
}

// LogSender only logs; used when EMAIL_PROVIDER=log.
type LogSender struct {
	logger zerolog.Logger
}

func NewLogSender(logger zerolog.Logger) *LogSender {
	return &LogSender{logger: logger.With().Str("component", "mailer").Logger()}
}

func (l *LogSender) Send(ctx context.Context, msg Message) error {
	l.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("email provider disabled, logging notification")
	return nil
}
