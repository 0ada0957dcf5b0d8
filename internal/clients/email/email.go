package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// dialer is the part of gomail.Dialer the sender uses
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Config holds SMTP settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string

	// From defaults to Username
	From   string
	Logger *zap.Logger
}

// Sender delivers notification emails over SMTP
type Sender struct {
	dialer dialer
	from   string
	log    *zap.Logger
}

// New creates an SMTP sender
func New(cfg *Config) (*Sender, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Host == "" {
		return nil, errors.New("smtp host cannot be empty")
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	if from == "" {
		return nil, errors.New("smtp from address cannot be empty")
	}
	return newSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), from, cfg.Logger), nil
}

func newSender(d dialer, from string, log *zap.Logger) *Sender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sender{dialer: d, from: from, log: log.Named("email")}
}

// SendEmail sends one html email. gomail has no context support, so ctx is only
// checked before dialing.
func (s *Sender) SendEmail(ctx context.Context, input *notify.SendEmailInput) error {
	if input == nil || strings.TrimSpace(input.To) == "" {
		return errors.New("recipient cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", input.To)
	m.SetHeader("Subject", input.Subject)
	m.SetBody("text/html", input.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", input.To, err)
	}

	s.log.Debug("email sent", zap.String("to", input.To), zap.String("subject", input.Subject))
	return nil
}
