package notify

import (
	"context"
	"strings"

	"github.com/KirkDiggler/mentorcast/internal/common/clock"
	"github.com/KirkDiggler/mentorcast/internal/services/messaging"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// service implements the Dispatcher interface
type service struct {
	email       EmailSender
	message     MessageSender
	messaging   messaging.Service
	clock       clock.Clock
	delays      DelayPolicy
	countryCode string
	validate    *validator.Validate
	log         *zap.Logger
}

// New creates a new dispatcher
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	countryCode := cfg.DefaultCountryCode
	if countryCode == "" {
		countryCode = "91"
	}

	return &service{
		email:       cfg.EmailSender,
		message:     cfg.MessageSender,
		messaging:   cfg.Messaging,
		clock:       clk,
		delays:      cfg.Delays,
		countryCode: countryCode,
		validate:    validator.New(),
		log:         log.Named("notify"),
	}, nil
}

// Dispatch walks the recipients in order. A failed send is counted and the
// loop moves on; only context cancellation stops it early.
func (s *service) Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error) {
	if input == nil || input.Details == nil {
		return nil, ErrNilDetails
	}

	out := &DispatchOutput{}
	for i, r := range input.Recipients {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		attempted := false
		if !input.SkipEmail {
			attempted = s.sendEmail(ctx, r, input.Details, out)
		}
		if !input.SkipMessages && s.sendMessage(ctx, r, input.Details, out) {
			attempted = true
		}
		if !attempted {
			out.Skipped++
			continue
		}

		if i == len(input.Recipients)-1 {
			break
		}
		if err := s.clock.Sleep(ctx, s.delays.For(r.Audience)); err != nil {
			return out, err
		}
	}

	s.log.Info("dispatch finished",
		zap.Int("recipients", len(input.Recipients)),
		zap.Int("emails_sent", out.EmailsSent),
		zap.Int("emails_failed", out.EmailsFailed),
		zap.Int("messages_sent", out.MessagesSent),
		zap.Int("messages_failed", out.MessagesFailed),
		zap.Int("skipped", out.Skipped))
	return out, nil
}

func (s *service) sendEmail(ctx context.Context, r *recipients.Recipient, d *messaging.Details, out *DispatchOutput) bool {
	if s.email == nil || r.Contact == nil {
		return false
	}
	to := strings.TrimSpace(r.Contact.Email)
	if s.validate.Var(to, "required,email") != nil {
		return false
	}

	content, err := s.messaging.BuildEmail(ctx, &messaging.BuildEmailInput{
		Variant:   r.Variant,
		Recipient: r.Contact,
		Details:   d,
	})
	if err != nil {
		s.log.Warn("could not build email", zap.String("variant", string(r.Variant)), zap.Error(err))
		out.EmailsFailed++
		return true
	}

	err = s.email.SendEmail(ctx, &SendEmailInput{
		To:      to,
		Subject: content.Subject,
		Body:    content.Body,
	})
	if err != nil {
		s.log.Warn("email failed",
			zap.String("to", to),
			zap.String("variant", string(r.Variant)),
			zap.Error(err))
		out.EmailsFailed++
		return true
	}

	out.EmailsSent++
	return true
}

func (s *service) sendMessage(ctx context.Context, r *recipients.Recipient, d *messaging.Details, out *DispatchOutput) bool {
	if s.message == nil || r.Contact == nil {
		return false
	}
	phone, ok := NormalizePhone(r.Contact.Phone, s.countryCode)
	if !ok {
		return false
	}

	content, err := s.messaging.BuildTemplate(ctx, &messaging.BuildTemplateInput{
		Variant:   r.Variant,
		Recipient: r.Contact,
		Details:   d,
	})
	if err != nil {
		s.log.Warn("could not build message", zap.String("variant", string(r.Variant)), zap.Error(err))
		out.MessagesFailed++
		return true
	}

	err = s.message.SendMessage(ctx, &SendMessageInput{
		To:         phone,
		TemplateID: content.TemplateID,
		Params:     content.Params,
	})
	if err != nil {
		s.log.Warn("message failed",
			zap.String("to", phone),
			zap.String("variant", string(r.Variant)),
			zap.Error(err))
		out.MessagesFailed++
		return true
	}

	out.MessagesSent++
	return true
}
