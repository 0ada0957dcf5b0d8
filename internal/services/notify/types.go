package notify

import (
	"time"

	"github.com/KirkDiggler/mentorcast/internal/common/clock"
	"github.com/KirkDiggler/mentorcast/internal/services/messaging"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"go.uber.org/zap"
)

// DelayPolicy is the pause after each recipient, per audience
type DelayPolicy struct {
	Student time.Duration
	Mentor  time.Duration
	Admin   time.Duration
}

// For returns the pause for an audience
func (p DelayPolicy) For(audience recipients.Audience) time.Duration {
	switch audience {
	case recipients.AudienceStudent:
		return p.Student
	case recipients.AudienceMentor:
		return p.Mentor
	case recipients.AudienceAdmin:
		return p.Admin
	}
	return 0
}

// Config holds configuration for the dispatcher
type Config struct {
	// EmailSender and MessageSender may be nil to disable a channel
	EmailSender   EmailSender
	MessageSender MessageSender

	Messaging messaging.Service
	Clock     clock.Clock
	Delays    DelayPolicy

	// DefaultCountryCode is prefixed to ten digit local numbers
	DefaultCountryCode string
	Logger             *zap.Logger
}

// DispatchInput contains the recipients and what to tell them
type DispatchInput struct {
	Recipients []*recipients.Recipient
	Details    *messaging.Details

	// SkipEmail and SkipMessages leave a channel out, e.g. when it was already announced
	SkipEmail    bool
	SkipMessages bool
}

// DispatchOutput tallies the sends
type DispatchOutput struct {
	EmailsSent     int
	EmailsFailed   int
	MessagesSent   int
	MessagesFailed int

	// Skipped counts recipients with no usable address on any enabled channel
	Skipped int
}

// Attempted reports whether any send was tried
func (o *DispatchOutput) Attempted() bool {
	return o.EmailsSent+o.EmailsFailed+o.MessagesSent+o.MessagesFailed > 0
}

// SendEmailInput contains a rendered email
type SendEmailInput struct {
	To      string
	Subject string
	Body    string
}

// SendMessageInput contains a template message for one phone number
type SendMessageInput struct {
	To         string
	TemplateID string
	Params     []string
}
