package messaging

import (
	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// TemplatePrefix namespaces WhatsApp template ids
	TemplatePrefix string
}

// Details is what every message can say about the session
type Details struct {
	Session *models.Session

	// PreviousDate and PreviousTime are set for a reschedule
	PreviousDate string
	PreviousTime string

	// MentorName is the effective mentor's display name
	MentorName string
}

// BuildEmailInput contains parameters for building an email
type BuildEmailInput struct {
	Variant   recipients.Variant
	Recipient *models.Contact
	Details   *Details
}

// BuildEmailOutput contains the rendered email
type BuildEmailOutput struct {
	Subject string
	Body    string
}

// BuildTemplateInput contains parameters for building a WhatsApp template message
type BuildTemplateInput struct {
	Variant   recipients.Variant
	Recipient *models.Contact
	Details   *Details
}

// BuildTemplateOutput contains the template id and ordered parameters
type BuildTemplateOutput struct {
	TemplateID string
	Params     []string
}
