package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mentorcast/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// BuildEmail returns the subject and body of a notification email
	BuildEmail(ctx context.Context, input *BuildEmailInput) (*BuildEmailOutput, error)

	// BuildTemplate returns the WhatsApp template and its parameters
	BuildTemplate(ctx context.Context, input *BuildTemplateInput) (*BuildTemplateOutput, error)
}
