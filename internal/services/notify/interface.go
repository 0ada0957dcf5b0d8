package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_dispatcher.go github.com/KirkDiggler/mentorcast/internal/services/notify Dispatcher
//go:generate mockgen -package=mocks -destination=mocks/mock_email_sender.go github.com/KirkDiggler/mentorcast/internal/services/notify EmailSender
//go:generate mockgen -package=mocks -destination=mocks/mock_message_sender.go github.com/KirkDiggler/mentorcast/internal/services/notify MessageSender

import "context"

// Dispatcher sends resolved notifications one recipient at a time
type Dispatcher interface {
	// Dispatch sends every recipient their email and message, pacing between sends
	Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error)
}

// EmailSender delivers a single email
type EmailSender interface {
	SendEmail(ctx context.Context, input *SendEmailInput) error
}

// MessageSender delivers a single templated chat message
type MessageSender interface {
	SendMessage(ctx context.Context, input *SendMessageInput) error
}
