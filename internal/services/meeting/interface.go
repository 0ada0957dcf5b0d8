package meeting

//go:generate mockgen -package=mocks -destination=mocks/mock_manager.go github.com/KirkDiggler/mentorcast/internal/services/meeting Manager
//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/KirkDiggler/mentorcast/internal/services/meeting Provider

import "context"

// Manager keeps a session's video meeting in step with its schedule
type Manager interface {
	// Reconcile deletes, recreates or creates the session's meeting as the change requires
	Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error)
}

// Provider is the video conferencing backend
type Provider interface {
	// CreateMeeting schedules a meeting and returns its join URL
	CreateMeeting(ctx context.Context, input *CreateMeetingInput) (*CreateMeetingOutput, error)

	// DeleteMeeting removes the calendar entry whose join URL matches.
	// A missing entry is reported with Deleted false, not an error.
	DeleteMeeting(ctx context.Context, input *DeleteMeetingInput) (*DeleteMeetingOutput, error)
}
