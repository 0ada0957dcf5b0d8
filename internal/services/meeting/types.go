package meeting

import (
	"time"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/repositories/directory"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"go.uber.org/zap"
)

// Action is what Reconcile did to the meeting
type Action string

const (
	ActionNone        Action = "none"
	ActionCreated     Action = "created"
	ActionRegenerated Action = "regenerated"
	ActionDeleted     Action = "deleted"
)

// Config holds configuration for the meeting manager
type Config struct {
	// Provider may be nil when no conferencing credentials are configured
	Provider      Provider
	SessionRepo   session.Repository
	DirectoryRepo directory.Repository

	// Location is the zone session dates and times are written in
	Location *time.Location
	Logger   *zap.Logger
}

// ReconcileInput describes the session after its fields were persisted
type ReconcileInput struct {
	Session *models.Session

	// PreviousType is the session type before the change
	PreviousType models.SessionType

	// PreviousLink is the stored join URL before the change
	PreviousLink *string

	EffectiveMentorID int64

	// Cohort is nil when the table name does not encode one
	Cohort *models.Cohort

	// NewSession marks a freshly provisioned session
	NewSession bool

	// Suppress skips regeneration of an existing meeting
	Suppress bool

	Duration time.Duration
}

// ReconcileOutput reports the meeting action taken
type ReconcileOutput struct {
	Action  Action
	JoinURL string

	// OldDeleted is false when the previous meeting could not be found or removed
	OldDeleted bool
}

// CreateMeetingInput contains parameters for scheduling a meeting
type CreateMeetingInput struct {
	Subject   string
	Start     time.Time
	End       time.Time
	TimeZone  string
	Attendees []string
}

// CreateMeetingOutput contains the new meeting's join URL
type CreateMeetingOutput struct {
	JoinURL string
}

// DeleteMeetingInput identifies the meeting to remove
type DeleteMeetingInput struct {
	JoinURL string
}

// DeleteMeetingOutput reports whether a matching meeting was removed
type DeleteMeetingOutput struct {
	Deleted bool
}
