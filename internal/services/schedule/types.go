package schedule

import (
	"time"

	"github.com/KirkDiggler/mentorcast/internal/common/clock"
	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/repositories/lock"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"github.com/KirkDiggler/mentorcast/internal/services/conflict"
	"github.com/KirkDiggler/mentorcast/internal/services/meeting"
	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"go.uber.org/zap"
)

// State is a step of the change state machine
type State string

const (
	StateReceived                State = "received"
	StateClassified              State = "classified"
	StateConflictChecked         State = "conflict_checked"
	StateMeetingReconciled       State = "meeting_reconciled"
	StateNotificationsDispatched State = "notifications_dispatched"
	StateFlagsReset              State = "flags_reset"
	StateDone                    State = "done"

	StateRejectedBadInput State = "rejected_bad_input"
	StateRejectedNotFound State = "rejected_not_found"
	StateRejectedConflict State = "rejected_conflict"
	StateRejectedBusy     State = "rejected_busy"
)

// Config holds configuration for the schedule service
type Config struct {
	SessionRepo session.Repository
	Detector    conflict.Detector
	Meetings    meeting.Manager
	Resolver    recipients.Resolver
	Dispatcher  notify.Dispatcher

	// Locker and Audit are optional
	Locker lock.Locker
	Audit  AuditSink

	Clock  clock.Clock
	Logger *zap.Logger

	MeetingDuration     time.Duration
	SwapMeetingDuration time.Duration

	// CallTimeout bounds each best-effort external call
	CallTimeout time.Duration
	LockTTL     time.Duration
}

// ApplyChangeInput describes one change; nil fields are left alone
type ApplyChangeInput struct {
	Table    string
	Selector session.Selector

	Date     *string
	Time     *string
	MentorID *int64

	SwappedMentorID *int64
	// ClearSwap removes the covering mentor and wins over SwappedMentorID
	ClearSwap bool

	SubjectName  *string
	SubjectTopic *string
	SessionType  *models.SessionType

	// SuppressMeeting keeps an existing meeting instead of regenerating it
	SuppressMeeting bool
}

func (in *ApplyChangeInput) empty() bool {
	return in.Date == nil && in.Time == nil && in.MentorID == nil &&
		in.SwappedMentorID == nil && !in.ClearSwap &&
		in.SubjectName == nil && in.SubjectTopic == nil && in.SessionType == nil
}

// MeetingResult reports what happened to the meeting
type MeetingResult struct {
	Action  meeting.Action
	JoinURL string
}

// ApplyChangeOutput reports a completed change
type ApplyChangeOutput struct {
	SessionID   int64
	Kind        recipients.ChangeKind
	Rescheduled bool
	State       State

	Meeting  MeetingResult
	Notified bool
	Dispatch *notify.DispatchOutput

	// FlagsReset is set when the announcement flags were cleared for a fresh cycle
	FlagsReset bool

	// Degraded names best-effort steps that failed
	Degraded []string
}

// RescheduleInput contains parameters for moving a session
type RescheduleInput struct {
	Table    string
	Selector session.Selector
	Date     string
	Time     string
}

// ReassignMentorInput contains parameters for changing a session's owner
type ReassignMentorInput struct {
	Table    string
	Selector session.Selector
	MentorID int64
}

// SwapMentorInput contains parameters for setting or removing a cover
type SwapMentorInput struct {
	Table    string
	Selector session.Selector

	// SwappedMentorID nil removes the cover
	SwappedMentorID *int64
}

// UpdateDetailsInput contains parameters for editing what a session is about
type UpdateDetailsInput struct {
	Table        string
	Selector     session.Selector
	SubjectName  *string
	SubjectTopic *string
	SessionType  *models.SessionType
}

// ProvisionSessionInput identifies a freshly created session
type ProvisionSessionInput struct {
	Table    string
	Selector session.Selector
}

// ProvisionSessionOutput reports the meeting created for a new session
type ProvisionSessionOutput struct {
	SessionID int64
	Meeting   MeetingResult
	Degraded  []string
}

// GetMaterialsInput identifies the session
type GetMaterialsInput struct {
	Table    string
	Selector session.Selector
}

// GetMaterialsOutput contains the material link lists
type GetMaterialsOutput struct {
	Initial models.LinkList
	Session models.LinkList

	// Merged is Initial followed by Session without repeats
	Merged models.LinkList
}

// AuditEntry is one applied change as reported to operators
type AuditEntry struct {
	At          time.Time
	Table       string
	SessionID   int64
	Kind        recipients.ChangeKind
	Rescheduled bool
	Before      *models.Session
	After       *models.Session
	Meeting     MeetingResult
	Notified    bool
	Dispatch    *notify.DispatchOutput
	FlagsReset  bool
	Degraded    []string
}
