package recipients

import (
	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/repositories/directory"
	"go.uber.org/zap"
)

// ChangeKind classifies a session change
type ChangeKind string

const (
	KindReschedule       ChangeKind = "reschedule"
	KindMentorReassigned ChangeKind = "mentor_reassigned"
	KindMentorSwapped    ChangeKind = "mentor_swapped"
	KindDetailsUpdated   ChangeKind = "details_updated"
	KindNewSession       ChangeKind = "new_session"
)

// Valid reports whether the kind is known
func (k ChangeKind) Valid() bool {
	switch k {
	case KindReschedule, KindMentorReassigned, KindMentorSwapped, KindDetailsUpdated, KindNewSession:
		return true
	}
	return false
}

// IsMentorChange reports whether the kind moves the session to another mentor
func (k ChangeKind) IsMentorChange() bool {
	return k == KindMentorReassigned || k == KindMentorSwapped
}

// Audience groups recipients for ordering and send pacing
type Audience string

const (
	AudienceMentor  Audience = "mentor"
	AudienceStudent Audience = "student"
	AudienceAdmin   Audience = "admin"
)

// Variant selects the message a recipient receives
type Variant string

const (
	VariantRescheduled      Variant = "session_rescheduled"
	VariantDetailsUpdated   Variant = "session_updated"
	VariantMentorChanged    Variant = "mentor_changed"
	VariantMentorRemoved    Variant = "mentor_removed"
	VariantMentorAssigned   Variant = "mentor_assigned"
	VariantMentorCovered    Variant = "mentor_covered"
	VariantMentorRestored   Variant = "mentor_restored"
	VariantCoverageAssigned Variant = "coverage_assigned"
	VariantCoverageRemoved  Variant = "coverage_removed"
	VariantAnnounced        Variant = "session_announced"
)

// Change is a classified difference between two states of a session
type Change struct {
	Kind ChangeKind

	// Rescheduled is set when the date or time moved, alone or bundled with a mentor change
	Rescheduled bool

	// OwnerChanged is set when a cover change is bundled with a new owner
	OwnerChanged bool
}

// Recipient is one notification target
type Recipient struct {
	Audience Audience
	Contact  *models.Contact
	Variant  Variant
}

// Config holds configuration for the recipient resolver
type Config struct {
	DirectoryRepo directory.Repository
	Logger        *zap.Logger
}

// ResolveInput contains the change and both states of the session
type ResolveInput struct {
	Change Change

	// Before is nil for a new session
	Before *models.Session
	After  *models.Session
}

// ResolveOutput contains the ordered recipients
type ResolveOutput struct {
	// Recipients lists mentors first, then students, then administrators
	Recipients []*Recipient

	// Skipped names audiences that could not be looked up
	Skipped []string
}
