package conflict

import (
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"go.uber.org/zap"
)

// Config holds configuration for the conflict detector
type Config struct {
	SessionRepo session.Repository
	Logger      *zap.Logger
}

// SessionRef identifies a session across tables
type SessionRef struct {
	Table string
	ID    int64
}

// CheckInput contains the candidate mentor and slot to check
type CheckInput struct {
	MentorID int64
	Date     string
	Time     string

	// Exclude is the session being edited, never a conflict with itself
	Exclude SessionRef
}

// Conflict describes the session already holding the mentor
type Conflict struct {
	Table     string
	SessionID int64

	// Cohort is the cohort label, or the raw table name when it cannot be parsed
	Cohort  string
	Subject string
}

// CheckOutput contains the first conflict found, nil when the mentor is free
type CheckOutput struct {
	Conflict *Conflict

	// SkippedTables lists tables that could not be scanned
	SkippedTables []string
}
