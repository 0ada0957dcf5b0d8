package schedule

import "fmt"

// ScheduleError is the error type returned by the schedule service
type ScheduleError string

// Error implements the error interface
func (e ScheduleError) Error() string {
	return string(e)
}

const (
	ErrBadInput        ScheduleError = "bad input"
	ErrSessionNotFound ScheduleError = "session not found"
	ErrConflict        ScheduleError = "mentor already booked at this time"
	ErrSessionBusy     ScheduleError = "session is being changed by another request"

	ErrNilConfig        ScheduleError = "config cannot be nil"
	ErrNilSessionRepo   ScheduleError = "session repository cannot be nil"
	ErrNilDetector      ScheduleError = "conflict detector cannot be nil"
	ErrNilMeetings      ScheduleError = "meeting manager cannot be nil"
	ErrNilResolver      ScheduleError = "recipient resolver cannot be nil"
	ErrNilDispatcher    ScheduleError = "notification dispatcher cannot be nil"
	ErrInvalidDurations ScheduleError = "meeting durations must be positive"
)

// ConflictError describes the session already holding the mentor
type ConflictError struct {
	MentorID  int64
	Table     string
	Cohort    string
	Subject   string
	SessionID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: mentor %d teaches %q for %s (%s #%d)",
		ErrConflict, e.MentorID, e.Subject, e.Cohort, e.Table, e.SessionID)
}

// Is matches ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func badInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrBadInput, reason)
}
