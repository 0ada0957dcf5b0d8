package models

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the storage format of Session.Date
	DateLayout = "2006-01-02"

	// TimeLayout is the storage format of Session.Time
	TimeLayout = "15:04"
)

// SessionType distinguishes live classes from contests
type SessionType string

const (
	// SessionTypeNormal is a live class that carries a meeting
	SessionTypeNormal SessionType = "normal"

	// SessionTypeContest never carries a meeting link
	SessionTypeContest SessionType = "contest"
)

// IsContest reports whether the type is a contest
func (t SessionType) IsContest() bool {
	return t == SessionTypeContest
}

// Valid reports whether the type is one of the known session types
func (t SessionType) Valid() bool {
	return t == SessionTypeNormal || t == SessionTypeContest
}

// Session represents one scheduled class instance in a cohort schedule table
type Session struct {
	// ID is unique within Table
	ID int64

	// Table is the schedule table the session lives in
	Table string

	// Date is the calendar date, formatted with DateLayout
	Date string

	// Time is the start time, formatted with TimeLayout
	Time string

	// Day is the weekday name derived from Date
	Day string

	SubjectName  string
	SubjectTopic string
	SessionType  SessionType

	// MentorID is the permanent owner of the session
	MentorID int64

	// SwappedMentorID is a temporary covering mentor, nil when not swapped
	SwappedMentorID *int64

	// MeetingLink is the opaque join URL, nil when no meeting exists
	MeetingLink *string

	// EmailSent and WhatsappSent record whether the current state was announced
	EmailSent    bool
	WhatsappSent bool

	SessionMaterial        string
	InitialSessionMaterial string
}

// EffectiveMentorID returns the covering mentor when swapped, else the owner
func (s *Session) EffectiveMentorID() int64 {
	if s.SwappedMentorID != nil {
		return *s.SwappedMentorID
	}
	return s.MentorID
}

// IsSwapped reports whether a covering mentor is assigned
func (s *Session) IsSwapped() bool {
	return s.SwappedMentorID != nil
}

// HasBeenAnnounced reports whether any notification for the current state went out
func (s *Session) HasBeenAnnounced() bool {
	return s.EmailSent || s.WhatsappSent
}

// HasMeeting reports whether the session holds a non-empty meeting link
func (s *Session) HasMeeting() bool {
	return s.MeetingLink != nil && *s.MeetingLink != ""
}

// StartsAt returns the session start in loc
func (s *Session) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, s.Date+" "+s.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid session start %q %q: %w", s.Date, s.Time, err)
	}
	return start, nil
}

// Materials merges the initial and session material lists for display
func (s *Session) Materials() LinkList {
	return ParseLinkList(s.InitialSessionMaterial).Merge(ParseLinkList(s.SessionMaterial))
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.SwappedMentorID != nil {
		id := *s.SwappedMentorID
		c.SwappedMentorID = &id
	}
	if s.MeetingLink != nil {
		link := *s.MeetingLink
		c.MeetingLink = &link
	}
	return &c
}

// WeekdayName returns the weekday name for a date in DateLayout
func WeekdayName(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}

// ValidDate reports whether date is formatted with DateLayout
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// ValidTime reports whether clock is formatted with TimeLayout
func ValidTime(clock string) bool {
	_, err := time.Parse(TimeLayout, clock)
	return err == nil
}
