package session

import "github.com/KirkDiggler/mentorcast/internal/models"

// Selector addresses a session by id, by (date, time) or by (date, mentor).
// Exactly one form must be populated.
type Selector struct {
	ID       int64
	Date     string
	Time     string
	MentorID int64
}

// Valid reports whether exactly one selector form is populated
func (s Selector) Valid() bool {
	forms := 0
	if s.ID != 0 {
		forms++
	}
	if s.Date != "" && s.Time != "" {
		forms++
	}
	if s.Date != "" && s.MentorID != 0 {
		forms++
	}
	return forms == 1
}

// Patch lists session fields to change; nil fields are left alone.
// The Clear flags write NULL and win over the matching value.
type Patch struct {
	Date         *string
	Time         *string
	Day          *string
	SubjectName  *string
	SubjectTopic *string
	SessionType  *models.SessionType
	MentorID     *int64

	SwappedMentorID      *int64
	ClearSwappedMentorID bool

	MeetingLink      *string
	ClearMeetingLink bool

	EmailSent    *bool
	WhatsappSent *bool
}

// Empty reports whether the patch changes nothing
func (p *Patch) Empty() bool {
	return p == nil || len(p.columns()) == 0
}

func (p *Patch) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Date != nil {
		cols["date"] = *p.Date
	}
	if p.Time != nil {
		cols["time"] = *p.Time
	}
	if p.Day != nil {
		cols["day"] = *p.Day
	}
	if p.SubjectName != nil {
		cols["subject_name"] = *p.SubjectName
	}
	if p.SubjectTopic != nil {
		cols["subject_topic"] = *p.SubjectTopic
	}
	if p.SessionType != nil {
		cols["session_type"] = string(*p.SessionType)
	}
	if p.MentorID != nil {
		cols["mentor_id"] = *p.MentorID
	}
	if p.ClearSwappedMentorID {
		cols["swapped_mentor_id"] = nil
	} else if p.SwappedMentorID != nil {
		cols["swapped_mentor_id"] = *p.SwappedMentorID
	}
	if p.ClearMeetingLink {
		cols["meeting_link"] = nil
	} else if p.MeetingLink != nil {
		cols["meeting_link"] = *p.MeetingLink
	}
	if p.EmailSent != nil {
		cols["email_sent"] = *p.EmailSent
	}
	if p.WhatsappSent != nil {
		cols["whatsapp_sent"] = *p.WhatsappSent
	}
	return cols
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	Table    string
	Selector Selector
}

// UpdateSessionInput contains parameters for updating a session
type UpdateSessionInput struct {
	Table    string
	Selector Selector
	Patch    *Patch
}

// ListSessionsAtInput contains parameters for listing sessions in a slot
type ListSessionsAtInput struct {
	Table string
	Date  string
	Time  string
}

// ListSessionsAtOutput contains the sessions found in a slot
type ListSessionsAtOutput struct {
	Sessions []*models.Session
}

// ListPendingAnnouncementsInput bounds the announcement window, both dates inclusive
type ListPendingAnnouncementsInput struct {
	Table    string
	FromDate string
	ToDate   string
}

// ListPendingAnnouncementsOutput contains sessions that still need announcing
type ListPendingAnnouncementsOutput struct {
	Sessions []*models.Session
}
