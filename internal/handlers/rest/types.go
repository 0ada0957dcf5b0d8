package rest

import (
	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"github.com/KirkDiggler/mentorcast/internal/services/announcer"
	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"github.com/KirkDiggler/mentorcast/internal/services/schedule"
)

// SelectorRequest addresses one session: id, date+time or date+mentor_id
type SelectorRequest struct {
	ID       int64  `json:"id" validate:"gte=0"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time     string `json:"time" validate:"omitempty,datetime=15:04"`
	MentorID int64  `json:"mentor_id" validate:"gte=0"`
}

func (r SelectorRequest) toSelector() session.Selector {
	return session.Selector{ID: r.ID, Date: r.Date, Time: r.Time, MentorID: r.MentorID}
}

// RescheduleRequest moves a session
type RescheduleRequest struct {
	Selector SelectorRequest `json:"selector"`
	Date     string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string          `json:"time" validate:"required,datetime=15:04"`
}

// ReassignRequest changes the permanent owner
type ReassignRequest struct {
	Selector SelectorRequest `json:"selector"`
	MentorID int64           `json:"mentor_id" validate:"required,gt=0"`
}

// SwapRequest sets the covering mentor; null removes it
type SwapRequest struct {
	Selector        SelectorRequest `json:"selector"`
	SwappedMentorID *int64          `json:"swapped_mentor_id" validate:"omitempty,gt=0"`
}

// DetailsRequest edits what the session is about
type DetailsRequest struct {
	Selector     SelectorRequest `json:"selector"`
	SubjectName  *string         `json:"subject_name" validate:"omitempty,min=1"`
	SubjectTopic *string         `json:"subject_topic"`
	SessionType  *string         `json:"session_type" validate:"omitempty,oneof=normal contest"`
}

// ChangeRequest is the combined form of every change
type ChangeRequest struct {
	Selector        SelectorRequest `json:"selector"`
	Date            *string         `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time            *string         `json:"time" validate:"omitempty,datetime=15:04"`
	MentorID        *int64          `json:"mentor_id" validate:"omitempty,gt=0"`
	SwappedMentorID *int64          `json:"swapped_mentor_id" validate:"omitempty,gt=0"`
	ClearSwap       bool            `json:"clear_swap"`
	SubjectName     *string         `json:"subject_name" validate:"omitempty,min=1"`
	SubjectTopic    *string         `json:"subject_topic"`
	SessionType     *string         `json:"session_type" validate:"omitempty,oneof=normal contest"`
	SuppressMeeting bool            `json:"suppress_meeting"`
}

// ProvisionRequest identifies a newly created session
type ProvisionRequest struct {
	Selector SelectorRequest `json:"selector"`
}

// MeetingResponse reports the meeting outcome
type MeetingResponse struct {
	Action  string `json:"action,omitempty"`
	JoinURL string `json:"join_url,omitempty"`
}

// DispatchResponse tallies notification sends
type DispatchResponse struct {
	EmailsSent     int `json:"emails_sent"`
	EmailsFailed   int `json:"emails_failed"`
	MessagesSent   int `json:"messages_sent"`
	MessagesFailed int `json:"messages_failed"`
	Skipped        int `json:"skipped"`
}

// ChangeResponse reports an applied change
type ChangeResponse struct {
	SessionID   int64             `json:"session_id"`
	Kind        string            `json:"kind,omitempty"`
	Rescheduled bool              `json:"rescheduled"`
	State       string            `json:"state"`
	Meeting     MeetingResponse   `json:"meeting"`
	Notified    bool              `json:"notified"`
	Dispatch    *DispatchResponse `json:"dispatch,omitempty"`
	FlagsReset  bool              `json:"flags_reset"`
	Degraded    []string          `json:"degraded,omitempty"`
}

// ProvisionResponse reports the meeting created for a new session
type ProvisionResponse struct {
	SessionID int64           `json:"session_id"`
	Meeting   MeetingResponse `json:"meeting"`
	Degraded  []string        `json:"degraded,omitempty"`
}

// MaterialsResponse lists material links
type MaterialsResponse struct {
	Initial []string `json:"initial"`
	Session []string `json:"session"`
	Merged  []string `json:"merged"`
}

// AnnounceResponse tallies an announcement pass
type AnnounceResponse struct {
	Tables    int `json:"tables"`
	Pending   int `json:"pending"`
	Announced int `json:"announced"`
	Busy      int `json:"busy"`
	Failed    int `json:"failed"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error     string        `json:"error"`
	Conflict  *ConflictBody `json:"conflict,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
}

// ConflictBody names the session already holding the mentor
type ConflictBody struct {
	MentorID  int64  `json:"mentor_id"`
	Table     string `json:"table"`
	Cohort    string `json:"cohort"`
	Subject   string `json:"subject"`
	SessionID int64  `json:"session_id"`
}

func toSessionType(v *string) *models.SessionType {
	if v == nil {
		return nil
	}
	t := models.SessionType(*v)
	return &t
}

func toChangeResponse(out *schedule.ApplyChangeOutput) *ChangeResponse {
	return &ChangeResponse{
		SessionID:   out.SessionID,
		Kind:        string(out.Kind),
		Rescheduled: out.Rescheduled,
		State:       string(out.State),
		Meeting:     MeetingResponse{Action: string(out.Meeting.Action), JoinURL: out.Meeting.JoinURL},
		Notified:    out.Notified,
		Dispatch:    toDispatchResponse(out.Dispatch),
		FlagsReset:  out.FlagsReset,
		Degraded:    out.Degraded,
	}
}

func toDispatchResponse(d *notify.DispatchOutput) *DispatchResponse {
	if d == nil {
		return nil
	}
	return &DispatchResponse{
		EmailsSent:     d.EmailsSent,
		EmailsFailed:   d.EmailsFailed,
		MessagesSent:   d.MessagesSent,
		MessagesFailed: d.MessagesFailed,
		Skipped:        d.Skipped,
	}
}

func toAnnounceResponse(out *announcer.AnnounceOutput) *AnnounceResponse {
	return &AnnounceResponse{
		Tables:    out.Tables,
		Pending:   out.Pending,
		Announced: out.Announced,
		Busy:      out.Busy,
		Failed:    out.Failed,
	}
}
