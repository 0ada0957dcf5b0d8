package meeting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/repositories/directory"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// service implements the Manager interface
type service struct {
	provider      Provider
	sessionRepo   session.Repository
	directoryRepo directory.Repository
	location      *time.Location
	validate      *validator.Validate
	log           *zap.Logger
}

// New creates a new meeting manager
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.DirectoryRepo == nil {
		return nil, ErrNilDirectoryRepo
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		provider:      cfg.Provider,
		sessionRepo:   cfg.SessionRepo,
		directoryRepo: cfg.DirectoryRepo,
		location:      loc,
		validate:      validator.New(),
		log:           log.Named("meeting"),
	}, nil
}

// Reconcile applies the first matching rule:
// contest sessions never hold a meeting, an existing meeting is regenerated,
// a new session gets its first meeting, anything else is left alone.
func (s *service) Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	if sess.SessionType.IsContest() {
		return s.retireForContest(ctx, input)
	}

	if sess.HasMeeting() && !input.Suppress {
		return s.regenerate(ctx, input)
	}

	if input.NewSession && !sess.HasMeeting() {
		joinURL, err := s.create(ctx, input)
		if err != nil {
			return nil, err
		}
		return &ReconcileOutput{Action: ActionCreated, JoinURL: joinURL}, nil
	}

	return &ReconcileOutput{Action: ActionNone}, nil
}

func (s *service) retireForContest(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	sess := input.Session
	out := &ReconcileOutput{Action: ActionNone}

	becameContest := !input.PreviousType.IsContest()
	if becameContest && input.PreviousLink != nil && *input.PreviousLink != "" {
		out.Action = ActionDeleted
		out.OldDeleted = s.delete(ctx, *input.PreviousLink)
	}

	if sess.HasMeeting() {
		if err := s.storeLink(ctx, sess, nil); err != nil {
			return out, err
		}
		sess.MeetingLink = nil
	}
	return out, nil
}

func (s *service) regenerate(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	if s.provider == nil {
		return nil, ErrProviderUnavailable
	}

	// deletion always precedes creation, a failed delete does not block it
	oldDeleted := s.delete(ctx, *input.Session.MeetingLink)

	joinURL, err := s.create(ctx, input)
	if err != nil {
		return &ReconcileOutput{Action: ActionNone, OldDeleted: oldDeleted}, err
	}

	return &ReconcileOutput{
		Action:     ActionRegenerated,
		JoinURL:    joinURL,
		OldDeleted: oldDeleted,
	}, nil
}

// delete is best-effort; it reports whether the provider removed a meeting
func (s *service) delete(ctx context.Context, joinURL string) bool {
	if s.provider == nil {
		s.log.Warn("meeting provider not configured, old meeting left in place",
			zap.String("join_url", joinURL))
		return false
	}

	out, err := s.provider.DeleteMeeting(ctx, &DeleteMeetingInput{JoinURL: joinURL})
	if err != nil {
		s.log.Warn("failed to delete meeting", zap.String("join_url", joinURL), zap.Error(err))
		return false
	}
	if !out.Deleted {
		s.log.Info("no calendar entry matched meeting", zap.String("join_url", joinURL))
	}
	return out.Deleted
}

func (s *service) create(ctx context.Context, input *ReconcileInput) (string, error) {
	if s.provider == nil {
		return "", ErrProviderUnavailable
	}
	if input.Duration <= 0 {
		return "", ErrInvalidDuration
	}

	sess := input.Session
	start, err := sess.StartsAt(s.location)
	if err != nil {
		return "", err
	}

	out, err := s.provider.CreateMeeting(ctx, &CreateMeetingInput{
		Subject:   Subject(input.Cohort, sess.SubjectName),
		Start:     start,
		End:       start.Add(input.Duration),
		TimeZone:  s.location.String(),
		Attendees: s.attendees(ctx, input),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create meeting: %w", err)
	}
	if out.JoinURL == "" {
		return "", ErrEmptyJoinURL
	}

	if err := s.storeLink(ctx, sess, &out.JoinURL); err != nil {
		return "", err
	}
	sess.MeetingLink = &out.JoinURL

	s.log.Info("meeting created",
		zap.String("table", sess.Table),
		zap.Int64("session_id", sess.ID),
		zap.Time("start", start))
	return out.JoinURL, nil
}

// attendees is the effective mentor followed by the cohort's students.
// Lookup failures shrink the list rather than failing the meeting.
func (s *service) attendees(ctx context.Context, input *ReconcileInput) []string {
	var emails []string

	if input.EffectiveMentorID != 0 {
		mentor, err := s.directoryRepo.GetMentor(ctx, &directory.GetMentorInput{MentorID: input.EffectiveMentorID})
		if err != nil {
			s.log.Warn("mentor lookup failed, meeting created without mentor",
				zap.Int64("mentor_id", input.EffectiveMentorID),
				zap.Error(err))
		} else {
			emails = append(emails, mentor.Email)
		}
	}

	if input.Cohort != nil {
		students, err := s.directoryRepo.ListCohortStudents(ctx, &directory.ListCohortStudentsInput{Cohort: input.Cohort})
		if err != nil {
			s.log.Warn("student lookup failed, meeting created without students",
				zap.String("cohort", input.Cohort.Label()),
				zap.Error(err))
		} else {
			for _, st := range students.Students {
				emails = append(emails, st.Email)
			}
		}
	}

	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		if s.validate.Var(e, "required,email") != nil {
			continue
		}
		key := strings.ToLower(e)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

func (s *service) storeLink(ctx context.Context, sess *models.Session, link *string) error {
	patch := &session.Patch{MeetingLink: link, ClearMeetingLink: link == nil}
	err := s.sessionRepo.UpdateSession(ctx, &session.UpdateSessionInput{
		Table:    sess.Table,
		Selector: session.Selector{ID: sess.ID},
		Patch:    patch,
	})
	if err != nil {
		return fmt.Errorf("failed to store meeting link: %w", err)
	}
	return nil
}

// Subject names a meeting after its cohort and subject
func Subject(cohort *models.Cohort, subjectName string) string {
	if cohort == nil {
		return subjectName
	}
	return cohort.Label() + " - " + subjectName
}
