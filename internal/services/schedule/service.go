package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/common/clock"
	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/repositories/lock"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"github.com/KirkDiggler/mentorcast/internal/services/conflict"
	"github.com/KirkDiggler/mentorcast/internal/services/meeting"
	"github.com/KirkDiggler/mentorcast/internal/services/messaging"
	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	sessionRepo session.Repository
	detector    conflict.Detector
	meetings    meeting.Manager
	resolver    recipients.Resolver
	dispatcher  notify.Dispatcher
	locker      lock.Locker
	audit       AuditSink
	clock       clock.Clock
	log         *zap.Logger

	meetingDuration     time.Duration
	swapMeetingDuration time.Duration
	callTimeout         time.Duration
	lockTTL             time.Duration
}

// New creates a new schedule service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Detector == nil {
		return nil, ErrNilDetector
	}
	if cfg.Meetings == nil {
		return nil, ErrNilMeetings
	}
	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}
	if cfg.Dispatcher == nil {
		return nil, ErrNilDispatcher
	}
	if cfg.MeetingDuration <= 0 || cfg.SwapMeetingDuration <= 0 {
		return nil, ErrInvalidDurations
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		sessionRepo:         cfg.SessionRepo,
		detector:            cfg.Detector,
		meetings:            cfg.Meetings,
		resolver:            cfg.Resolver,
		dispatcher:          cfg.Dispatcher,
		locker:              cfg.Locker,
		audit:               cfg.Audit,
		clock:               clk,
		log:                 log.Named("schedule"),
		meetingDuration:     cfg.MeetingDuration,
		swapMeetingDuration: cfg.SwapMeetingDuration,
		callTimeout:         cfg.CallTimeout,
		lockTTL:             cfg.LockTTL,
	}, nil
}

// ApplyChange walks received, classified, conflict_checked, meeting_reconciled,
// notifications_dispatched, flags_reset and done. The session fields are
// persisted before any meeting or notification work.
func (s *service) ApplyChange(ctx context.Context, input *ApplyChangeInput) (*ApplyChangeOutput, error) {
	if err := validateChange(input); err != nil {
		s.log.Info("change rejected", zap.String("state", string(StateRejectedBadInput)), zap.Error(err))
		return nil, err
	}

	out := &ApplyChangeOutput{State: StateReceived}

	before, unlock, err := s.load(ctx, input.Table, input.Selector, &out.Degraded)
	if err != nil {
		return nil, err
	}
	defer unlock()
	out.SessionID = before.ID

	after := applyFields(before, input)

	change, err := recipients.Classify(before, after)
	if errors.Is(err, recipients.ErrNoChange) {
		out.State = StateDone
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	out.Kind = change.Kind
	out.Rescheduled = change.Rescheduled
	out.State = StateClassified

	effective := after.EffectiveMentorID()
	if change.Kind.IsMentorChange() && effective != before.EffectiveMentorID() {
		if err := s.checkConflict(ctx, after, effective, &out.Degraded); err != nil {
			return nil, err
		}
	}
	out.State = StateConflictChecked

	patch := buildPatch(before, after)
	err = s.call(ctx, nil, "persist_session", mandatory, func(ctx context.Context) error {
		return s.sessionRepo.UpdateSession(ctx, &session.UpdateSessionInput{
			Table:    after.Table,
			Selector: session.Selector{ID: after.ID},
			Patch:    patch,
		})
	})
	if err != nil {
		return nil, storeError(err)
	}
	if patch.ClearMeetingLink {
		after.MeetingLink = nil
	}

	s.reconcileMeeting(ctx, before, after, change, input.SuppressMeeting, out)
	out.State = StateMeetingReconciled

	if change.Kind == recipients.KindMentorSwapped || before.HasBeenAnnounced() {
		s.notify(ctx, before, after, change, out)
	}
	out.State = StateNotificationsDispatched

	if before.HasBeenAnnounced() {
		out.FlagsReset = s.resetFlags(ctx, after, &out.Degraded)
	}
	out.State = StateFlagsReset

	s.record(ctx, before, after, out)
	out.State = StateDone

	s.log.Info("change applied",
		zap.String("table", after.Table),
		zap.Int64("session_id", after.ID),
		zap.String("kind", string(out.Kind)),
		zap.Bool("rescheduled", out.Rescheduled),
		zap.String("meeting", string(out.Meeting.Action)),
		zap.Bool("notified", out.Notified),
		zap.Bool("flags_reset", out.FlagsReset),
		zap.Strings("degraded", out.Degraded))
	return out, nil
}

// Reschedule moves a session to a new date and time
func (s *service) Reschedule(ctx context.Context, input *RescheduleInput) (*ApplyChangeOutput, error) {
	if input == nil {
		return nil, badInput("input cannot be nil")
	}
	return s.ApplyChange(ctx, &ApplyChangeInput{
		Table:    input.Table,
		Selector: input.Selector,
		Date:     &input.Date,
		Time:     &input.Time,
	})
}

// ReassignMentor changes the permanent owner of a session
func (s *service) ReassignMentor(ctx context.Context, input *ReassignMentorInput) (*ApplyChangeOutput, error) {
	if input == nil {
		return nil, badInput("input cannot be nil")
	}
	return s.ApplyChange(ctx, &ApplyChangeInput{
		Table:    input.Table,
		Selector: input.Selector,
		MentorID: &input.MentorID,
	})
}

// SwapMentor sets the covering mentor, or removes it when SwappedMentorID is nil.
// Swapping to the owner is the same as removing the cover.
func (s *service) SwapMentor(ctx context.Context, input *SwapMentorInput) (*ApplyChangeOutput, error) {
	if input == nil {
		return nil, badInput("input cannot be nil")
	}
	return s.ApplyChange(ctx, &ApplyChangeInput{
		Table:           input.Table,
		Selector:        input.Selector,
		SwappedMentorID: input.SwappedMentorID,
		ClearSwap:       input.SwappedMentorID == nil,
	})
}

// UpdateDetails changes the subject, topic or type of a session
func (s *service) UpdateDetails(ctx context.Context, input *UpdateDetailsInput) (*ApplyChangeOutput, error) {
	if input == nil {
		return nil, badInput("input cannot be nil")
	}
	return s.ApplyChange(ctx, &ApplyChangeInput{
		Table:        input.Table,
		Selector:     input.Selector,
		SubjectName:  input.SubjectName,
		SubjectTopic: input.SubjectTopic,
		SessionType:  input.SessionType,
	})
}

// ProvisionSession creates the first meeting of a new session.
// Nobody is notified; the announcer sends the first announcement.
func (s *service) ProvisionSession(ctx context.Context, input *ProvisionSessionInput) (*ProvisionSessionOutput, error) {
	if input == nil {
		return nil, badInput("input cannot be nil")
	}
	if err := validateTarget(input.Table, input.Selector); err != nil {
		return nil, err
	}

	out := &ProvisionSessionOutput{}
	sess, unlock, err := s.load(ctx, input.Table, input.Selector, &out.Degraded)
	if err != nil {
		return nil, err
	}
	defer unlock()
	out.SessionID = sess.ID

	after := sess.Clone()
	var res *meeting.ReconcileOutput
	s.call(ctx, &out.Degraded, "meeting", bestEffort, func(ctx context.Context) error {
		var err error
		res, err = s.meetings.Reconcile(ctx, &meeting.ReconcileInput{
			Session:           after,
			PreviousType:      sess.SessionType,
			PreviousLink:      sess.MeetingLink,
			EffectiveMentorID: after.EffectiveMentorID(),
			Cohort:            cohortOf(after.Table),
			NewSession:        true,
			Suppress:          true,
			Duration:          s.meetingDuration,
		})
		return err
	})
	if res != nil {
		out.Meeting = MeetingResult{Action: res.Action, JoinURL: res.JoinURL}
	}

	s.log.Info("session provisioned",
		zap.String("table", input.Table),
		zap.Int64("session_id", sess.ID),
		zap.String("meeting", string(out.Meeting.Action)))
	return out, nil
}

// GetMaterials returns both material lists and their merge
func (s *service) GetMaterials(ctx context.Context, input *GetMaterialsInput) (*GetMaterialsOutput, error) {
	if input == nil {
		return nil, badInput("input cannot be nil")
	}
	if err := validateTarget(input.Table, input.Selector); err != nil {
		return nil, err
	}

	sess, err := s.sessionRepo.GetSession(ctx, &session.GetSessionInput{Table: input.Table, Selector: input.Selector})
	if err != nil {
		return nil, storeError(err)
	}

	return &GetMaterialsOutput{
		Initial: models.ParseLinkList(sess.InitialSessionMaterial),
		Session: models.ParseLinkList(sess.SessionMaterial),
		Merged:  sess.Materials(),
	}, nil
}

// load reads the session and, when a locker is configured, takes its lock and
// reads it again so the change applies to the latest state
func (s *service) load(ctx context.Context, table string, sel session.Selector, degraded *[]string) (*models.Session, func(), error) {
	found, err := s.sessionRepo.GetSession(ctx, &session.GetSessionInput{Table: table, Selector: sel})
	if err != nil {
		return nil, nil, storeError(err)
	}
	if s.locker == nil {
		return found, func() {}, nil
	}

	key := lock.SessionKey(table, found.ID)
	held, err := s.locker.Acquire(ctx, &lock.AcquireInput{Key: key, TTL: s.lockTTL})
	if errors.Is(err, lock.ErrLockHeld) {
		s.log.Info("change rejected",
			zap.String("state", string(StateRejectedBusy)),
			zap.String("key", key))
		return nil, nil, fmt.Errorf("%w: %s", ErrSessionBusy, key)
	}
	if err != nil {
		s.log.Warn("lock unavailable, continuing without it", zap.String("key", key), zap.Error(err))
		*degraded = append(*degraded, "lock")
		return found, func() {}, nil
	}

	release := func() {
		rctx, cancel := s.detached(ctx)
		defer cancel()
		if err := s.locker.Release(rctx, &lock.ReleaseInput{Key: held.Key, Token: held.Token}); err != nil {
			s.log.Warn("failed to release lock", zap.String("key", key), zap.Error(err))
		}
	}

	fresh, err := s.sessionRepo.GetSession(ctx, &session.GetSessionInput{Table: table, Selector: session.Selector{ID: found.ID}})
	if err != nil {
		release()
		return nil, nil, storeError(err)
	}
	return fresh, release, nil
}

func (s *service) checkConflict(ctx context.Context, after *models.Session, mentorID int64, degraded *[]string) error {
	var res *conflict.CheckOutput
	s.call(ctx, degraded, "conflict_check", bestEffort, func(ctx context.Context) error {
		var err error
		res, err = s.detector.Check(ctx, &conflict.CheckInput{
			MentorID: mentorID,
			Date:     after.Date,
			Time:     after.Time,
			Exclude:  conflict.SessionRef{Table: after.Table, ID: after.ID},
		})
		return err
	})
	if res == nil || res.Conflict == nil {
		return nil
	}

	c := res.Conflict
	s.log.Info("change rejected",
		zap.String("state", string(StateRejectedConflict)),
		zap.Int64("mentor_id", mentorID),
		zap.String("conflict_table", c.Table),
		zap.Int64("conflict_session_id", c.SessionID))
	return &ConflictError{
		MentorID:  mentorID,
		Table:     c.Table,
		Cohort:    c.Cohort,
		Subject:   c.Subject,
		SessionID: c.SessionID,
	}
}

func (s *service) reconcileMeeting(ctx context.Context, before, after *models.Session, change recipients.Change, suppress bool, out *ApplyChangeOutput) {
	duration := s.meetingDuration
	if change.Kind == recipients.KindMentorSwapped {
		duration = s.swapMeetingDuration
	}

	var res *meeting.ReconcileOutput
	s.call(ctx, &out.Degraded, "meeting", bestEffort, func(ctx context.Context) error {
		var err error
		res, err = s.meetings.Reconcile(ctx, &meeting.ReconcileInput{
			Session:           after,
			PreviousType:      before.SessionType,
			PreviousLink:      before.MeetingLink,
			EffectiveMentorID: after.EffectiveMentorID(),
			Cohort:            cohortOf(after.Table),
			Suppress:          suppress,
			Duration:          duration,
		})
		return err
	})
	if res != nil {
		out.Meeting = MeetingResult{Action: res.Action, JoinURL: res.JoinURL}
	}
}

func (s *service) notify(ctx context.Context, before, after *models.Session, change recipients.Change, out *ApplyChangeOutput) {
	var resolved *recipients.ResolveOutput
	s.call(ctx, &out.Degraded, "resolve_recipients", bestEffort, func(ctx context.Context) error {
		var err error
		resolved, err = s.resolver.Resolve(ctx, &recipients.ResolveInput{
			Change: change,
			Before: before,
			After:  after,
		})
		return err
	})
	if resolved == nil {
		return
	}

	details := &messaging.Details{
		Session:    after,
		MentorName: mentorName(resolved.Recipients, after.EffectiveMentorID()),
	}
	if change.Rescheduled {
		details.PreviousDate = before.Date
		details.PreviousTime = before.Time
	}

	var dispatched *notify.DispatchOutput
	s.call(ctx, &out.Degraded, "dispatch", bestEffortPaced, func(ctx context.Context) error {
		var err error
		dispatched, err = s.dispatcher.Dispatch(ctx, &notify.DispatchInput{
			Recipients: resolved.Recipients,
			Details:    details,
		})
		return err
	})
	out.Dispatch = dispatched
	out.Notified = dispatched != nil
}

// resetFlags clears both announcement flags. It runs detached from the
// request so a caller hanging up mid-dispatch still leaves a retryable record.
// The change itself is already stored, so a failure is reported as degraded.
func (s *service) resetFlags(ctx context.Context, after *models.Session, degraded *[]string) bool {
	dctx, cancel := s.detached(ctx)
	defer cancel()

	f := false
	failed := false
	s.call(dctx, degraded, "reset_flags", bestEffort, func(ctx context.Context) error {
		err := s.sessionRepo.UpdateSession(ctx, &session.UpdateSessionInput{
			Table:    after.Table,
			Selector: session.Selector{ID: after.ID},
			Patch:    &session.Patch{EmailSent: &f, WhatsappSent: &f},
		})
		failed = err != nil
		return err
	})
	if failed {
		s.log.Error("announcement flags left set on a changed session",
			zap.String("table", after.Table),
			zap.Int64("session_id", after.ID))
		return false
	}
	after.EmailSent = false
	after.WhatsappSent = false
	return true
}

func (s *service) record(ctx context.Context, before, after *models.Session, out *ApplyChangeOutput) {
	if s.audit == nil {
		return
	}
	entry := &AuditEntry{
		At:          s.clock.Now(),
		Table:       after.Table,
		SessionID:   after.ID,
		Kind:        out.Kind,
		Rescheduled: out.Rescheduled,
		Before:      before,
		After:       after,
		Meeting:     out.Meeting,
		Notified:    out.Notified,
		Dispatch:    out.Dispatch,
		FlagsReset:  out.FlagsReset,
		Degraded:    append([]string(nil), out.Degraded...),
	}
	s.call(ctx, &out.Degraded, "audit", bestEffort, func(ctx context.Context) error {
		return s.audit.Record(ctx, entry)
	})
}

func (s *service) detached(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.callTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}

func validateTarget(table string, sel session.Selector) error {
	if strings.TrimSpace(table) == "" {
		return badInput("table is required")
	}
	if !sel.Valid() {
		return badInput("selector must be one of id, date+time or date+mentor")
	}
	return nil
}

func validateChange(in *ApplyChangeInput) error {
	if in == nil {
		return badInput("input cannot be nil")
	}
	if err := validateTarget(in.Table, in.Selector); err != nil {
		return err
	}
	if in.empty() {
		return badInput("no change requested")
	}
	if in.Date != nil && !models.ValidDate(*in.Date) {
		return badInput("date must be YYYY-MM-DD")
	}
	if in.Time != nil && !models.ValidTime(*in.Time) {
		return badInput("time must be HH:MM")
	}
	if in.MentorID != nil && *in.MentorID <= 0 {
		return badInput("mentor id must be positive")
	}
	if !in.ClearSwap && in.SwappedMentorID != nil && *in.SwappedMentorID <= 0 {
		return badInput("swapped mentor id must be positive")
	}
	if in.SubjectName != nil && strings.TrimSpace(*in.SubjectName) == "" {
		return badInput("subject name cannot be blank")
	}
	if in.SessionType != nil && !in.SessionType.Valid() {
		return badInput("session type must be normal or contest")
	}
	return nil
}

// applyFields returns the session as it will look after the change
func applyFields(before *models.Session, in *ApplyChangeInput) *models.Session {
	after := before.Clone()

	if in.Date != nil {
		after.Date = *in.Date
		if day, err := models.WeekdayName(after.Date); err == nil {
			after.Day = day
		}
	}
	if in.Time != nil {
		after.Time = *in.Time
	}
	if in.MentorID != nil {
		after.MentorID = *in.MentorID
	}
	if in.ClearSwap {
		after.SwappedMentorID = nil
	} else if in.SwappedMentorID != nil {
		cover := *in.SwappedMentorID
		after.SwappedMentorID = &cover
	}
	// an owner never covers their own session
	if after.SwappedMentorID != nil && *after.SwappedMentorID == after.MentorID {
		after.SwappedMentorID = nil
	}
	if in.SubjectName != nil {
		after.SubjectName = strings.TrimSpace(*in.SubjectName)
	}
	if in.SubjectTopic != nil {
		after.SubjectTopic = *in.SubjectTopic
	}
	if in.SessionType != nil {
		after.SessionType = *in.SessionType
	}
	return after
}

// buildPatch lists the fields that differ. A contest never keeps a meeting link.
func buildPatch(before, after *models.Session) *session.Patch {
	p := &session.Patch{}
	if after.Date != before.Date {
		p.Date = &after.Date
		p.Day = &after.Day
	}
	if after.Time != before.Time {
		p.Time = &after.Time
	}
	if after.MentorID != before.MentorID {
		p.MentorID = &after.MentorID
	}
	switch {
	case after.SwappedMentorID == nil && before.SwappedMentorID != nil:
		p.ClearSwappedMentorID = true
	case after.SwappedMentorID != nil && (before.SwappedMentorID == nil || *before.SwappedMentorID != *after.SwappedMentorID):
		p.SwappedMentorID = after.SwappedMentorID
	}
	if after.SubjectName != before.SubjectName {
		p.SubjectName = &after.SubjectName
	}
	if after.SubjectTopic != before.SubjectTopic {
		p.SubjectTopic = &after.SubjectTopic
	}
	if after.SessionType != before.SessionType {
		p.SessionType = &after.SessionType
	}
	if after.SessionType.IsContest() && after.MeetingLink != nil {
		p.ClearMeetingLink = true
	}
	return p
}

func storeError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	case errors.Is(err, session.ErrInvalidTable), errors.Is(err, session.ErrInvalidSelector):
		return fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	return err
}

func cohortOf(table string) *models.Cohort {
	c, err := models.ParseCohort(table)
	if err != nil {
		return nil
	}
	return c
}

func mentorName(resolved []*recipients.Recipient, mentorID int64) string {
	for _, r := range resolved {
		if r.Audience == recipients.AudienceMentor && r.Contact != nil && r.Contact.ID == mentorID {
			return r.Contact.Name
		}
	}
	return ""
}
