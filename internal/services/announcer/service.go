package announcer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/common/clock"
	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/repositories/lock"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"github.com/KirkDiggler/mentorcast/internal/services/messaging"
	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"go.uber.org/zap"
)

type service struct {
	sessionRepo session.Repository
	resolver    recipients.Resolver
	dispatcher  notify.Dispatcher
	locker      lock.Locker
	lockTTL     time.Duration
	clock       clock.Clock
	location    *time.Location
	windowDays  int
	log         *zap.Logger
}

// New creates a new announcer
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}
	if cfg.Dispatcher == nil {
		return nil, ErrNilDispatcher
	}
	if cfg.WindowDays < 0 {
		return nil, ErrInvalidWindow
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
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
		sessionRepo: cfg.SessionRepo,
		resolver:    cfg.Resolver,
		dispatcher:  cfg.Dispatcher,
		locker:      cfg.Locker,
		lockTTL:     cfg.LockTTL,
		clock:       clk,
		location:    loc,
		windowDays:  cfg.WindowDays,
		log:         log.Named("announcer"),
	}, nil
}

// Announce finds sessions from today through the window that are missing an
// announcement on some channel and sends it. A failing table or session is
// counted and skipped; only context cancellation ends the pass early.
func (s *service) Announce(ctx context.Context, input *AnnounceInput) (*AnnounceOutput, error) {
	if input == nil {
		input = &AnnounceInput{}
	}

	tables := input.Tables
	if len(tables) == 0 {
		var err error
		tables, err = s.sessionRepo.ListScheduleTables(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list schedule tables: %w", err)
		}
	}

	today := s.clock.Now().In(s.location)
	from := today.Format(models.DateLayout)
	to := today.AddDate(0, 0, s.windowDays).Format(models.DateLayout)

	out := &AnnounceOutput{Tables: len(tables)}
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		pending, err := s.sessionRepo.ListPendingAnnouncements(ctx, &session.ListPendingAnnouncementsInput{
			Table:    table,
			FromDate: from,
			ToDate:   to,
		})
		if err != nil {
			s.log.Warn("could not list pending sessions", zap.String("table", table), zap.Error(err))
			out.Failed++
			continue
		}

		for _, sess := range pending.Sessions {
			out.Pending++
			if err := s.announce(ctx, sess, out); err != nil {
				return out, err
			}
		}
	}

	s.log.Info("announcement pass finished",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("tables", out.Tables),
		zap.Int("pending", out.Pending),
		zap.Int("announced", out.Announced),
		zap.Int("busy", out.Busy),
		zap.Int("failed", out.Failed))
	return out, nil
}

// announce handles one session. It only returns an error when ctx is done.
func (s *service) announce(ctx context.Context, sess *models.Session, out *AnnounceOutput) error {
	log := s.log.With(zap.String("table", sess.Table), zap.Int64("session_id", sess.ID))

	if s.locker != nil {
		held, err := s.locker.Acquire(ctx, &lock.AcquireInput{Key: lock.SessionKey(sess.Table, sess.ID), TTL: s.lockTTL})
		switch {
		case errors.Is(err, lock.ErrLockHeld):
			log.Info("session busy, leaving it for the next pass")
			out.Busy++
			return nil
		case err != nil:
			log.Warn("lock unavailable, continuing without it", zap.Error(err))
		default:
			defer func() {
				if err := s.locker.Release(context.WithoutCancel(ctx), &lock.ReleaseInput{Key: held.Key, Token: held.Token}); err != nil {
					log.Warn("failed to release lock", zap.Error(err))
				}
			}()

			// a change may have landed between listing and locking
			fresh, err := s.sessionRepo.GetSession(ctx, &session.GetSessionInput{
				Table:    sess.Table,
				Selector: session.Selector{ID: sess.ID},
			})
			if err != nil {
				log.Warn("could not reload session", zap.Error(err))
				out.Failed++
				return nil
			}
			sess = fresh
		}
	}

	if sess.EmailSent && sess.WhatsappSent {
		return nil
	}

	resolved, err := s.resolver.Resolve(ctx, &recipients.ResolveInput{
		Change: recipients.Change{Kind: recipients.KindNewSession},
		After:  sess,
	})
	if err != nil {
		log.Warn("could not resolve recipients", zap.Error(err))
		out.Failed++
		return nil
	}

	dispatched, err := s.dispatcher.Dispatch(ctx, &notify.DispatchInput{
		Recipients: resolved.Recipients,
		Details: &messaging.Details{
			Session:    sess,
			MentorName: mentorName(resolved.Recipients, sess.EffectiveMentorID()),
		},
		SkipEmail:    sess.EmailSent,
		SkipMessages: sess.WhatsappSent,
	})
	if err != nil {
		return err
	}

	patch := flagPatch(sess, dispatched)
	if patch.Empty() {
		log.Info("nothing delivered, will retry", zap.Int("skipped", dispatched.Skipped))
		out.Failed++
		return nil
	}

	err = s.sessionRepo.UpdateSession(ctx, &session.UpdateSessionInput{
		Table:    sess.Table,
		Selector: session.Selector{ID: sess.ID},
		Patch:    patch,
	})
	if err != nil {
		log.Warn("could not mark session announced", zap.Error(err))
		out.Failed++
		return nil
	}

	out.Announced++
	log.Info("session announced",
		zap.Bool("email", patch.EmailSent != nil),
		zap.Bool("whatsapp", patch.WhatsappSent != nil))
	return nil
}

// flagPatch marks a channel announced when at least one send on it succeeded
// or when it had nothing to send
func flagPatch(sess *models.Session, d *notify.DispatchOutput) *session.Patch {
	t := true
	p := &session.Patch{}
	if !sess.EmailSent && (d.EmailsSent > 0 || d.EmailsFailed == 0) {
		p.EmailSent = &t
	}
	if !sess.WhatsappSent && (d.MessagesSent > 0 || d.MessagesFailed == 0) {
		p.WhatsappSent = &t
	}
	return p
}

func mentorName(resolved []*recipients.Recipient, mentorID int64) string {
	for _, r := range resolved {
		if r.Audience == recipients.AudienceMentor && r.Contact != nil && r.Contact.ID == mentorID {
			return r.Contact.Name
		}
	}
	return ""
}
