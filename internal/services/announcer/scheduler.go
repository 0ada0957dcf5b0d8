package announcer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs announcement passes on a cron schedule
type Scheduler struct {
	cron      *cron.Cron
	announcer Announcer
	timeout   time.Duration
	log       *zap.Logger

	mu      sync.Mutex
	started bool
}

// NewScheduler parses the spec and registers the pass. Overlapping runs are skipped.
func NewScheduler(cfg *SchedulerConfig) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Announcer == nil {
		return nil, ErrNilAnnouncer
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("announcer.cron")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}

	cl := cronLogger{log.Sugar()}
	s := &Scheduler{
		cron:      cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		announcer: cfg.Announcer,
		timeout:   timeout,
		log:       log,
	}

	if _, err := s.cron.AddFunc(cfg.Spec, s.run); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidCronSpec, cfg.Spec, err)
	}
	return s, nil
}

// Start begins running passes in the background
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrSchedulerStarted
	}
	s.started = true
	s.cron.Start()
	s.log.Info("announcer scheduled", zap.Time("next", s.Next()))
	return nil
}

// Stop prevents new passes and waits for a running one or ctx, whichever ends first
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn("stopped waiting for running pass", zap.Error(ctx.Err()))
	}
}

// Next returns when the next pass fires, zero before Start
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// RunOnce performs a single pass outside the schedule
func (s *Scheduler) RunOnce(ctx context.Context) (*AnnounceOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.announcer.Announce(ctx, &AnnounceInput{})
}

func (s *Scheduler) run() {
	if _, err := s.RunOnce(context.Background()); err != nil {
		s.log.Error("announcement pass failed", zap.Error(err))
	}
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
