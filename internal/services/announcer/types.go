package announcer

import (
	"time"

	"github.com/KirkDiggler/mentorcast/internal/common/clock"
	"github.com/KirkDiggler/mentorcast/internal/repositories/lock"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"go.uber.org/zap"
)

// Config holds configuration for the announcer
type Config struct {
	SessionRepo session.Repository
	Resolver    recipients.Resolver
	Dispatcher  notify.Dispatcher

	// Locker is optional
	Locker  lock.Locker
	LockTTL time.Duration

	Clock clock.Clock

	// Location decides which calendar day "today" is
	Location *time.Location

	// WindowDays is how many days past today are announced
	WindowDays int
	Logger     *zap.Logger
}

// AnnounceInput limits a pass to some tables; empty means every schedule table
type AnnounceInput struct {
	Tables []string
}

// AnnounceOutput tallies one pass
type AnnounceOutput struct {
	Tables    int
	Pending   int
	Announced int

	// Busy counts sessions skipped because a change held their lock
	Busy int

	// Failed counts sessions or tables that could not be processed
	Failed int
}

// SchedulerConfig holds configuration for the cron scheduler
type SchedulerConfig struct {
	// Spec is a standard five field cron expression
	Spec      string
	Announcer Announcer

	// Timeout bounds one scheduled pass
	Timeout time.Duration
	Logger  *zap.Logger
}
