package announcer

//go:generate mockgen -package=mocks -destination=mocks/mock_announcer.go github.com/KirkDiggler/mentorcast/internal/services/announcer Announcer

import "context"

// Announcer sends the first announcement of upcoming sessions and retries
// the channels that have not gone out yet
type Announcer interface {
	// Announce runs one pass over the schedule tables
	Announce(ctx context.Context, input *AnnounceInput) (*AnnounceOutput, error)
}
