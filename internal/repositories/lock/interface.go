package lock

//go:generate mockgen -package=mocks -destination=mocks/mock_locker.go github.com/KirkDiggler/mentorcast/internal/repositories/lock Locker

import "context"

// Locker serializes work on a single session across processes
type Locker interface {
	// Acquire takes the lock for a key or fails with ErrLockHeld
	Acquire(ctx context.Context, input *AcquireInput) (*AcquireOutput, error)

	// Release drops the lock if the token still owns it
	Release(ctx context.Context, input *ReleaseInput) error
}
