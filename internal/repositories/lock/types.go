package lock

import (
	"fmt"
	"time"
)

// SessionKey builds the lock key for a session in a schedule table
func SessionKey(table string, sessionID int64) string {
	return fmt.Sprintf("session:%s:%d", table, sessionID)
}

// AcquireInput contains parameters for taking a lock
type AcquireInput struct {
	Key string

	// TTL bounds how long a crashed holder can block others
	TTL time.Duration
}

// AcquireOutput identifies the held lock
type AcquireOutput struct {
	Key   string
	Token string
}

// ReleaseInput contains parameters for releasing a lock
type ReleaseInput struct {
	Key   string
	Token string
}
