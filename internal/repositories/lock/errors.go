package lock

// LockError is the error type returned by lockers
type LockError string

// Error implements the error interface
func (e LockError) Error() string {
	return string(e)
}

const (
	ErrLockHeld       LockError = "lock is held by another request"
	ErrNilRedisClient LockError = "redis client cannot be nil"
	ErrEmptyKey       LockError = "lock key cannot be empty"
)
