package notify

// NotifyError is the error type returned by the dispatcher
type NotifyError string

// Error implements the error interface
func (e NotifyError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    NotifyError = "config cannot be nil"
	ErrNilMessaging NotifyError = "messaging service cannot be nil"
	ErrNilDetails   NotifyError = "dispatch details cannot be nil"
)
