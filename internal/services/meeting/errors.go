package meeting

// MeetingError is the error type returned by the meeting manager
type MeetingError string

// Error implements the error interface
func (e MeetingError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           MeetingError = "config cannot be nil"
	ErrNilSessionRepo      MeetingError = "session repository cannot be nil"
	ErrNilDirectoryRepo    MeetingError = "directory repository cannot be nil"
	ErrNilSession          MeetingError = "session cannot be nil"
	ErrInvalidDuration     MeetingError = "meeting duration must be positive"
	ErrProviderUnavailable MeetingError = "meeting provider is not configured"
	ErrEmptyJoinURL        MeetingError = "provider returned an empty join url"
)
