package announcer

// AnnouncerError is the error type returned by the announcer
type AnnouncerError string

// Error implements the error interface
func (e AnnouncerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        AnnouncerError = "config cannot be nil"
	ErrNilSessionRepo   AnnouncerError = "session repository cannot be nil"
	ErrNilResolver      AnnouncerError = "recipient resolver cannot be nil"
	ErrNilDispatcher    AnnouncerError = "dispatcher cannot be nil"
	ErrNilAnnouncer     AnnouncerError = "announcer cannot be nil"
	ErrInvalidWindow    AnnouncerError = "window days cannot be negative"
	ErrInvalidCronSpec  AnnouncerError = "invalid cron spec"
	ErrSchedulerStarted AnnouncerError = "scheduler already started"
)
