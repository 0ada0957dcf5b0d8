package conflict

// DetectorError is the error type returned by the conflict detector
type DetectorError string

// Error implements the error interface
func (e DetectorError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      DetectorError = "config cannot be nil"
	ErrNilSessionRepo DetectorError = "session repository cannot be nil"
	ErrInvalidInput   DetectorError = "mentor, date and time are required"
)
