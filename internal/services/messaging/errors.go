package messaging

// MessagingError is the error type returned by the messaging service
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

const (
	ErrNilDetails     MessagingError = "message details cannot be nil"
	ErrNilRecipient   MessagingError = "recipient cannot be nil"
	ErrUnknownVariant MessagingError = "no message for variant"
)
