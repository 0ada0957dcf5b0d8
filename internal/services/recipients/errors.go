package recipients

// ResolverError is the error type returned by the recipient resolver
type ResolverError string

// Error implements the error interface
func (e ResolverError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        ResolverError = "config cannot be nil"
	ErrNilDirectoryRepo ResolverError = "directory repository cannot be nil"
	ErrNilSession       ResolverError = "session cannot be nil"
	ErrUnknownKind      ResolverError = "unknown change kind"
	ErrNoChange         ResolverError = "session did not change"
)
