package directory

// DirectoryError is the error type returned by directory repositories
type DirectoryError string

// Error implements the error interface
func (e DirectoryError) Error() string {
	return string(e)
}

const (
	ErrMentorNotFound DirectoryError = "mentor not found"
	ErrNilCohort      DirectoryError = "cohort cannot be nil"
	ErrNilDB          DirectoryError = "database cannot be nil"
	ErrNilBackend     DirectoryError = "backing repository cannot be nil"
	ErrNilRedisClient DirectoryError = "redis client cannot be nil"
)
