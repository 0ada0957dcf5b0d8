package session

// RepositoryError is the error type returned by the session repository
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrSessionNotFound   RepositoryError = "session not found"
	ErrAmbiguousSelector RepositoryError = "selector matches more than one session"
	ErrInvalidSelector   RepositoryError = "selector must be id, date+time or date+mentor"
	ErrInvalidTable      RepositoryError = "invalid schedule table name"
	ErrEmptyPatch        RepositoryError = "patch has no fields"
	ErrNilDB             RepositoryError = "database cannot be nil"
)

// ambiguousError matches both ErrAmbiguousSelector and ErrSessionNotFound
type ambiguousError struct {
	table string
	count int
}

func (e *ambiguousError) Error() string {
	return string(ErrAmbiguousSelector) + " in " + e.table
}

func (e *ambiguousError) Is(target error) bool {
	return target == ErrAmbiguousSelector || target == ErrSessionNotFound
}
