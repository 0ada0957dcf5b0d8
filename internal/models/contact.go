package models

// Contact is anyone the service can notify
type Contact struct {
	// ID is the directory id, zero for contacts without one
	ID int64

	Name  string
	Email string
	Phone string
}
