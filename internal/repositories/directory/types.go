package directory

import "github.com/KirkDiggler/mentorcast/internal/models"

// ListCohortStudentsInput contains parameters for listing a cohort's students
type ListCohortStudentsInput struct {
	Cohort *models.Cohort
}

// ListCohortStudentsOutput contains a cohort's students
type ListCohortStudentsOutput struct {
	Students []*models.Contact
}

// GetMentorInput contains parameters for retrieving a mentor
type GetMentorInput struct {
	MentorID int64
}

// ListAdministratorsOutput contains every administrator
type ListAdministratorsOutput struct {
	Administrators []*models.Contact
}
