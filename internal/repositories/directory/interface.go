package directory

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mentorcast/internal/repositories/directory Repository

import (
	"context"

	"github.com/KirkDiggler/mentorcast/internal/models"
)

// Repository looks up the people a session change concerns
type Repository interface {
	// ListCohortStudents retrieves every student enrolled in a cohort
	ListCohortStudents(ctx context.Context, input *ListCohortStudentsInput) (*ListCohortStudentsOutput, error)

	// GetMentor retrieves a mentor's contact details
	GetMentor(ctx context.Context, input *GetMentorInput) (*models.Contact, error)

	// ListAdministrators retrieves every administrator
	ListAdministrators(ctx context.Context) (*ListAdministratorsOutput, error)
}
