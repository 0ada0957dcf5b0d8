package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mentorcast/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/mentorcast/internal/models"
)

// Repository defines access to sessions stored in per-cohort schedule tables
type Repository interface {
	// GetSession retrieves exactly one session matching the selector
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// UpdateSession applies a patch to exactly one session matching the selector
	UpdateSession(ctx context.Context, input *UpdateSessionInput) error

	// ListSessionsAt retrieves all sessions in a table at a date and time
	ListSessionsAt(ctx context.Context, input *ListSessionsAtInput) (*ListSessionsAtOutput, error)

	// ListScheduleTables returns every schedule table, sorted by name
	ListScheduleTables(ctx context.Context) ([]string, error)

	// ListPendingAnnouncements retrieves sessions in a date window not yet announced on every channel
	ListPendingAnnouncements(ctx context.Context, input *ListPendingAnnouncementsInput) (*ListPendingAnnouncementsOutput, error)
}
