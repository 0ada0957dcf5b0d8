package conflict

//go:generate mockgen -package=mocks -destination=mocks/mock_detector.go github.com/KirkDiggler/mentorcast/internal/services/conflict Detector

import "context"

// Detector finds mentor double-bookings across every schedule table
type Detector interface {
	// Check returns the first session where the mentor is already committed at the slot
	Check(ctx context.Context, input *CheckInput) (*CheckOutput, error)
}
