package schedule

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mentorcast/internal/services/schedule Service
//go:generate mockgen -package=mocks -destination=mocks/mock_audit_sink.go github.com/KirkDiggler/mentorcast/internal/services/schedule AuditSink

import "context"

// Service applies changes to scheduled sessions and carries out their consequences
type Service interface {
	// ApplyChange runs one change through conflict checking, persistence,
	// meeting reconciliation, notification and flag bookkeeping
	ApplyChange(ctx context.Context, input *ApplyChangeInput) (*ApplyChangeOutput, error)

	// Reschedule moves a session to a new date and time
	Reschedule(ctx context.Context, input *RescheduleInput) (*ApplyChangeOutput, error)

	// ReassignMentor changes the permanent owner of a session
	ReassignMentor(ctx context.Context, input *ReassignMentorInput) (*ApplyChangeOutput, error)

	// SwapMentor sets or removes the covering mentor of a session
	SwapMentor(ctx context.Context, input *SwapMentorInput) (*ApplyChangeOutput, error)

	// UpdateDetails changes the subject, topic or type of a session
	UpdateDetails(ctx context.Context, input *UpdateDetailsInput) (*ApplyChangeOutput, error)

	// ProvisionSession creates the first meeting of a freshly created session
	ProvisionSession(ctx context.Context, input *ProvisionSessionInput) (*ProvisionSessionOutput, error)

	// GetMaterials returns the session's material links merged for display
	GetMaterials(ctx context.Context, input *GetMaterialsInput) (*GetMaterialsOutput, error)
}

// AuditSink records applied changes for operators
type AuditSink interface {
	Record(ctx context.Context, entry *AuditEntry) error
}
