package recipients

//go:generate mockgen -package=mocks -destination=mocks/mock_resolver.go github.com/KirkDiggler/mentorcast/internal/services/recipients Resolver

import "context"

// Resolver decides who hears about a session change and with which message
type Resolver interface {
	// Resolve returns the ordered notification targets for a classified change
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}
