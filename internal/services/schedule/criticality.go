package schedule

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// criticality declares how a failed external call propagates
type criticality int

const (
	// mandatory failures abort the request
	mandatory criticality = iota

	// bestEffort failures are logged, noted as degraded and skipped
	bestEffort

	// bestEffortPaced is best effort without the call timeout, for loops that pace themselves
	bestEffortPaced
)

func (c criticality) String() string {
	switch c {
	case mandatory:
		return "mandatory"
	case bestEffortPaced:
		return "best_effort_paced"
	}
	return "best_effort"
}

// call runs one external step. Best-effort steps get their own timeout.
func (s *service) call(ctx context.Context, degraded *[]string, step string, c criticality, fn func(ctx context.Context) error) error {
	if c == bestEffort && s.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
	}

	err := fn(ctx)
	if err == nil {
		return nil
	}

	if c == mandatory {
		return fmt.Errorf("%s: %w", step, err)
	}

	s.log.Warn("best-effort step failed",
		zap.String("step", step),
		zap.Stringer("criticality", c),
		zap.Error(err))
	if degraded != nil {
		*degraded = append(*degraded, step)
	}
	return nil
}
