package conflict

import (
	"context"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"go.uber.org/zap"
)

// service implements the Detector interface
type service struct {
	sessionRepo session.Repository
	log         *zap.Logger
}

// New creates a new conflict detector
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		log:         log.Named("conflict"),
	}, nil
}

// Check scans the tables in order and stops at the first session holding the mentor.
// Infrastructure failures never block: an unreadable table is skipped.
func (s *service) Check(ctx context.Context, input *CheckInput) (*CheckOutput, error) {
	if input == nil || input.MentorID == 0 || input.Date == "" || input.Time == "" {
		return nil, ErrInvalidInput
	}

	out := &CheckOutput{}

	tables, err := s.sessionRepo.ListScheduleTables(ctx)
	if err != nil {
		s.log.Warn("could not list schedule tables, skipping conflict check", zap.Error(err))
		return out, nil
	}

	for _, table := range tables {
		found, err := s.sessionRepo.ListSessionsAt(ctx, &session.ListSessionsAtInput{
			Table: table,
			Date:  input.Date,
			Time:  input.Time,
		})
		if err != nil {
			s.log.Warn("skipping schedule table",
				zap.String("table", table),
				zap.Error(err))
			out.SkippedTables = append(out.SkippedTables, table)
			continue
		}

		for _, candidate := range found.Sessions {
			if table == input.Exclude.Table && candidate.ID == input.Exclude.ID {
				continue
			}
			if !MentorCommitted(candidate, input.MentorID) {
				continue
			}

			out.Conflict = &Conflict{
				Table:     table,
				SessionID: candidate.ID,
				Cohort:    cohortLabel(table),
				Subject:   candidate.SubjectName,
			}
			s.log.Info("mentor conflict",
				zap.Int64("mentor_id", input.MentorID),
				zap.String("table", table),
				zap.Int64("session_id", candidate.ID))
			return out, nil
		}
	}

	return out, nil
}

// MentorCommitted reports whether the mentor teaches the session.
// An owner swapped away is free; a covering mentor is committed.
func MentorCommitted(s *models.Session, mentorID int64) bool {
	if s.SwappedMentorID != nil {
		return *s.SwappedMentorID == mentorID
	}
	return s.MentorID == mentorID
}

func cohortLabel(table string) string {
	cohort, err := models.ParseCohort(table)
	if err != nil {
		return table
	}
	return cohort.Label()
}
