package recipients

import (
	"context"
	"strconv"
	"strings"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/repositories/directory"
	"go.uber.org/zap"
)

// service implements the Resolver interface
type service struct {
	directoryRepo directory.Repository
	log           *zap.Logger
}

// New creates a new recipient resolver
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DirectoryRepo == nil {
		return nil, ErrNilDirectoryRepo
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		directoryRepo: cfg.DirectoryRepo,
		log:           log.Named("recipients"),
	}, nil
}

// mentorNotice is a mentor id paired with the variant they should receive
type mentorNotice struct {
	id      int64
	variant Variant
}

// plan is the audience-level decision before any directory lookup
type plan struct {
	mentors        []mentorNotice
	studentVariant Variant
	notifyStudents bool
	adminVariant   Variant
}

// Resolve applies the per-kind rules and looks up every contact
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.After == nil {
		return nil, ErrNilSession
	}
	if !input.Change.Kind.Valid() {
		return nil, ErrUnknownKind
	}
	if input.Before == nil && input.Change.Kind != KindNewSession {
		return nil, ErrNilSession
	}

	p := planFor(input)
	out := &ResolveOutput{}
	seen := make(map[string]struct{})

	add := func(audience Audience, c *models.Contact, v Variant) {
		if c == nil {
			return
		}
		key := contactKey(c) + "|" + string(v)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out.Recipients = append(out.Recipients, &Recipient{Audience: audience, Contact: c, Variant: v})
	}

	for _, m := range p.mentors {
		if m.id == 0 {
			continue
		}
		contact, err := s.directoryRepo.GetMentor(ctx, &directory.GetMentorInput{MentorID: m.id})
		if err != nil {
			s.log.Warn("mentor lookup failed, skipping",
				zap.Int64("mentor_id", m.id),
				zap.Error(err))
			out.Skipped = append(out.Skipped, "mentor:"+strconv.FormatInt(m.id, 10))
			continue
		}
		add(AudienceMentor, contact, m.variant)
	}

	if p.notifyStudents {
		students, err := s.students(ctx, input.After.Table)
		if err != nil {
			s.log.Warn("student lookup failed, skipping students",
				zap.String("table", input.After.Table),
				zap.Error(err))
			out.Skipped = append(out.Skipped, string(AudienceStudent))
		}
		for _, st := range students {
			add(AudienceStudent, st, p.studentVariant)
		}
	}

	admins, err := s.directoryRepo.ListAdministrators(ctx)
	if err != nil {
		s.log.Warn("administrator lookup failed, skipping administrators", zap.Error(err))
		out.Skipped = append(out.Skipped, string(AudienceAdmin))
	} else {
		for _, a := range admins.Administrators {
			add(AudienceAdmin, a, p.adminVariant)
		}
	}

	return out, nil
}

func (s *service) students(ctx context.Context, table string) ([]*models.Contact, error) {
	cohort, err := models.ParseCohort(table)
	if err != nil {
		return nil, err
	}
	out, err := s.directoryRepo.ListCohortStudents(ctx, &directory.ListCohortStudentsInput{Cohort: cohort})
	if err != nil {
		return nil, err
	}
	return out.Students, nil
}

func planFor(input *ResolveInput) plan {
	before, after := input.Before, input.After
	change := input.Change

	switch change.Kind {
	case KindReschedule:
		return plan{
			mentors:        []mentorNotice{{after.EffectiveMentorID(), VariantRescheduled}},
			notifyStudents: true,
			studentVariant: VariantRescheduled,
			adminVariant:   VariantRescheduled,
		}

	case KindDetailsUpdated:
		return plan{
			mentors:        []mentorNotice{{after.EffectiveMentorID(), VariantDetailsUpdated}},
			notifyStudents: true,
			studentVariant: VariantDetailsUpdated,
			adminVariant:   VariantDetailsUpdated,
		}

	case KindMentorReassigned:
		p := plan{
			mentors: []mentorNotice{
				{before.MentorID, VariantMentorRemoved},
				{after.MentorID, VariantMentorAssigned},
			},
			adminVariant: VariantMentorChanged,
		}
		if change.Rescheduled {
			p.notifyStudents = true
			p.studentVariant = VariantRescheduled
		}
		return p

	case KindMentorSwapped:
		return swapPlan(before, after, change)

	default:
		return plan{
			mentors:        []mentorNotice{{after.EffectiveMentorID(), VariantAnnounced}},
			notifyStudents: true,
			studentVariant: VariantAnnounced,
			adminVariant:   VariantAnnounced,
		}
	}
}

// swapPlan informs the owner, the incoming cover and any outgoing cover.
// A bundled owner change also informs the outgoing owner.
// Students hear about it only once the session has been announced.
func swapPlan(before, after *models.Session, change Change) plan {
	p := plan{adminVariant: VariantMentorChanged}

	newCover := after.SwappedMentorID
	prevCover := before.SwappedMentorID

	ownerVariant := VariantMentorRestored
	if newCover != nil {
		ownerVariant = VariantMentorCovered
	}
	if change.OwnerChanged {
		ownerVariant = VariantMentorAssigned
		if newCover == nil || *newCover != before.MentorID {
			p.mentors = append(p.mentors, mentorNotice{before.MentorID, VariantMentorRemoved})
		}
	}

	p.mentors = append(p.mentors, mentorNotice{after.MentorID, ownerVariant})
	if newCover != nil {
		p.mentors = append(p.mentors, mentorNotice{*newCover, VariantCoverageAssigned})
	}

	if prevCover != nil && (newCover == nil || *prevCover != *newCover) && *prevCover != after.MentorID {
		p.mentors = append(p.mentors, mentorNotice{*prevCover, VariantCoverageRemoved})
	}

	if before.HasBeenAnnounced() || change.Rescheduled {
		p.notifyStudents = true
		p.studentVariant = VariantMentorChanged
		if change.Rescheduled {
			p.studentVariant = VariantRescheduled
		}
	}
	return p
}

// contactKey identifies a contact across directory tables
func contactKey(c *models.Contact) string {
	if email := strings.ToLower(strings.TrimSpace(c.Email)); email != "" {
		return "email:" + email
	}
	if phone := strings.TrimSpace(c.Phone); phone != "" {
		return "phone:" + phone
	}
	return "id:" + strconv.FormatInt(c.ID, 10) + ":" + c.Name
}
