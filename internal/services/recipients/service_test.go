package recipients

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/mentorcast/internal/models"
	directoryRepo "github.com/KirkDiggler/mentorcast/internal/repositories/directory"
	directoryMocks "github.com/KirkDiggler/mentorcast/internal/repositories/directory/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RecipientResolverTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockDirectoryRepo *directoryMocks.MockRepository
	resolver          Resolver
	ctx               context.Context

	cohort   *models.Cohort
	mentors  map[int64]*models.Contact
	students []*models.Contact
	admins   []*models.Contact
}

func (s *RecipientResolverTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDirectoryRepo = directoryMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	s.cohort = &models.Cohort{Type: "Basic", Number: "6.0"}
	s.mentors = map[int64]*models.Contact{
		7:  {ID: 7, Name: "Asha", Email: "asha@example.com", Phone: "9876543210"},
		42: {ID: 42, Name: "Bilal", Email: "bilal@example.com"},
		43: {ID: 43, Name: "Chen", Email: "chen@example.com"},
	}
	s.students = []*models.Contact{
		{ID: 100, Name: "Ravi", Email: "ravi@example.com"},
		{ID: 101, Name: "Sana", Phone: "9123456780"},
	}
	s.admins = []*models.Contact{{ID: 1, Name: "Ops", Email: "ops@example.com"}}

	resolver, err := New(&Config{DirectoryRepo: s.mockDirectoryRepo})
	s.Require().NoError(err)
	s.resolver = resolver
}

func (s *RecipientResolverTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRecipientResolverSuite(t *testing.T) {
	suite.Run(t, new(RecipientResolverTestSuite))
}

func (s *RecipientResolverTestSuite) expectMentor(id int64) {
	s.mockDirectoryRepo.EXPECT().GetMentor(gomock.Any(), &directoryRepo.GetMentorInput{MentorID: id}).
		Return(s.mentors[id], nil)
}

func (s *RecipientResolverTestSuite) expectStudents() {
	s.mockDirectoryRepo.EXPECT().ListCohortStudents(gomock.Any(), &directoryRepo.ListCohortStudentsInput{Cohort: s.cohort}).
		Return(&directoryRepo.ListCohortStudentsOutput{Students: s.students}, nil)
}

func (s *RecipientResolverTestSuite) expectAdmins() {
	s.mockDirectoryRepo.EXPECT().ListAdministrators(gomock.Any()).
		Return(&directoryRepo.ListAdministratorsOutput{Administrators: s.admins}, nil)
}

func (s *RecipientResolverTestSuite) session() *models.Session {
	return &models.Session{
		ID:          1,
		Table:       "basic6_0_schedule",
		Date:        "2024-01-10",
		Time:        "10:00",
		SubjectName: "Arrays",
		SessionType: models.SessionTypeNormal,
		MentorID:    7,
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

type pick struct {
	audience Audience
	id       int64
	variant  Variant
}

func picks(out *ResolveOutput) []pick {
	var got []pick
	for _, r := range out.Recipients {
		got = append(got, pick{r.Audience, r.Contact.ID, r.Variant})
	}
	return got
}

func (s *RecipientResolverTestSuite) TestClassify() {
	before := s.session()

	after := before.Clone()
	after.Date = "2024-01-12"
	change, err := Classify(before, after)
	s.Require().NoError(err)
	s.Equal(Change{Kind: KindReschedule, Rescheduled: true}, change)

	after = before.Clone()
	after.MentorID = 42
	after.Time = "14:00"
	change, err = Classify(before, after)
	s.Require().NoError(err)
	s.Equal(Change{Kind: KindMentorReassigned, Rescheduled: true}, change)

	after = before.Clone()
	after.SwappedMentorID = int64Ptr(42)
	change, err = Classify(before, after)
	s.Require().NoError(err)
	s.Equal(KindMentorSwapped, change.Kind)
	s.False(change.OwnerChanged)

	after.MentorID = 43
	change, err = Classify(before, after)
	s.Require().NoError(err)
	s.Equal(Change{Kind: KindMentorSwapped, OwnerChanged: true}, change)

	after = before.Clone()
	after.SessionType = models.SessionTypeContest
	change, err = Classify(before, after)
	s.Require().NoError(err)
	s.Equal(KindDetailsUpdated, change.Kind)

	change, err = Classify(nil, before)
	s.Require().NoError(err)
	s.Equal(KindNewSession, change.Kind)

	_, err = Classify(before, before.Clone())
	s.ErrorIs(err, ErrNoChange)
}

func (s *RecipientResolverTestSuite) TestRescheduleNotifiesEveryone() {
	before := s.session()
	before.EmailSent = true
	after := before.Clone()
	after.Date = "2024-01-12"

	s.expectMentor(7)
	s.expectStudents()
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindReschedule, Rescheduled: true}, Before: before, After: after})
	s.Require().NoError(err)
	s.Equal([]pick{
		{AudienceMentor, 7, VariantRescheduled},
		{AudienceStudent, 100, VariantRescheduled},
		{AudienceStudent, 101, VariantRescheduled},
		{AudienceAdmin, 1, VariantRescheduled},
	}, picks(out))
}

func (s *RecipientResolverTestSuite) TestRescheduleNotifiesCoveringMentor() {
	before := s.session()
	before.SwappedMentorID = int64Ptr(42)
	after := before.Clone()
	after.Time = "16:00"

	s.expectMentor(42)
	s.expectStudents()
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindReschedule, Rescheduled: true}, Before: before, After: after})
	s.Require().NoError(err)
	s.Equal(pick{AudienceMentor, 42, VariantRescheduled}, picks(out)[0])
}

func (s *RecipientResolverTestSuite) TestReassignSkipsStudents() {
	before := s.session()
	before.EmailSent = true
	after := before.Clone()
	after.MentorID = 42

	s.expectMentor(7)
	s.expectMentor(42)
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindMentorReassigned}, Before: before, After: after})
	s.Require().NoError(err)
	s.Equal([]pick{
		{AudienceMentor, 7, VariantMentorRemoved},
		{AudienceMentor, 42, VariantMentorAssigned},
		{AudienceAdmin, 1, VariantMentorChanged},
	}, picks(out))
}

func (s *RecipientResolverTestSuite) TestReassignBundledWithRescheduleIncludesStudents() {
	before := s.session()
	after := before.Clone()
	after.MentorID = 42
	after.Date = "2024-01-11"

	s.expectMentor(7)
	s.expectMentor(42)
	s.expectStudents()
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindMentorReassigned, Rescheduled: true}, Before: before, After: after})
	s.Require().NoError(err)
	s.Len(out.Recipients, 5)
	s.Equal(pick{AudienceStudent, 100, VariantRescheduled}, picks(out)[2])
}

func (s *RecipientResolverTestSuite) TestSwapBeforeAnnouncementSkipsStudents() {
	before := s.session()
	after := before.Clone()
	after.SwappedMentorID = int64Ptr(42)

	s.expectMentor(7)
	s.expectMentor(42)
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindMentorSwapped}, Before: before, After: after})
	s.Require().NoError(err)
	s.Equal([]pick{
		{AudienceMentor, 7, VariantMentorCovered},
		{AudienceMentor, 42, VariantCoverageAssigned},
		{AudienceAdmin, 1, VariantMentorChanged},
	}, picks(out))
}

func (s *RecipientResolverTestSuite) TestSwapAfterAnnouncementIncludesStudents() {
	before := s.session()
	before.WhatsappSent = true
	after := before.Clone()
	after.SwappedMentorID = int64Ptr(42)

	s.expectMentor(7)
	s.expectMentor(42)
	s.expectStudents()
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindMentorSwapped}, Before: before, After: after})
	s.Require().NoError(err)
	s.Len(out.Recipients, 5)
	s.Equal(pick{AudienceStudent, 101, VariantMentorChanged}, picks(out)[3])
}

func (s *RecipientResolverTestSuite) TestSwapBetweenCoversNotifiesOutgoingCover() {
	before := s.session()
	before.SwappedMentorID = int64Ptr(42)
	after := before.Clone()
	after.SwappedMentorID = int64Ptr(43)

	s.expectMentor(7)
	s.expectMentor(43)
	s.expectMentor(42)
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindMentorSwapped}, Before: before, After: after})
	s.Require().NoError(err)
	s.Equal([]pick{
		{AudienceMentor, 7, VariantMentorCovered},
		{AudienceMentor, 43, VariantCoverageAssigned},
		{AudienceMentor, 42, VariantCoverageRemoved},
		{AudienceAdmin, 1, VariantMentorChanged},
	}, picks(out))
}

func (s *RecipientResolverTestSuite) TestSameCoverSuppressesCoverageRemoved() {
	before := s.session()
	before.SwappedMentorID = int64Ptr(42)
	after := before.Clone()

	s.expectMentor(7)
	s.expectMentor(42)
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindMentorSwapped}, Before: before, After: after})
	s.Require().NoError(err)
	for _, r := range out.Recipients {
		s.NotEqual(VariantCoverageRemoved, r.Variant)
	}
}

func (s *RecipientResolverTestSuite) TestRemovingSwapRestoresOwner() {
	before := s.session()
	before.SwappedMentorID = int64Ptr(42)
	after := before.Clone()
	after.SwappedMentorID = nil

	s.expectMentor(7)
	s.expectMentor(42)
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindMentorSwapped}, Before: before, After: after})
	s.Require().NoError(err)
	s.Equal([]pick{
		{AudienceMentor, 7, VariantMentorRestored},
		{AudienceMentor, 42, VariantCoverageRemoved},
		{AudienceAdmin, 1, VariantMentorChanged},
	}, picks(out))
}

func (s *RecipientResolverTestSuite) TestNewOwnerWithCoverNotifiesOutgoingOwner() {
	before := s.session()
	after := before.Clone()
	after.MentorID = 43
	after.SwappedMentorID = int64Ptr(42)

	change, err := Classify(before, after)
	s.Require().NoError(err)

	s.expectMentor(7)
	s.expectMentor(43)
	s.expectMentor(42)
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: change, Before: before, After: after})
	s.Require().NoError(err)
	s.Equal([]pick{
		{AudienceMentor, 7, VariantMentorRemoved},
		{AudienceMentor, 43, VariantMentorAssigned},
		{AudienceMentor, 42, VariantCoverageAssigned},
		{AudienceAdmin, 1, VariantMentorChanged},
	}, picks(out))
}

func (s *RecipientResolverTestSuite) TestOwnerHandingOverToFormerCover() {
	before := s.session()
	before.SwappedMentorID = int64Ptr(42)
	after := before.Clone()
	after.MentorID = 42
	after.SwappedMentorID = nil

	s.expectMentor(7)
	s.expectMentor(42)
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{
		Change: Change{Kind: KindMentorSwapped, OwnerChanged: true},
		Before: before,
		After:  after,
	})
	s.Require().NoError(err)
	s.Equal([]pick{
		{AudienceMentor, 7, VariantMentorRemoved},
		{AudienceMentor, 42, VariantMentorAssigned},
		{AudienceAdmin, 1, VariantMentorChanged},
	}, picks(out))
}

func (s *RecipientResolverTestSuite) TestDuplicateContactsCollapse() {
	before := s.session()
	after := before.Clone()
	after.SubjectName = "Linked Lists"

	s.expectMentor(7)
	s.mockDirectoryRepo.EXPECT().ListCohortStudents(gomock.Any(), gomock.Any()).
		Return(&directoryRepo.ListCohortStudentsOutput{Students: []*models.Contact{
			{ID: 100, Email: "ravi@example.com"},
			{ID: 100, Email: "Ravi@Example.com"},
		}}, nil)
	s.mockDirectoryRepo.EXPECT().ListAdministrators(gomock.Any()).
		Return(&directoryRepo.ListAdministratorsOutput{Administrators: []*models.Contact{
			{ID: 7, Email: "asha@example.com"},
		}}, nil)

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindDetailsUpdated}, Before: before, After: after})
	s.Require().NoError(err)
	// a contact already holding the same notice is not added again
	s.Equal([]pick{
		{AudienceMentor, 7, VariantDetailsUpdated},
		{AudienceStudent, 100, VariantDetailsUpdated},
	}, picks(out))
}

func (s *RecipientResolverTestSuite) TestUnresolvableCohortStillNotifiesMentorAndAdmins() {
	before := s.session()
	before.Table = "legacy_schedule"
	after := before.Clone()
	after.Date = "2024-01-12"

	s.expectMentor(7)
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindReschedule, Rescheduled: true}, Before: before, After: after})
	s.Require().NoError(err)
	s.Equal([]string{string(AudienceStudent)}, out.Skipped)
	s.Len(out.Recipients, 2)
}

func (s *RecipientResolverTestSuite) TestMentorLookupFailureSkipsMentor() {
	before := s.session()
	after := before.Clone()
	after.MentorID = 42

	s.mockDirectoryRepo.EXPECT().GetMentor(gomock.Any(), &directoryRepo.GetMentorInput{MentorID: 7}).
		Return(nil, directoryRepo.ErrMentorNotFound)
	s.expectMentor(42)
	s.mockDirectoryRepo.EXPECT().ListAdministrators(gomock.Any()).Return(nil, errors.New("timeout"))

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindMentorReassigned}, Before: before, After: after})
	s.Require().NoError(err)
	s.Equal([]pick{{AudienceMentor, 42, VariantMentorAssigned}}, picks(out))
	s.Equal([]string{"mentor:7", "admin"}, out.Skipped)
}

func (s *RecipientResolverTestSuite) TestNewSessionAnnouncement() {
	after := s.session()

	s.expectMentor(7)
	s.expectStudents()
	s.expectAdmins()

	out, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindNewSession}, After: after})
	s.Require().NoError(err)
	s.Len(out.Recipients, 4)
	for _, r := range out.Recipients {
		s.Equal(VariantAnnounced, r.Variant)
	}
}

func (s *RecipientResolverTestSuite) TestRejectsBadInput() {
	_, err := s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindReschedule}})
	s.ErrorIs(err, ErrNilSession)

	_, err = s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: "moved"}, After: s.session()})
	s.ErrorIs(err, ErrUnknownKind)

	_, err = s.resolver.Resolve(s.ctx, &ResolveInput{Change: Change{Kind: KindReschedule}, After: s.session()})
	s.ErrorIs(err, ErrNilSession)
}
