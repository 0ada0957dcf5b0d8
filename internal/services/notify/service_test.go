package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/mentorcast/internal/common/clock/mocks"
	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/services/messaging"
	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"github.com/KirkDiggler/mentorcast/internal/services/notify/mocks"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DispatcherTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockEmail   *mocks.MockEmailSender
	mockMessage *mocks.MockMessageSender
	mockClock   *clockMocks.MockClock
	dispatcher  notify.Dispatcher
	ctx         context.Context

	delays  notify.DelayPolicy
	details *messaging.Details
}

func (s *DispatcherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockEmail = mocks.NewMockEmailSender(s.mockCtrl)
	s.mockMessage = mocks.NewMockMessageSender(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.delays = notify.DelayPolicy{
		Student: 300 * time.Millisecond,
		Mentor:  500 * time.Millisecond,
		Admin:   time.Second,
	}
	s.details = &messaging.Details{Session: &models.Session{
		ID:          1,
		Table:       "basic6_0_schedule",
		Date:        "2024-01-12",
		Time:        "14:00",
		SubjectName: "Arrays",
	}}

	msgs, err := messaging.NewService(nil)
	s.Require().NoError(err)

	dispatcher, err := notify.New(&notify.Config{
		EmailSender:        s.mockEmail,
		MessageSender:      s.mockMessage,
		Messaging:          msgs,
		Clock:              s.mockClock,
		Delays:             s.delays,
		DefaultCountryCode: "91",
	})
	s.Require().NoError(err)
	s.dispatcher = dispatcher
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func recipient(audience recipients.Audience, email, phone string) *recipients.Recipient {
	return &recipients.Recipient{
		Audience: audience,
		Contact:  &models.Contact{Name: "Someone", Email: email, Phone: phone},
		Variant:  recipients.VariantRescheduled,
	}
}

func (s *DispatcherTestSuite) TestSendsBothChannelsAndPacesPerAudience() {
	gomock.InOrder(
		s.mockEmail.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *notify.SendEmailInput) error {
				s.Equal("asha@example.com", in.To)
				s.Equal("Session rescheduled: Arrays", in.Subject)
				return nil
			}),
		s.mockMessage.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *notify.SendMessageInput) error {
				s.Equal("919876543210", in.To)
				s.Equal("mentorcast_session_rescheduled", in.TemplateID)
				return nil
			}),
		s.mockClock.EXPECT().Sleep(gomock.Any(), 500*time.Millisecond).Return(nil),
		s.mockEmail.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(nil),
		s.mockClock.EXPECT().Sleep(gomock.Any(), 300*time.Millisecond).Return(nil),
		s.mockEmail.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(nil),
	)

	out, err := s.dispatcher.Dispatch(s.ctx, &notify.DispatchInput{
		Recipients: []*recipients.Recipient{
			recipient(recipients.AudienceMentor, "asha@example.com", "98765 43210"),
			recipient(recipients.AudienceStudent, "ravi@example.com", ""),
			recipient(recipients.AudienceAdmin, "ops@example.com", "123"),
		},
		Details: s.details,
	})
	s.Require().NoError(err)
	s.Equal(3, out.EmailsSent)
	s.Equal(1, out.MessagesSent)
	s.Zero(out.Skipped)
}

func (s *DispatcherTestSuite) TestFailureDoesNotAbortBatch() {
	s.mockEmail.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(errors.New("smtp 421"))
	s.mockMessage.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(errors.New("rate limited"))
	s.mockClock.EXPECT().Sleep(gomock.Any(), gomock.Any()).Return(nil)
	s.mockEmail.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.dispatcher.Dispatch(s.ctx, &notify.DispatchInput{
		Recipients: []*recipients.Recipient{
			recipient(recipients.AudienceStudent, "ravi@example.com", "+44 20 7946 0958"),
			recipient(recipients.AudienceStudent, "sana@example.com", ""),
		},
		Details: s.details,
	})
	s.Require().NoError(err)
	s.Equal(1, out.EmailsSent)
	s.Equal(1, out.EmailsFailed)
	s.Equal(1, out.MessagesFailed)
	s.True(out.Attempted())
}

func (s *DispatcherTestSuite) TestRecipientWithoutUsableAddressIsSkipped() {
	s.mockEmail.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.dispatcher.Dispatch(s.ctx, &notify.DispatchInput{
		Recipients: []*recipients.Recipient{
			recipient(recipients.AudienceStudent, "not-an-email", "12345"),
			recipient(recipients.AudienceAdmin, "ops@example.com", ""),
		},
		Details: s.details,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Skipped)
	s.Equal(1, out.EmailsSent)
}

func (s *DispatcherTestSuite) TestCancellationStopsLoop() {
	ctx, cancel := context.WithCancel(s.ctx)

	s.mockEmail.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(nil)
	s.mockClock.EXPECT().Sleep(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	})

	out, err := s.dispatcher.Dispatch(ctx, &notify.DispatchInput{
		Recipients: []*recipients.Recipient{
			recipient(recipients.AudienceStudent, "ravi@example.com", ""),
			recipient(recipients.AudienceStudent, "sana@example.com", ""),
		},
		Details: s.details,
	})
	s.ErrorIs(err, context.Canceled)
	s.Equal(1, out.EmailsSent)
}

func (s *DispatcherTestSuite) TestDisabledChannels() {
	msgs, err := messaging.NewService(nil)
	s.Require().NoError(err)
	dispatcher, err := notify.New(&notify.Config{Messaging: msgs, Clock: s.mockClock})
	s.Require().NoError(err)

	out, err := dispatcher.Dispatch(s.ctx, &notify.DispatchInput{
		Recipients: []*recipients.Recipient{recipient(recipients.AudienceStudent, "ravi@example.com", "9876543210")},
		Details:    s.details,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Skipped)
	s.False(out.Attempted())
}

func (s *DispatcherTestSuite) TestSkippedChannel() {
	s.mockMessage.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *notify.SendMessageInput) error {
			s.Equal("919876543210", in.To)
			return nil
		})

	out, err := s.dispatcher.Dispatch(s.ctx, &notify.DispatchInput{
		Recipients: []*recipients.Recipient{recipient(recipients.AudienceStudent, "ravi@example.com", "9876543210")},
		Details:    s.details,
		SkipEmail:  true,
	})
	s.Require().NoError(err)
	s.Equal(0, out.EmailsSent)
	s.Equal(1, out.MessagesSent)
}

func (s *DispatcherTestSuite) TestRequiresDetails() {
	_, err := s.dispatcher.Dispatch(s.ctx, &notify.DispatchInput{})
	s.ErrorIs(err, notify.ErrNilDetails)

	_, err = notify.New(&notify.Config{})
	s.ErrorIs(err, notify.ErrNilMessaging)
}
