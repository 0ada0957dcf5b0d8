package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uuidMocks "github.com/KirkDiggler/mentorcast/internal/common/uuid/mocks"
	"github.com/KirkDiggler/mentorcast/internal/handlers/rest"
	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"github.com/KirkDiggler/mentorcast/internal/services/announcer"
	announcerMocks "github.com/KirkDiggler/mentorcast/internal/services/announcer/mocks"
	"github.com/KirkDiggler/mentorcast/internal/services/meeting"
	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"github.com/KirkDiggler/mentorcast/internal/services/schedule"
	scheduleMocks "github.com/KirkDiggler/mentorcast/internal/services/schedule/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockSchedule  *scheduleMocks.MockService
	mockAnnouncer *announcerMocks.MockAnnouncer
	mockUUID      *uuidMocks.MockUUID
	app           *fiber.App
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSchedule = scheduleMocks.NewMockService(s.mockCtrl)
	s.mockAnnouncer = announcerMocks.NewMockAnnouncer(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockUUID.EXPECT().NewUUID().Return("req-1").AnyTimes()

	h, err := rest.New(&rest.Config{
		Schedule:  s.mockSchedule,
		Announcer: s.mockAnnouncer,
		UUID:      s.mockUUID,
	})
	s.Require().NoError(err)
	s.app = h.NewApp()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path, body string) (*http.Response, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, raw
}

func (s *HandlerTestSuite) TestReschedule() {
	s.mockSchedule.EXPECT().
		Reschedule(gomock.Any(), &schedule.RescheduleInput{
			Table:    "basic6_0_schedule",
			Selector: session.Selector{ID: 1},
			Date:     "2024-01-12",
			Time:     "14:00",
		}).
		Return(&schedule.ApplyChangeOutput{
			SessionID:   1,
			Kind:        recipients.KindReschedule,
			Rescheduled: true,
			State:       schedule.StateDone,
			Meeting:     schedule.MeetingResult{Action: meeting.ActionRegenerated, JoinURL: "https://teams.example/new"},
			Notified:    true,
			Dispatch:    &notify.DispatchOutput{EmailsSent: 3, MessagesSent: 2},
			FlagsReset:  true,
		}, nil)

	resp, raw := s.do(http.MethodPost, "/sessions/basic6_0_schedule/reschedule",
		`{"selector":{"id":1},"date":"2024-01-12","time":"14:00"}`)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("req-1", resp.Header.Get("X-Request-ID"))

	var body rest.ChangeResponse
	s.Require().NoError(json.Unmarshal(raw, &body))
	s.Equal("reschedule", body.Kind)
	s.Equal("done", body.State)
	s.Equal("regenerated", body.Meeting.Action)
	s.Equal("https://teams.example/new", body.Meeting.JoinURL)
	s.Require().NotNil(body.Dispatch)
	s.Equal(3, body.Dispatch.EmailsSent)
	s.True(body.FlagsReset)
}

func (s *HandlerTestSuite) TestRescheduleValidation() {
	resp, raw := s.do(http.MethodPost, "/sessions/basic6_0_schedule/reschedule",
		`{"selector":{"id":1},"date":"12/01/2024","time":"14:00"}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Contains(string(raw), "Date")
}

func (s *HandlerTestSuite) TestMalformedBody() {
	resp, _ := s.do(http.MethodPost, "/sessions/basic6_0_schedule/reassign", `{"selector":`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestSwapConflict() {
	s.mockSchedule.EXPECT().
		SwapMentor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *schedule.SwapMentorInput) (*schedule.ApplyChangeOutput, error) {
			s.Equal(session.Selector{Date: "2024-02-01", Time: "09:00"}, in.Selector)
			s.Require().NotNil(in.SwappedMentorID)
			s.Equal(int64(7), *in.SwappedMentorID)
			return nil, &schedule.ConflictError{
				MentorID:  7,
				Table:     "adv3_1_schedule",
				Cohort:    "Adv 3.1",
				Subject:   "Graphs",
				SessionID: 4,
			}
		})

	resp, raw := s.do(http.MethodPost, "/sessions/basic6_0_schedule/swap",
		`{"selector":{"date":"2024-02-01","time":"09:00"},"swapped_mentor_id":7}`)
	s.Equal(http.StatusConflict, resp.StatusCode)

	var body rest.ErrorResponse
	s.Require().NoError(json.Unmarshal(raw, &body))
	s.Require().NotNil(body.Conflict)
	s.Equal("adv3_1_schedule", body.Conflict.Table)
	s.Equal("Adv 3.1", body.Conflict.Cohort)
	s.Equal("Graphs", body.Conflict.Subject)
	s.Equal("req-1", body.RequestID)
}

func (s *HandlerTestSuite) TestSwapRemoval() {
	s.mockSchedule.EXPECT().
		SwapMentor(gomock.Any(), &schedule.SwapMentorInput{
			Table:    "basic6_0_schedule",
			Selector: session.Selector{ID: 1},
		}).
		Return(&schedule.ApplyChangeOutput{SessionID: 1, State: schedule.StateDone}, nil)

	resp, _ := s.do(http.MethodPost, "/sessions/basic6_0_schedule/swap", `{"selector":{"id":1},"swapped_mentor_id":null}`)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *HandlerTestSuite) TestErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "bad input", err: schedule.ErrBadInput, status: http.StatusBadRequest},
		{name: "not found", err: schedule.ErrSessionNotFound, status: http.StatusNotFound},
		{name: "busy", err: schedule.ErrSessionBusy, status: http.StatusLocked},
		{name: "other", err: io.ErrUnexpectedEOF, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockSchedule.EXPECT().ReassignMentor(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			resp, raw := s.do(http.MethodPost, "/sessions/basic6_0_schedule/reassign", `{"selector":{"id":1},"mentor_id":42}`)
			s.Equal(tt.status, resp.StatusCode)
			if tt.status == http.StatusInternalServerError {
				s.NotContains(string(raw), "unexpected EOF")
			}
		})
	}
}

func (s *HandlerTestSuite) TestApplyChange() {
	s.mockSchedule.EXPECT().
		ApplyChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *schedule.ApplyChangeInput) (*schedule.ApplyChangeOutput, error) {
			s.Equal("basic6_0_schedule", in.Table)
			s.Require().NotNil(in.SessionType)
			s.Equal(models.SessionTypeContest, *in.SessionType)
			s.Require().NotNil(in.Time)
			s.Equal("16:00", *in.Time)
			s.Nil(in.Date)
			s.True(in.SuppressMeeting)
			return &schedule.ApplyChangeOutput{SessionID: 1, State: schedule.StateDone, Degraded: []string{"meeting"}}, nil
		})

	resp, raw := s.do(http.MethodPatch, "/sessions/basic6_0_schedule",
		`{"selector":{"id":1},"time":"16:00","session_type":"contest","suppress_meeting":true}`)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body rest.ChangeResponse
	s.Require().NoError(json.Unmarshal(raw, &body))
	s.Equal([]string{"meeting"}, body.Degraded)
}

func (s *HandlerTestSuite) TestDetailsRejectsUnknownType() {
	resp, _ := s.do(http.MethodPost, "/sessions/basic6_0_schedule/details", `{"selector":{"id":1},"session_type":"webinar"}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestProvision() {
	s.mockSchedule.EXPECT().
		ProvisionSession(gomock.Any(), &schedule.ProvisionSessionInput{
			Table:    "basic6_0_schedule",
			Selector: session.Selector{ID: 9},
		}).
		Return(&schedule.ProvisionSessionOutput{
			SessionID: 9,
			Meeting:   schedule.MeetingResult{Action: meeting.ActionCreated, JoinURL: "https://teams.example/9"},
		}, nil)

	resp, raw := s.do(http.MethodPost, "/sessions/basic6_0_schedule/provision", `{"selector":{"id":9}}`)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body rest.ProvisionResponse
	s.Require().NoError(json.Unmarshal(raw, &body))
	s.Equal("created", body.Meeting.Action)
}

func (s *HandlerTestSuite) TestMaterials() {
	s.mockSchedule.EXPECT().
		GetMaterials(gomock.Any(), &schedule.GetMaterialsInput{
			Table:    "basic6_0_schedule",
			Selector: session.Selector{ID: 3},
		}).
		Return(&schedule.GetMaterialsOutput{
			Initial: models.LinkList{"https://a"},
			Session: models.LinkList{"https://b"},
			Merged:  models.LinkList{"https://a", "https://b"},
		}, nil)

	resp, raw := s.do(http.MethodGet, "/sessions/basic6_0_schedule/3/materials", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body rest.MaterialsResponse
	s.Require().NoError(json.Unmarshal(raw, &body))
	s.Equal([]string{"https://a", "https://b"}, body.Merged)

	resp, _ = s.do(http.MethodGet, "/sessions/basic6_0_schedule/abc/materials", "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestAnnounce() {
	s.mockAnnouncer.EXPECT().Announce(gomock.Any(), &announcer.AnnounceInput{}).
		Return(&announcer.AnnounceOutput{Tables: 2, Pending: 3, Announced: 3}, nil)

	resp, raw := s.do(http.MethodPost, "/announce", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body rest.AnnounceResponse
	s.Require().NoError(json.Unmarshal(raw, &body))
	s.Equal(3, body.Announced)
}

func (s *HandlerTestSuite) TestRequestIDIsEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "from-proxy")

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("from-proxy", resp.Header.Get("X-Request-ID"))
}
