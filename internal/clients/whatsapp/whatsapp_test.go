package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"github.com/stretchr/testify/suite"
)

type WhatsAppClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  *Client
	ctx     context.Context
}

func (s *WhatsAppClientTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	s.ctx = context.Background()

	client, err := New(&Config{
		APIURL:     s.server.URL + "/messages",
		Token:      "wa-token",
		HTTPClient: s.server.Client(),
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *WhatsAppClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestWhatsAppClientSuite(t *testing.T) {
	suite.Run(t, new(WhatsAppClientTestSuite))
}

func (s *WhatsAppClientTestSuite) TestSendMessage() {
	var got messageRequest
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/messages", r.URL.Path)
		s.Equal("Bearer wa-token", r.Header.Get("Authorization"))
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}

	err := s.client.SendMessage(s.ctx, &notify.SendMessageInput{
		To:         "919876543210",
		TemplateID: "mentorcast_session_rescheduled",
		Params:     []string{"Ravi", "Basic 6.0", "Arrays"},
	})
	s.Require().NoError(err)

	s.Equal("whatsapp", got.MessagingProduct)
	s.Equal("919876543210", got.To)
	s.Equal("template", got.Type)
	s.Equal("mentorcast_session_rescheduled", got.Template.Name)
	s.Equal("en", got.Template.Language.Code)
	s.Require().Len(got.Template.Components, 1)
	s.Equal([]textParameter{
		{Type: "text", Text: "Ravi"},
		{Type: "text", Text: "Basic 6.0"},
		{Type: "text", Text: "Arrays"},
	}, got.Template.Components[0].Parameters)
}

func (s *WhatsAppClientTestSuite) TestSendMessageRejected() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"template not approved"}}`))
	}

	err := s.client.SendMessage(s.ctx, &notify.SendMessageInput{To: "919876543210", TemplateID: "t"})
	s.ErrorContains(err, "status 400")
	s.ErrorContains(err, "template not approved")
}

func (s *WhatsAppClientTestSuite) TestValidation() {
	s.Error(s.client.SendMessage(s.ctx, &notify.SendMessageInput{TemplateID: "t"}))
	s.Error(s.client.SendMessage(s.ctx, &notify.SendMessageInput{To: "919876543210"}))

	_, err := New(&Config{APIURL: "http://example.com"})
	s.Error(err)
}
