package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/services/meeting"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultBaseURL = "https://graph.microsoft.com/v1.0"
	defaultScope   = "https://graph.microsoft.com/.default"
)

// Config holds the app registration used to schedule meetings
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string

	// Organizer is the user id or principal name that owns every meeting
	Organizer string

	// BaseURL and TokenURL override the public endpoints
	BaseURL  string
	TokenURL string

	// HTTPClient is used for token and API calls when set
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zap.Logger
}

// APIError is a non-success Graph response
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph: status %d: %s", e.Status, e.Body)
}

// Client schedules online meetings through Microsoft Graph
type Client struct {
	http      *http.Client
	baseURL   string
	organizer string
	log       *zap.Logger
}

// New creates a Graph client authenticated with client credentials
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("client id and secret cannot be empty")
	}
	if cfg.Organizer == "" {
		return nil, errors.New("organizer cannot be empty")
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		if cfg.TenantID == "" {
			return nil, errors.New("tenant id cannot be empty")
		}
		tokenURL = "https://login.microsoftonline.com/" + url.PathEscape(cfg.TenantID) + "/oauth2/v2.0/token"
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	ctx := context.Background()
	if cfg.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, cfg.HTTPClient)
	}
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{defaultScope},
	}
	httpClient := cc.Client(ctx)
	httpClient.Timeout = cfg.Timeout
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		http:      httpClient,
		baseURL:   baseURL,
		organizer: cfg.Organizer,
		log:       log.Named("graph"),
	}, nil
}

type attendee struct {
	UPN  string `json:"upn"`
	Role string `json:"role"`
}

type createMeetingRequest struct {
	Subject       string `json:"subject"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
	Participants  struct {
		Attendees []attendee `json:"attendees"`
	} `json:"participants"`
}

type onlineMeeting struct {
	ID         string `json:"id"`
	JoinWebURL string `json:"joinWebUrl"`
}

type onlineMeetingList struct {
	Value []onlineMeeting `json:"value"`
}

// CreateMeeting schedules an online meeting owned by the organizer
func (c *Client) CreateMeeting(ctx context.Context, input *meeting.CreateMeetingInput) (*meeting.CreateMeetingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	req := createMeetingRequest{
		Subject:       input.Subject,
		StartDateTime: input.Start.UTC().Format(time.RFC3339),
		EndDateTime:   input.End.UTC().Format(time.RFC3339),
	}
	for _, a := range input.Attendees {
		req.Participants.Attendees = append(req.Participants.Attendees, attendee{UPN: a, Role: "attendee"})
	}

	var created onlineMeeting
	if err := c.do(ctx, http.MethodPost, c.meetingsPath(), req, &created); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	if created.JoinWebURL == "" {
		return nil, errors.New("graph returned a meeting without a join url")
	}

	c.log.Info("meeting created",
		zap.String("subject", input.Subject),
		zap.Time("start", input.Start),
		zap.Int("attendees", len(input.Attendees)))
	return &meeting.CreateMeetingOutput{JoinURL: created.JoinWebURL}, nil
}

// DeleteMeeting looks the meeting up by join url and deletes it
func (c *Client) DeleteMeeting(ctx context.Context, input *meeting.DeleteMeetingInput) (*meeting.DeleteMeetingOutput, error) {
	if input == nil || input.JoinURL == "" {
		return nil, errors.New("join url cannot be empty")
	}

	q := url.Values{}
	q.Set("$filter", "JoinWebUrl eq '"+strings.ReplaceAll(input.JoinURL, "'", "''")+"'")

	var found onlineMeetingList
	if err := c.do(ctx, http.MethodGet, c.meetingsPath()+"?"+q.Encode(), nil, &found); err != nil {
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	target := matching(found.Value, input.JoinURL)
	if target == nil {
		c.log.Info("meeting already gone", zap.String("join_url", input.JoinURL))
		return &meeting.DeleteMeetingOutput{Deleted: false}, nil
	}

	err := c.do(ctx, http.MethodDelete, c.meetingsPath()+"/"+url.PathEscape(target.ID), nil, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return &meeting.DeleteMeetingOutput{Deleted: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete meeting: %w", err)
	}

	c.log.Info("meeting deleted", zap.String("meeting_id", target.ID))
	return &meeting.DeleteMeetingOutput{Deleted: true}, nil
}

// matching returns the listed meeting for joinURL. Stored links may carry a
// different percent encoding than Graph returns, so they are compared by thread.
func matching(listed []onlineMeeting, joinURL string) *onlineMeeting {
	for i := range listed {
		if listed[i].ID == "" {
			continue
		}
		if models.SameMeeting(joinURL, listed[i].JoinWebURL) {
			return &listed[i]
		}
	}
	return nil
}

func (c *Client) meetingsPath() string {
	return c.baseURL + "/users/" + url.PathEscape(c.organizer) + "/onlineMeetings"
}

func (c *Client) do(ctx context.Context, method, target string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
