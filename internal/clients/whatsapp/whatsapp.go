package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"go.uber.org/zap"
)

// Config holds the messaging API endpoint and token
type Config struct {
	// APIURL is the full messages endpoint
	APIURL string
	Token  string

	// Language is the template language code, "en" when empty
	Language   string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client sends template messages through a WhatsApp Business style API
type Client struct {
	http     *http.Client
	apiURL   string
	token    string
	language string
	log      *zap.Logger
}

// New creates a WhatsApp client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.APIURL == "" {
		return nil, errors.New("api url cannot be empty")
	}
	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	language := cfg.Language
	if language == "" {
		language = "en"
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		http:     httpClient,
		apiURL:   cfg.APIURL,
		token:    cfg.Token,
		language: language,
		log:      log.Named("whatsapp"),
	}, nil
}

type textParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type component struct {
	Type       string          `json:"type"`
	Parameters []textParameter `json:"parameters"`
}

type template struct {
	Name     string `json:"name"`
	Language struct {
		Code string `json:"code"`
	} `json:"language"`
	Components []component `json:"components"`
}

type messageRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         template `json:"template"`
}

// SendMessage sends one template message to a normalized phone number
func (c *Client) SendMessage(ctx context.Context, input *notify.SendMessageInput) error {
	if input == nil || input.To == "" {
		return errors.New("recipient cannot be empty")
	}
	if input.TemplateID == "" {
		return errors.New("template id cannot be empty")
	}

	msg := messageRequest{
		MessagingProduct: "whatsapp",
		To:               input.To,
		Type:             "template",
	}
	msg.Template.Name = input.TemplateID
	msg.Template.Language.Code = c.language
	if len(input.Params) > 0 {
		body := component{Type: "body"}
		for _, p := range input.Params {
			body.Parameters = append(body.Parameters, textParameter{Type: "text", Text: p})
		}
		msg.Template.Components = []component{body}
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", input.To, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("whatsapp: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	c.log.Debug("message sent", zap.String("to", input.To), zap.String("template", input.TemplateID))
	return nil
}
