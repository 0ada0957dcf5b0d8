package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mentorcast/internal/services/schedule"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// channelSender is the part of discordgo.Session the feed uses
type channelSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config holds the configuration for the ops feed
type Config struct {
	// Discord bot token
	Token string

	// ChannelID receives one message per applied change
	ChannelID string
	Logger    *zap.Logger
}

// Feed posts applied session changes to an operators' channel
type Feed struct {
	session   channelSender
	channelID string
	log       *zap.Logger
}

// New creates a feed. Posting uses the REST API, so no gateway connection is opened.
func New(cfg *Config) (*Feed, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}
	if cfg.ChannelID == "" {
		return nil, errors.New("channel id cannot be empty")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	return newFeed(session, cfg.ChannelID, cfg.Logger), nil
}

func newFeed(session channelSender, channelID string, log *zap.Logger) *Feed {
	if log == nil {
		log = zap.NewNop()
	}
	return &Feed{session: session, channelID: channelID, log: log.Named("discord")}
}

// Record implements schedule.AuditSink
func (f *Feed) Record(ctx context.Context, entry *schedule.AuditEntry) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}
	_, err := f.session.ChannelMessageSendEmbed(f.channelID, renderEntry(entry), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to post change to Discord: %w", err)
	}
	return nil
}
