package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/services/meeting"
	"github.com/KirkDiggler/mentorcast/internal/services/notify"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"github.com/KirkDiggler/mentorcast/internal/services/schedule"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type fakeChannel struct {
	channelID string
	embeds    []*discordgo.MessageEmbed
	err       error
}

func (f *fakeChannel) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.channelID = channelID
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{ID: "1"}, nil
}

type FeedTestSuite struct {
	suite.Suite
	channel *fakeChannel
	feed    *Feed
	entry   *schedule.AuditEntry
}

func (s *FeedTestSuite) SetupTest() {
	s.channel = &fakeChannel{}
	s.feed = newFeed(s.channel, "ops", nil)

	before := &models.Session{
		ID:          1,
		Table:       "basic6_0_schedule",
		Date:        "2024-01-10",
		Time:        "10:00",
		SubjectName: "Arrays",
		MentorID:    7,
	}
	after := before.Clone()
	after.Date = "2024-01-12"
	after.Time = "14:00"

	s.entry = &schedule.AuditEntry{
		At:          time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC),
		Table:       "basic6_0_schedule",
		SessionID:   1,
		Kind:        recipients.KindReschedule,
		Rescheduled: true,
		Before:      before,
		After:       after,
		Meeting:     schedule.MeetingResult{Action: meeting.ActionRegenerated},
		Dispatch:    &notify.DispatchOutput{EmailsSent: 3, MessagesSent: 2, MessagesFailed: 1},
		FlagsReset:  true,
	}
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, new(FeedTestSuite))
}

func (s *FeedTestSuite) fields(embed *discordgo.MessageEmbed) map[string]string {
	out := make(map[string]string)
	for _, f := range embed.Fields {
		out[f.Name] = f.Value
	}
	return out
}

func (s *FeedTestSuite) TestRecordPostsEmbed() {
	s.Require().NoError(s.feed.Record(context.Background(), s.entry))
	s.Equal("ops", s.channel.channelID)
	s.Require().Len(s.channel.embeds, 1)

	embed := s.channel.embeds[0]
	s.Equal("Session rescheduled", embed.Title)
	s.Equal("Basic 6.0 - Arrays", embed.Description)
	s.Equal(colorApplied, embed.Color)
	s.Equal("2024-01-09T08:00:00Z", embed.Timestamp)

	fields := s.fields(embed)
	s.Equal("basic6_0_schedule #1", fields["Session"])
	s.Equal("2024-01-10 10:00 → 2024-01-12 14:00", fields["When"])
	s.Equal("regenerated", fields["Meeting"])
	s.Equal("3 email, 2 whatsapp, 1 failed", fields["Notified"])
	s.Contains(fields, "Announcement")
	s.NotContains(fields, "Mentor")
}

func (s *FeedTestSuite) TestDegradedSwap() {
	cover := int64(42)
	s.entry.Kind = recipients.KindMentorSwapped
	s.entry.Rescheduled = false
	s.entry.After = s.entry.Before.Clone()
	s.entry.After.SwappedMentorID = &cover
	s.entry.Dispatch = nil
	s.entry.FlagsReset = false
	s.entry.Degraded = []string{"meeting", "dispatch"}

	embed := renderEntry(s.entry)
	s.Equal("Mentor swapped", embed.Title)
	s.Equal(colorDegraded, embed.Color)

	fields := s.fields(embed)
	s.Equal("7 → 42", fields["Mentor"])
	s.Equal("no", fields["Notified"])
	s.Equal("meeting, dispatch", fields["Degraded"])
	s.NotContains(fields, "When")
}

func (s *FeedTestSuite) TestRecordError() {
	s.channel.err = errors.New("HTTP 403 Forbidden")
	s.ErrorContains(s.feed.Record(context.Background(), s.entry), "403")
}

func (s *FeedTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Token: "t"})
	s.Error(err)

	feed, err := New(&Config{Token: "t", ChannelID: "ops"})
	s.Require().NoError(err)
	s.NotNil(feed)
}
