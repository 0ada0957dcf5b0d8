package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
	"github.com/KirkDiggler/mentorcast/internal/services/schedule"
	"github.com/bwmarrin/discordgo"
)

const (
	colorApplied  = 0x00ff00
	colorDegraded = 0xffa500
)

var kindTitles = map[recipients.ChangeKind]string{
	recipients.KindReschedule:       "Session rescheduled",
	recipients.KindMentorReassigned: "Mentor reassigned",
	recipients.KindMentorSwapped:    "Mentor swapped",
	recipients.KindDetailsUpdated:   "Session details updated",
	recipients.KindNewSession:       "Session created",
}

// renderEntry builds the embed for one applied change
func renderEntry(entry *schedule.AuditEntry) *discordgo.MessageEmbed {
	title := kindTitles[entry.Kind]
	if title == "" {
		title = "Session changed"
	}
	if entry.Rescheduled && entry.Kind != recipients.KindReschedule {
		title += " and rescheduled"
	}

	color := colorApplied
	if len(entry.Degraded) > 0 {
		color = colorDegraded
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: describe(entry.After),
		Color:       color,
		Timestamp:   entry.At.Format(time.RFC3339),
	}

	add := func(name, value string) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true})
	}

	add("Session", entry.Table+" #"+strconv.FormatInt(entry.SessionID, 10))
	if entry.Before != nil && entry.After != nil {
		if entry.Before.Date != entry.After.Date || entry.Before.Time != entry.After.Time {
			add("When", fmt.Sprintf("%s %s → %s %s", entry.Before.Date, entry.Before.Time, entry.After.Date, entry.After.Time))
		}
		if entry.Before.EffectiveMentorID() != entry.After.EffectiveMentorID() {
			add("Mentor", fmt.Sprintf("%d → %d", entry.Before.EffectiveMentorID(), entry.After.EffectiveMentorID()))
		}
	}
	if entry.Meeting.Action != "" {
		add("Meeting", string(entry.Meeting.Action))
	}
	if entry.Dispatch != nil {
		add("Notified", fmt.Sprintf("%d email, %d whatsapp, %d failed",
			entry.Dispatch.EmailsSent, entry.Dispatch.MessagesSent,
			entry.Dispatch.EmailsFailed+entry.Dispatch.MessagesFailed))
	} else {
		add("Notified", "no")
	}
	if entry.FlagsReset {
		add("Announcement", "flags reset, announcer will resend")
	}
	if len(entry.Degraded) > 0 {
		add("Degraded", strings.Join(entry.Degraded, ", "))
	}
	return embed
}

func describe(s *models.Session) string {
	if s == nil {
		return ""
	}
	label := s.Table
	if c, err := models.ParseCohort(s.Table); err == nil {
		label = c.Label()
	}
	desc := label + " - " + s.SubjectName
	if s.SubjectTopic != "" {
		desc += " (" + s.SubjectTopic + ")"
	}
	if s.SessionType.IsContest() {
		desc += " [contest]"
	}
	return desc
}
