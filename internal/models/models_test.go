package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCohort(t *testing.T) {
	c, err := ParseCohort("basic6_0_schedule")
	require.NoError(t, err)
	assert.Equal(t, "Basic", c.Type)
	assert.Equal(t, "6.0", c.Number)
	assert.Equal(t, "Basic 6.0", c.Label())

	name, err := c.TableName()
	require.NoError(t, err)
	assert.Equal(t, "basic6_0_schedule", name)

	c, err = ParseCohort("adv3_1_schedule")
	require.NoError(t, err)
	assert.Equal(t, "Adv 3.1", c.Label())
}

func TestParseCohortMalformed(t *testing.T) {
	for _, table := range []string{"", "schedule", "basic_schedule", "basic6_schedule", "Basic6_0_schedule", "basic6_0_sessions"} {
		_, err := ParseCohort(table)
		assert.ErrorIs(t, err, ErrCohortUnresolvable, table)
	}
}

func TestCohortTableNameMalformed(t *testing.T) {
	_, err := (&Cohort{Type: "Basic", Number: "6"}).TableName()
	assert.ErrorIs(t, err, ErrCohortUnresolvable)

	_, err = (&Cohort{Type: "", Number: "6.0"}).TableName()
	assert.ErrorIs(t, err, ErrCohortUnresolvable)
}

func TestLinkListMergeWithItselfDedupes(t *testing.T) {
	inputs := []LinkList{
		{},
		{"a"},
		{"a", "b", "a"},
		{"https://x/1", " https://x/2 ", "", "https://x/1", "https://x/3"},
	}
	for _, l := range inputs {
		assert.Equal(t, l.Dedupe(), l.Merge(l))
	}
}

func TestLinkListParseAndString(t *testing.T) {
	l := ParseLinkList("b, a ,b,,c")
	assert.Equal(t, LinkList{"b", "a", "c"}, l)
	assert.Equal(t, "b,a,c", l.String())
	assert.Empty(t, ParseLinkList("  "))
}

func TestSessionMaterialsKeepsOrder(t *testing.T) {
	s := &Session{
		InitialSessionMaterial: "https://a,https://b",
		SessionMaterial:        "https://b,https://c",
	}
	assert.Equal(t, LinkList{"https://a", "https://b", "https://c"}, s.Materials())
	// reading never rewrites either list
	assert.Equal(t, "https://b,https://c", s.SessionMaterial)
}

func TestEffectiveMentor(t *testing.T) {
	s := &Session{MentorID: 7}
	assert.Equal(t, int64(7), s.EffectiveMentorID())
	assert.False(t, s.IsSwapped())

	swapped := int64(42)
	s.SwappedMentorID = &swapped
	assert.Equal(t, int64(42), s.EffectiveMentorID())
	assert.True(t, s.IsSwapped())
}

func TestSessionStartsAt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	s := &Session{Date: "2024-01-12", Time: "14:00"}
	start, err := s.StartsAt(loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 12, 14, 0, 0, 0, loc), start)

	_, err = (&Session{Date: "12/01/2024", Time: "14:00"}).StartsAt(loc)
	assert.Error(t, err)
}

func TestSessionClone(t *testing.T) {
	link := "https://teams/x"
	swapped := int64(3)
	s := &Session{ID: 1, MeetingLink: &link, SwappedMentorID: &swapped}
	c := s.Clone()
	*c.MeetingLink = "changed"
	*c.SwappedMentorID = 9
	assert.Equal(t, "https://teams/x", *s.MeetingLink)
	assert.Equal(t, int64(3), *s.SwappedMentorID)
}

func TestWeekdayName(t *testing.T) {
	day, err := WeekdayName("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", day)
}

func TestMeetingThreadID(t *testing.T) {
	raw := "https://teams.microsoft.com/l/meetup-join/19:meeting_NjQ5ZTk2@thread.v2/0?context=x"
	once := "https://teams.microsoft.com/l/meetup-join/19%3ameeting_NjQ5ZTk2%40thread.v2/0?context=%7b%7d"
	twice := "https://teams.microsoft.com/l/meetup-join/19%253ameeting_NjQ5ZTk2%2540thread.v2/0"

	assert.Equal(t, "19:meeting_NjQ5ZTk2@thread.v2", MeetingThreadID(raw))
	assert.Equal(t, "19:meeting_NjQ5ZTk2@thread.v2", MeetingThreadID(once))
	assert.Equal(t, "19:meeting_NjQ5ZTk2@thread.v2", MeetingThreadID(twice))
	assert.True(t, SameMeeting(raw, twice))
	assert.False(t, SameMeeting(raw, "https://teams.microsoft.com/l/meetup-join/19%3ameeting_OTHER%40thread.v2/0"))
}

func TestSameMeetingWithoutThreadID(t *testing.T) {
	assert.True(t, SameMeeting("https://meet.example/abc?x=1", "https://meet.example/abc?x=2"))
	assert.False(t, SameMeeting("https://meet.example/abc", "https://meet.example/def"))
	assert.False(t, SameMeeting("", ""))
}
