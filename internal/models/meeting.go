package models

import (
	"net/url"
	"regexp"
	"strings"
)

var meetingThreadPattern = regexp.MustCompile(`19:meeting_[A-Za-z0-9_\-]+@thread\.v2`)

// MeetingThreadID extracts the stable thread id from a join URL.
// Join URLs reach us with one or two rounds of percent encoding.
func MeetingThreadID(joinURL string) string {
	decoded := decodeRepeatedly(joinURL)
	return meetingThreadPattern.FindString(decoded)
}

// SameMeeting reports whether two join URLs point at the same meeting
func SameMeeting(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ta, tb := MeetingThreadID(a), MeetingThreadID(b)
	if ta != "" || tb != "" {
		return ta == tb
	}
	return stripQuery(decodeRepeatedly(a)) == stripQuery(decodeRepeatedly(b))
}

func decodeRepeatedly(s string) string {
	for i := 0; i < 3; i++ {
		next, err := url.PathUnescape(s)
		if err != nil || next == s {
			return s
		}
		s = next
	}
	return s
}

func stripQuery(s string) string {
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return s[:i]
	}
	return s
}
