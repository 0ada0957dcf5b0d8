package recipients

import "github.com/KirkDiggler/mentorcast/internal/models"

// Classify names the change between two states of a session.
// A covering mentor change outranks an owner change, which outranks a move,
// which outranks a details edit.
func Classify(before, after *models.Session) (Change, error) {
	if after == nil {
		return Change{}, ErrNilSession
	}
	if before == nil {
		return Change{Kind: KindNewSession}, nil
	}

	rescheduled := before.Date != after.Date || before.Time != after.Time
	change := Change{Rescheduled: rescheduled}

	switch {
	case !sameMentor(before.SwappedMentorID, after.SwappedMentorID):
		change.Kind = KindMentorSwapped
		change.OwnerChanged = before.MentorID != after.MentorID
	case before.MentorID != after.MentorID:
		change.Kind = KindMentorReassigned
	case rescheduled:
		change.Kind = KindReschedule
	case before.SubjectName != after.SubjectName ||
		before.SubjectTopic != after.SubjectTopic ||
		before.SessionType != after.SessionType:
		change.Kind = KindDetailsUpdated
	default:
		return Change{}, ErrNoChange
	}
	return change, nil
}

func sameMentor(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
