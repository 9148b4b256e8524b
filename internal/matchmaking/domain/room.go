package domain

import (
	"fmt"
	"time"
)

// Room is a formed group of judge and teams with a provisioned meeting
// resource. Rooms are immutable after creation.
type Room struct {
	ID          string
	Language    string
	Judge       ParticipantRef
	Teams       []Team
	MeetingLink string
	// EventID identifies the meeting resource at the provider, kept for
	// operational cleanup.
	EventID   string
	CreatedAt time.Time
}

// NewRoomID derives a room identifier from the language and the meeting
// event identifier.
func NewRoomID(language string, eventID string) string {
	suffix := eventID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("room_%s_%s", language, suffix)
}

// Participants returns the judge and all team members.
func (r Room) Participants() []ParticipantRef {
	out := make([]ParticipantRef, 0, 1+len(r.Teams)*MaxPlayersPerTeam)
	out = append(out, r.Judge)
	for _, team := range r.Teams {
		out = append(out, team.First, team.Second)
	}
	return out
}
