package domain

import (
	"errors"
	"strings"
)

// ParticipantRef identifies one participant in queues and rooms.
// Equality is by ID; DisplayName is presentation-only.
type ParticipantRef struct {
	ID          string
	DisplayName string
}

// NewParticipantRef builds a participant reference, deriving a display name
// from the ID when none is provided.
func NewParticipantRef(id string, displayName string) (ParticipantRef, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ParticipantRef{}, ErrParticipantIDRequired
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = "user" + id
	}
	return ParticipantRef{ID: id, DisplayName: displayName}, nil
}

// Role describes how a participant takes part in a room.
type Role int

const (
	// RoleUnspecified represents an invalid role value.
	RoleUnspecified Role = iota
	// RolePlayer competes as part of a team.
	RolePlayer
	// RoleJudge adjudicates a room.
	RoleJudge
)

// Status describes where a participant currently is in the matchmaking
// lifecycle.
type Status int

const (
	// StatusNone indicates the participant holds no queue or game slot.
	StatusNone Status = iota
	// StatusWaitingSingle indicates the participant waits alone for a teammate.
	StatusWaitingSingle
	// StatusWaitingTeamPartner indicates the participant committed to team play
	// and holds the pending-partner slot.
	StatusWaitingTeamPartner
	// StatusWaitingAsTeam indicates the participant belongs to a formed team
	// waiting for a room.
	StatusWaitingAsTeam
	// StatusWaitingJudge indicates the participant waits as a judge.
	StatusWaitingJudge
	// StatusInGame indicates the participant is in an active room.
	StatusInGame
)

// Waiting reports whether the status is one of the four queued states.
func (s Status) Waiting() bool {
	switch s {
	case StatusWaitingSingle, StatusWaitingTeamPartner, StatusWaitingAsTeam, StatusWaitingJudge:
		return true
	default:
		return false
	}
}

var (
	// ErrParticipantIDRequired indicates a missing participant identifier.
	ErrParticipantIDRequired = errors.New("participant id is required")
	// ErrSameParticipant indicates both team slots refer to one identifier.
	ErrSameParticipant = errors.New("team members must be distinct participants")
)

// Team is an ordered pair of two distinct participants.
type Team struct {
	First  ParticipantRef
	Second ParticipantRef
}

// NewTeam pairs two participants, rejecting a participant teaming with itself.
func NewTeam(first, second ParticipantRef) (Team, error) {
	if first.ID == "" || second.ID == "" {
		return Team{}, ErrParticipantIDRequired
	}
	if first.ID == second.ID {
		return Team{}, ErrSameParticipant
	}
	return Team{First: first, Second: second}, nil
}

// Contains reports whether the team includes the identifier.
func (t Team) Contains(id string) bool {
	return t.First.ID == id || t.Second.ID == id
}

// Other returns the member that is not the given identifier.
func (t Team) Other(id string) (ParticipantRef, bool) {
	switch id {
	case t.First.ID:
		return t.Second, true
	case t.Second.ID:
		return t.First, true
	default:
		return ParticipantRef{}, false
	}
}

// Members returns both members in order.
func (t Team) Members() [2]ParticipantRef {
	return [2]ParticipantRef{t.First, t.Second}
}
