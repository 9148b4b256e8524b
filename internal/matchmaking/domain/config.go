package domain

import (
	"errors"
	"time"
)

// MaxPlayersPerTeam is the fixed team size. Team is an ordered pair; this
// constant is not runtime-configurable.
const MaxPlayersPerTeam = 2

// Config carries the deployment-fixed room shape and meeting window.
type Config struct {
	// TeamsPerRoom is the number of teams reserved per room.
	TeamsPerRoom int
	// JudgesPerRoom is the number of judges reserved per room.
	JudgesPerRoom int
	// MeetDuration is the scheduled length of a room's meeting.
	MeetDuration time.Duration
	// TimeZone is the IANA zone the meeting window is expressed in.
	TimeZone string
	// Languages lists the supported game languages, one pool each.
	Languages []string
}

var (
	// ErrInvalidRoomShape indicates a non-positive room dimension.
	ErrInvalidRoomShape = errors.New("teams per room and judges per room must be positive")
	// ErrInvalidMeetDuration indicates a non-positive meeting duration.
	ErrInvalidMeetDuration = errors.New("meet duration must be positive")
	// ErrNoLanguages indicates no language pools were configured.
	ErrNoLanguages = errors.New("at least one language is required")
)

// DefaultConfig mirrors the original deployment shape: four teams of two and
// one judge per room, two and a half hours per meeting.
func DefaultConfig() Config {
	return Config{
		TeamsPerRoom:  4,
		JudgesPerRoom: 1,
		MeetDuration:  2*time.Hour + 30*time.Minute,
		TimeZone:      "Europe/Rome",
		Languages:     []string{"en", "ru"},
	}
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if c.TeamsPerRoom <= 0 || c.JudgesPerRoom <= 0 {
		return ErrInvalidRoomShape
	}
	if c.MeetDuration <= 0 {
		return ErrInvalidMeetDuration
	}
	if len(c.Languages) == 0 {
		return ErrNoLanguages
	}
	return nil
}

// PlayersPerRoom is the number of players (excluding judges) a room seats.
func (c Config) PlayersPerRoom() int {
	return c.TeamsPerRoom * MaxPlayersPerTeam
}

// SupportsLanguage reports whether a pool exists for the language.
func (c Config) SupportsLanguage(language string) bool {
	for _, l := range c.Languages {
		if l == language {
			return true
		}
	}
	return false
}
