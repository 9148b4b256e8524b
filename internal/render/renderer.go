// Package render turns matchmaking events into localized participant-facing
// text. Lookups go through the embedded message catalogs with fallback to
// the base locale; callers never see a raw message key.
package render

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/agora/internal/platform/i18n/catalog"
)

// Message keys registered by the matchmaking catalog namespace.
const (
	keyAlreadyInQueue        = "matchmaking.already_in_queue"
	keyWaitingForTeammate    = "matchmaking.waiting_for_teammate"
	keyWaitingForJudge       = "matchmaking.waiting_for_judge"
	keyWaitingForPlayers     = "matchmaking.waiting_for_players"
	keyTeamComplete          = "matchmaking.team_complete"
	keyPairedWithTeammate    = "matchmaking.paired_with_teammate"
	keyRoomReadyTitle        = "matchmaking.room_ready_title"
	keyRoomReadyJudge        = "matchmaking.room_ready_judge"
	keyRoomReadyPlayer       = "matchmaking.room_ready_player"
	keyMeetingCreateFailed   = "matchmaking.meeting_create_failed"
	keyLeftQueue             = "matchmaking.left_queue"
	keyTeammateLeft          = "matchmaking.teammate_left"
	keyNotInAnyQueue         = "matchmaking.not_in_any_queue"
	keyCannotLeaveActiveGame = "matchmaking.cannot_leave_active_game"
	keyCannotTeamWithSelf    = "matchmaking.cannot_team_with_self"
	langNameKeyPrefix        = "matchmaking.lang_name."
)

// Renderer produces localized matchmaking copy.
type Renderer struct {
	printers map[string]*message.Printer
	fallback *message.Printer
}

// New builds a renderer over the embedded catalogs.
func New() *Renderer {
	bundle := catalog.Default()
	printers := map[string]*message.Printer{}
	for _, locale := range bundle.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		printer := message.NewPrinter(tag)
		printers[locale] = printer
		if base, confidence := tag.Base(); confidence != language.No {
			if _, exists := printers[base.String()]; !exists {
				printers[base.String()] = printer
			}
		}
	}
	return &Renderer{
		printers: printers,
		fallback: printers[catalog.BaseLocale],
	}
}

func (r *Renderer) printer(locale string) *message.Printer {
	if printer, ok := r.printers[strings.TrimSpace(locale)]; ok {
		return printer
	}
	return r.fallback
}

// LanguageName returns the localized display name of a game language code,
// falling back to the uppercased code for unknown languages.
func (r *Renderer) LanguageName(locale string, gameLanguage string) string {
	key := langNameKeyPrefix + gameLanguage
	name := r.printer(locale).Sprintf(key)
	if name == key {
		return strings.ToUpper(gameLanguage)
	}
	return name
}

// AlreadyInQueue renders the duplicate-join rejection.
func (r *Renderer) AlreadyInQueue(locale string) string {
	return r.printer(locale).Sprintf(keyAlreadyInQueue)
}

// WaitingForTeammate renders the half-team wait status.
func (r *Renderer) WaitingForTeammate(locale string, gameLanguage string) string {
	return r.printer(locale).Sprintf(keyWaitingForTeammate, r.LanguageName(locale, gameLanguage))
}

// WaitingForJudge renders the judge wait status.
func (r *Renderer) WaitingForJudge(locale string, gameLanguage string) string {
	return r.printer(locale).Sprintf(keyWaitingForJudge, r.LanguageName(locale, gameLanguage))
}

// WaitingForPlayers renders the queue-progress status for a single player.
func (r *Renderer) WaitingForPlayers(locale string, gameLanguage string, current, total int) string {
	return r.printer(locale).Sprintf(keyWaitingForPlayers, r.LanguageName(locale, gameLanguage), current, total)
}

// TeamComplete renders the half-team completion notice.
func (r *Renderer) TeamComplete(locale string, gameLanguage string) string {
	return r.printer(locale).Sprintf(keyTeamComplete, r.LanguageName(locale, gameLanguage))
}

// PairedWithTeammate renders the singles-pairing notice naming the teammate.
func (r *Renderer) PairedWithTeammate(locale string, teammate string, gameLanguage string) string {
	return r.printer(locale).Sprintf(keyPairedWithTeammate, teammate, r.LanguageName(locale, gameLanguage))
}

// RoomReadyJudge renders the room-ready notice for the judge.
func (r *Renderer) RoomReadyJudge(locale string, gameLanguage string, meetingLink string) string {
	printer := r.printer(locale)
	return printer.Sprintf(keyRoomReadyTitle) + "\n" +
		printer.Sprintf(keyRoomReadyJudge, r.LanguageName(locale, gameLanguage), meetingLink)
}

// RoomReadyPlayer renders the room-ready notice for a player, naming their
// teammate.
func (r *Renderer) RoomReadyPlayer(locale string, teammate string, gameLanguage string, meetingLink string) string {
	printer := r.printer(locale)
	return printer.Sprintf(keyRoomReadyTitle) + "\n" +
		printer.Sprintf(keyRoomReadyPlayer, teammate, r.LanguageName(locale, gameLanguage), meetingLink)
}

// MeetingCreateFailed renders the stay-in-queue notice after a provider
// failure.
func (r *Renderer) MeetingCreateFailed(locale string) string {
	return r.printer(locale).Sprintf(keyMeetingCreateFailed)
}

// LeftQueue renders the successful-departure notice.
func (r *Renderer) LeftQueue(locale string) string {
	return r.printer(locale).Sprintf(keyLeftQueue)
}

// TeammateLeft renders the cascade notice for a dissolved team's survivor.
func (r *Renderer) TeammateLeft(locale string, leaver string, gameLanguage string) string {
	return r.printer(locale).Sprintf(keyTeammateLeft, leaver, r.LanguageName(locale, gameLanguage))
}

// NotInAnyQueue renders the benign not-queued notice.
func (r *Renderer) NotInAnyQueue(locale string) string {
	return r.printer(locale).Sprintf(keyNotInAnyQueue)
}

// CannotLeaveActiveGame renders the in-game departure rejection.
func (r *Renderer) CannotLeaveActiveGame(locale string) string {
	return r.printer(locale).Sprintf(keyCannotLeaveActiveGame)
}

// CannotTeamWithSelf renders the self-teaming rejection.
func (r *Renderer) CannotTeamWithSelf(locale string) string {
	return r.printer(locale).Sprintf(keyCannotTeamWithSelf)
}
