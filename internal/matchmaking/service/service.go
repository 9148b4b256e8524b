// Package service orchestrates the matchmaking core: it guards the
// involvement registry and per-language queue pools, runs matchmaking
// passes, and drives the meeting provider and notification sink boundaries.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	agoraerrors "github.com/louisbranch/agora/internal/errors"
	"github.com/louisbranch/agora/internal/matchmaking/domain"
	"github.com/louisbranch/agora/internal/meeting"
	"github.com/louisbranch/agora/internal/notify"
	"github.com/louisbranch/agora/internal/render"
)

const defaultLocale = "en"

// Service owns all matchmaking state for the process lifetime. One mutex
// serializes every pool and registry mutation; matchmaking passes release it
// only after reservation, so externally-suspending calls never race a second
// pass over the same participants.
type Service struct {
	cfg      domain.Config
	location *time.Location
	provider meeting.Provider
	sink     notify.Sink
	renderer *render.Renderer
	clock    func() time.Time

	mu       sync.Mutex
	registry *domain.Registry
	pools    map[string]*domain.QueuePool
	// reserved maps participant ids to their language while a room
	// reservation is in flight for them.
	reserved map[string]string
	rooms    []domain.Room
}

// New creates a matchmaking service with one pool per configured language.
func New(cfg domain.Config, provider meeting.Provider, sink notify.Sink, renderer *render.Renderer) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("meeting provider is required")
	}
	if sink == nil {
		return nil, fmt.Errorf("notification sink is required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}

	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Printf("unknown time zone %q, falling back to UTC", cfg.TimeZone)
		location = time.UTC
	}

	pools := make(map[string]*domain.QueuePool, len(cfg.Languages))
	for _, language := range cfg.Languages {
		pools[language] = domain.NewQueuePool(language)
	}

	return &Service{
		cfg:      cfg,
		location: location,
		provider: provider,
		sink:     sink,
		renderer: renderer,
		clock:    time.Now,
		registry: domain.NewRegistry(),
		pools:    pools,
		reserved: map[string]string{},
	}, nil
}

// outboundMessage is one rendered notification waiting for delivery after
// the lock is released.
type outboundMessage struct {
	participantID string
	text          string
	keyboard      notify.Keyboard
}

// JoinSingle queues a participant as a single player for a language.
func (s *Service) JoinSingle(ctx context.Context, participant domain.ParticipantRef, language string, uiLocale string) error {
	pool, err := s.poolFor(language)
	if err != nil {
		return err
	}
	if participant.ID == "" {
		return agoraerrors.New(agoraerrors.CodeParticipantIDRequired, "participant id is required")
	}

	s.mu.Lock()
	if s.registry.IsOccupied(participant.ID) {
		s.mu.Unlock()
		s.deliver(ctx, []outboundMessage{{participant.ID, s.renderer.AlreadyInQueue(uiLocale), notify.KeyboardInQueue}})
		return occupiedError(participant.ID)
	}

	pool.AppendSingle(participant)
	s.registry.Upsert(participant.ID, domain.InvolvementRecord{
		Language: language,
		Role:     domain.RolePlayer,
		Status:   domain.StatusWaitingSingle,
		UILocale: uiLocale,
	})
	waiting := pool.WaitingPlayers()
	s.mu.Unlock()

	log.Printf("participant %s joined %s queue as single player", participant.ID, language)
	s.deliver(ctx, []outboundMessage{{
		participant.ID,
		s.renderer.WaitingForPlayers(uiLocale, language, waiting, s.cfg.PlayersPerRoom()),
		notify.KeyboardInQueue,
	}})
	s.Match(ctx, language)
	return nil
}

// JoinTeam queues a participant for team play. The first caller holds the
// pending-partner slot; the second completes the team.
func (s *Service) JoinTeam(ctx context.Context, participant domain.ParticipantRef, language string, uiLocale string) error {
	pool, err := s.poolFor(language)
	if err != nil {
		return err
	}
	if participant.ID == "" {
		return agoraerrors.New(agoraerrors.CodeParticipantIDRequired, "participant id is required")
	}

	s.mu.Lock()
	if s.registry.IsOccupied(participant.ID) {
		s.mu.Unlock()
		s.deliver(ctx, []outboundMessage{{participant.ID, s.renderer.AlreadyInQueue(uiLocale), notify.KeyboardInQueue}})
		return occupiedError(participant.ID)
	}

	held, ok := pool.Pending.Peek()
	if !ok {
		pool.Pending.Hold(participant)
		s.registry.Upsert(participant.ID, domain.InvolvementRecord{
			Language: language,
			Role:     domain.RolePlayer,
			Status:   domain.StatusWaitingTeamPartner,
			UILocale: uiLocale,
		})
		s.mu.Unlock()

		log.Printf("participant %s waits for a teammate in %s queue", participant.ID, language)
		s.deliver(ctx, []outboundMessage{{
			participant.ID,
			s.renderer.WaitingForTeammate(uiLocale, language),
			notify.KeyboardInQueue,
		}})
		return nil
	}

	if held.ID == participant.ID {
		s.mu.Unlock()
		s.deliver(ctx, []outboundMessage{{participant.ID, s.renderer.CannotTeamWithSelf(uiLocale), notify.KeyboardMainMenu}})
		return agoraerrors.WithMetadata(agoraerrors.CodeSelfTeaming,
			"participant cannot be their own teammate",
			map[string]string{"participant_id": participant.ID})
	}

	team, err := domain.NewTeam(held, participant)
	if err != nil {
		s.mu.Unlock()
		return agoraerrors.Wrap(agoraerrors.CodeUnknown, "form pending team", err)
	}
	pool.Pending.Clear()
	pool.AppendTeam(team)
	s.registry.SetStatus(held.ID, domain.StatusWaitingAsTeam)
	s.registry.Upsert(participant.ID, domain.InvolvementRecord{
		Language: language,
		Role:     domain.RolePlayer,
		Status:   domain.StatusWaitingAsTeam,
		UILocale: uiLocale,
	})
	heldLocale := s.localeOf(held.ID)
	s.mu.Unlock()

	log.Printf("team formed in %s queue: %s and %s", language, held.ID, participant.ID)
	s.deliver(ctx, []outboundMessage{
		{held.ID, s.renderer.TeamComplete(heldLocale, language), notify.KeyboardInQueue},
		{participant.ID, s.renderer.TeamComplete(uiLocale, language), notify.KeyboardInQueue},
	})
	s.Match(ctx, language)
	return nil
}

// JoinJudge queues a participant as a judge for a language.
func (s *Service) JoinJudge(ctx context.Context, participant domain.ParticipantRef, language string, uiLocale string) error {
	pool, err := s.poolFor(language)
	if err != nil {
		return err
	}
	if participant.ID == "" {
		return agoraerrors.New(agoraerrors.CodeParticipantIDRequired, "participant id is required")
	}

	s.mu.Lock()
	if s.registry.IsOccupied(participant.ID) {
		s.mu.Unlock()
		s.deliver(ctx, []outboundMessage{{participant.ID, s.renderer.AlreadyInQueue(uiLocale), notify.KeyboardInQueue}})
		return occupiedError(participant.ID)
	}

	pool.AppendJudge(participant)
	s.registry.Upsert(participant.ID, domain.InvolvementRecord{
		Language: language,
		Role:     domain.RoleJudge,
		Status:   domain.StatusWaitingJudge,
		UILocale: uiLocale,
	})
	s.mu.Unlock()

	log.Printf("participant %s joined %s queue as judge", participant.ID, language)
	s.deliver(ctx, []outboundMessage{{
		participant.ID,
		s.renderer.WaitingForJudge(uiLocale, language),
		notify.KeyboardInQueue,
	}})
	s.Match(ctx, language)
	return nil
}

// Leave removes a participant from whichever queue they occupy, cascading a
// team dissolution to the surviving member.
func (s *Service) Leave(ctx context.Context, participantID string) error {
	return s.remove(ctx, participantID, false)
}

// remove implements departure. With suppressed notifications it is the
// unreachable-eviction path: the departing participant is never messaged.
func (s *Service) remove(ctx context.Context, participantID string, suppress bool) error {
	s.mu.Lock()

	if _, inFlight := s.reserved[participantID]; inFlight {
		// A reservation holds this participant out of the pools while the
		// meeting is being provisioned; treat it like an active game.
		s.mu.Unlock()
		if !suppress {
			s.deliver(ctx, []outboundMessage{{participantID, s.renderer.CannotLeaveActiveGame(s.localeOfLocked(participantID)), notify.KeyboardNone}})
		}
		return agoraerrors.New(agoraerrors.CodeCannotLeaveActiveGame, "participant is being placed into a room")
	}

	record, ok := s.registry.Remove(participantID)
	if !ok {
		s.mu.Unlock()
		if !suppress {
			s.deliver(ctx, []outboundMessage{{participantID, s.renderer.NotInAnyQueue(defaultLocale), notify.KeyboardMainMenu}})
		}
		return agoraerrors.New(agoraerrors.CodeNotInAnyQueue, "participant is not in any queue")
	}

	if record.Status == domain.StatusInGame {
		s.registry.Upsert(participantID, record)
		s.mu.Unlock()
		if !suppress {
			s.deliver(ctx, []outboundMessage{{participantID, s.renderer.CannotLeaveActiveGame(record.UILocale), notify.KeyboardNone}})
		}
		return agoraerrors.WithMetadata(agoraerrors.CodeCannotLeaveActiveGame,
			"participant is in an active game",
			map[string]string{"room_id": record.RoomID})
	}

	pool := s.pools[record.Language]
	var cascade []outboundMessage
	if pool != nil {
		switch record.Status {
		case domain.StatusWaitingSingle:
			pool.RemoveSingle(participantID)
		case domain.StatusWaitingJudge:
			pool.RemoveJudge(participantID)
		case domain.StatusWaitingTeamPartner:
			if held, ok := pool.Pending.Peek(); ok && held.ID == participantID {
				pool.Pending.Clear()
			}
		case domain.StatusWaitingAsTeam:
			if team, ok := pool.RemoveTeamWith(participantID); ok {
				if partner, ok := team.Other(participantID); ok {
					if _, exists := s.registry.Get(partner.ID); exists {
						s.registry.SetStatus(partner.ID, domain.StatusWaitingSingle)
						pool.AppendSingle(partner)
						departed, _ := team.Other(partner.ID)
						cascade = append(cascade, outboundMessage{
							partner.ID,
							s.renderer.TeammateLeft(s.localeOf(partner.ID), departed.DisplayName, record.Language),
							notify.KeyboardInQueue,
						})
					}
				}
			}
		}
	}
	s.mu.Unlock()

	log.Printf("participant %s left %s queue (status %v)", participantID, record.Language, record.Status)
	if !suppress {
		s.deliver(ctx, []outboundMessage{{participantID, s.renderer.LeftQueue(record.UILocale), notify.KeyboardMainMenu}})
	}
	s.deliver(ctx, cascade)
	s.Match(ctx, record.Language)
	return nil
}

// Match runs matchmaking passes for one language until no further progress
// is possible. Re-running it on an unchanged pool performs no action, so
// re-triggering after every mutation is always safe.
func (s *Service) Match(ctx context.Context, language string) {
	for {
		s.mu.Lock()
		pool, ok := s.pools[language]
		if !ok {
			s.mu.Unlock()
			return
		}

		var paired []outboundMessage
		for _, team := range domain.FormTeams(pool) {
			s.registry.SetStatus(team.First.ID, domain.StatusWaitingAsTeam)
			s.registry.SetStatus(team.Second.ID, domain.StatusWaitingAsTeam)
			paired = append(paired,
				outboundMessage{team.First.ID, s.renderer.PairedWithTeammate(s.localeOf(team.First.ID), team.Second.DisplayName, language), notify.KeyboardInQueue},
				outboundMessage{team.Second.ID, s.renderer.PairedWithTeammate(s.localeOf(team.Second.ID), team.First.DisplayName, language), notify.KeyboardInQueue},
			)
			log.Printf("formed team from singles in %s queue: %s and %s", language, team.First.ID, team.Second.ID)
		}

		reservation, reservedOK := domain.Reserve(pool, s.cfg.TeamsPerRoom, s.cfg.JudgesPerRoom)
		var locales map[string]string
		if reservedOK {
			locales = make(map[string]string, len(reservation.Participants()))
			for _, participant := range reservation.Participants() {
				s.reserved[participant.ID] = language
				locales[participant.ID] = s.localeOf(participant.ID)
			}
		}
		s.mu.Unlock()

		s.deliver(ctx, paired)
		if !reservedOK {
			return
		}

		// Reservation happened before this suspending call; no concurrent
		// pass can see the reserved participants.
		event, err := s.createMeeting(ctx, language)
		usable := err == nil && event.JoinURL != ""
		if err == nil && !usable && event.EventID != "" {
			if deleteErr := s.provider.Delete(ctx, event.EventID); deleteErr != nil {
				log.Printf("delete linkless meeting event %s: %v", event.EventID, deleteErr)
			}
		}

		if !usable {
			if err != nil {
				log.Printf("create meeting for %s room failed: %v", language, err)
			} else {
				log.Printf("create meeting for %s room returned no usable link", language)
			}
			s.mu.Lock()
			reservation.Release(pool)
			for _, participant := range reservation.Participants() {
				delete(s.reserved, participant.ID)
			}
			s.mu.Unlock()

			var failures []outboundMessage
			for _, participant := range reservation.Participants() {
				failures = append(failures, outboundMessage{
					participant.ID,
					s.renderer.MeetingCreateFailed(locales[participant.ID]),
					notify.KeyboardInQueue,
				})
			}
			s.deliver(ctx, failures)
			// No automatic retry: the next arrival or departure re-triggers.
			return
		}

		s.mu.Lock()
		roomID := domain.NewRoomID(language, event.EventID)
		room := domain.Room{
			ID:          roomID,
			Language:    language,
			Judge:       reservation.Judges[0],
			Teams:       reservation.Teams,
			MeetingLink: event.JoinURL,
			EventID:     event.EventID,
			CreatedAt:   s.clock().UTC(),
		}
		s.rooms = append(s.rooms, room)
		for _, participant := range reservation.Participants() {
			s.registry.SetInGame(participant.ID, roomID)
			delete(s.reserved, participant.ID)
		}
		s.mu.Unlock()

		log.Printf("room %s formed for %s with %d teams", roomID, language, len(room.Teams))

		var ready []outboundMessage
		for _, judge := range reservation.Judges {
			ready = append(ready, outboundMessage{
				judge.ID,
				s.renderer.RoomReadyJudge(locales[judge.ID], language, event.JoinURL),
				notify.KeyboardNone,
			})
		}
		for _, team := range reservation.Teams {
			ready = append(ready,
				outboundMessage{team.First.ID, s.renderer.RoomReadyPlayer(locales[team.First.ID], team.Second.DisplayName, language, event.JoinURL), notify.KeyboardNone},
				outboundMessage{team.Second.ID, s.renderer.RoomReadyPlayer(locales[team.Second.ID], team.First.DisplayName, language, event.JoinURL), notify.KeyboardNone},
			)
		}
		s.deliver(ctx, ready)
		// More participants may already be queued behind this batch.
	}
}

// ActiveRooms returns a snapshot of rooms formed during this process.
func (s *Service) ActiveRooms() []domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// createMeeting asks the provider for a meeting resource over the configured
// window.
func (s *Service) createMeeting(ctx context.Context, language string) (meeting.Event, error) {
	start := s.clock().In(s.location)
	end := start.Add(s.cfg.MeetDuration)
	upper := strings.ToUpper(language)
	return s.provider.Create(ctx, meeting.Request{
		Summary:     fmt.Sprintf("Debate Game Room (%s)", upper),
		Description: fmt.Sprintf("Debate game. Language: %s.", upper),
		Window: meeting.Window{
			Start:    start,
			End:      end,
			TimeZone: s.location.String(),
		},
	})
}

// deliver sends rendered messages through the sink. A permanent delivery
// failure evicts the recipient from their queue with notifications
// suppressed so an unreachable participant never blocks a room.
func (s *Service) deliver(ctx context.Context, messages []outboundMessage) {
	for _, msg := range messages {
		err := s.sink.Send(ctx, msg.participantID, msg.text, msg.keyboard)
		if err == nil {
			continue
		}
		if notify.IsUnreachable(err) {
			log.Printf("participant %s is unreachable, evicting: %v", msg.participantID, err)
			if removeErr := s.remove(ctx, msg.participantID, true); removeErr != nil {
				log.Printf("evict unreachable participant %s: %v", msg.participantID, removeErr)
			}
			continue
		}
		log.Printf("send notification to %s: %v", msg.participantID, err)
	}
}

// poolFor resolves the pool for a language.
func (s *Service) poolFor(language string) (*domain.QueuePool, error) {
	pool, ok := s.pools[language]
	if !ok {
		return nil, agoraerrors.WithMetadata(agoraerrors.CodeLanguageUnsupported,
			"no queue pool for language",
			map[string]string{"language": language})
	}
	return pool, nil
}

// localeOf returns a participant's UI locale. Callers must hold the lock.
func (s *Service) localeOf(participantID string) string {
	if record, ok := s.registry.Get(participantID); ok && record.UILocale != "" {
		return record.UILocale
	}
	return defaultLocale
}

// localeOfLocked acquires the lock to read a participant's UI locale.
func (s *Service) localeOfLocked(participantID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.localeOf(participantID)
}

func occupiedError(participantID string) error {
	return agoraerrors.WithMetadata(agoraerrors.CodeAlreadyOccupied,
		"participant is already queued or in a game",
		map[string]string{"participant_id": participantID})
}
