// Package googlecal provisions Google Meet links by inserting Google
// Calendar events with a conference-data create request.
package googlecal

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/louisbranch/agora/internal/meeting"
	"github.com/louisbranch/agora/internal/platform/id"
)

const calendarID = "primary"

// Provider implements meeting.Provider on top of the Google Calendar API.
type Provider struct {
	service *calendar.Service
	newID   func() (string, error)
}

// New creates a provider authenticated with a service-account credentials
// file.
func New(ctx context.Context, credentialsPath string) (*Provider, error) {
	service, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Provider{service: service, newID: id.NewID}, nil
}

// Create inserts a calendar event requesting a Google Meet conference and
// returns the event identifier and join link.
func (p *Provider) Create(ctx context.Context, req meeting.Request) (meeting.Event, error) {
	requestID, err := p.newID()
	if err != nil {
		return meeting.Event{}, fmt.Errorf("generate conference request id: %w", err)
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.Window.Start.Format(time.RFC3339),
			TimeZone: req.Window.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.Window.End.Format(time.RFC3339),
			TimeZone: req.Window.TimeZone,
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: requestID,
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}
	for _, email := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	created, err := p.service.Events.Insert(calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return meeting.Event{}, fmt.Errorf("insert calendar event: %w", err)
	}

	return meeting.Event{
		EventID: created.Id,
		JoinURL: joinURL(created),
	}, nil
}

// Delete removes the calendar event and its conference.
func (p *Provider) Delete(ctx context.Context, eventID string) error {
	if err := p.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete calendar event %s: %w", eventID, err)
	}
	return nil
}

// joinURL extracts the first video entry point of the created conference.
func joinURL(event *calendar.Event) string {
	if event == nil || event.ConferenceData == nil {
		return ""
	}
	for _, entry := range event.ConferenceData.EntryPoints {
		if entry != nil && entry.EntryPointType == "video" && entry.Uri != "" {
			return entry.Uri
		}
	}
	if event.HangoutLink != "" {
		return event.HangoutLink
	}
	return ""
}
