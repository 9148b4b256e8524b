// Package meeting defines the external meeting-resource boundary. The core
// only ever extracts an event identifier and a joinable link from a created
// resource; any provider implementing this contract is interchangeable.
package meeting

import (
	"context"
	"time"
)

// Window is the scheduled time span of a meeting, expressed in an IANA zone.
type Window struct {
	Start    time.Time
	End      time.Time
	TimeZone string
}

// Request describes one meeting resource to create.
type Request struct {
	Summary     string
	Description string
	Window      Window
	// Attendees optionally lists attendee email addresses.
	Attendees []string
}

// Event is the provider-agnostic result of a successful creation.
type Event struct {
	// EventID identifies the resource for later deletion.
	EventID string
	// JoinURL is the link participants use to join. An event without a
	// usable join link is treated as a creation failure by callers.
	JoinURL string
}

// Provider creates and deletes meeting resources.
type Provider interface {
	Create(ctx context.Context, req Request) (Event, error)
	Delete(ctx context.Context, eventID string) error
}
