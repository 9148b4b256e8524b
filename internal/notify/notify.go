// Package notify defines the notification delivery boundary. The core
// selects a keyboard affordance token alongside each message; rendering the
// affordance is the sink's concern.
package notify

import (
	"context"
	"errors"
)

// Keyboard is an opaque UI-affordance token attached to a message.
type Keyboard string

const (
	// KeyboardNone removes any queue controls; the game has started.
	KeyboardNone Keyboard = "none"
	// KeyboardInQueue offers leave-queue and stats controls.
	KeyboardInQueue Keyboard = "in_queue"
	// KeyboardMainMenu offers the top-level play and stats controls.
	KeyboardMainMenu Keyboard = "main_menu"
)

// ErrUnreachable marks a permanent delivery failure: the recipient blocked
// the sender, was deactivated, or cannot be found. Callers evict unreachable
// participants so they do not occupy queue slots forever.
var ErrUnreachable = errors.New("recipient unreachable")

// IsUnreachable reports whether the error marks a permanent delivery failure.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

// Sink delivers one rendered message to one participant.
type Sink interface {
	Send(ctx context.Context, participantID string, text string, keyboard Keyboard) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, participantID string, text string, keyboard Keyboard) error

// Send implements Sink.
func (f SinkFunc) Send(ctx context.Context, participantID string, text string, keyboard Keyboard) error {
	return f(ctx, participantID, text, keyboard)
}
