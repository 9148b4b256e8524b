// Package telegram delivers notifications over the Telegram Bot API.
// Participant identifiers are Telegram chat IDs in decimal form.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/louisbranch/agora/internal/notify"
)

// botAPI is the slice of the Telegram client the sink uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Sink implements notify.Sink over a Telegram bot.
type Sink struct {
	bot botAPI
}

// New creates a sink from a bot token.
func New(token string) (*Sink, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Sink{bot: bot}, nil
}

// NewWithBot creates a sink around an existing bot client.
func NewWithBot(bot botAPI) *Sink {
	return &Sink{bot: bot}
}

// Send delivers the message, translating permanent Telegram delivery
// failures into notify.ErrUnreachable.
func (s *Sink) Send(_ context.Context, participantID string, text string, keyboard notify.Keyboard) error {
	chatID, err := strconv.ParseInt(strings.TrimSpace(participantID), 10, 64)
	if err != nil {
		return fmt.Errorf("parse chat id %q: %w", participantID, err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = replyMarkup(keyboard)

	if _, err := s.bot.Send(msg); err != nil {
		if isPermanentDeliveryError(err) {
			return fmt.Errorf("send to chat %d: %w: %s", chatID, notify.ErrUnreachable, err)
		}
		return fmt.Errorf("send to chat %d: %w", chatID, err)
	}
	return nil
}

// replyMarkup maps an affordance token to a Telegram reply keyboard.
func replyMarkup(keyboard notify.Keyboard) any {
	switch keyboard {
	case notify.KeyboardInQueue:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton("Leave queue")),
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton("Stats")),
		)
	case notify.KeyboardMainMenu:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton("Play")),
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton("Stats")),
		)
	default:
		return tgbotapi.NewRemoveKeyboard(false)
	}
}

// isPermanentDeliveryError classifies Telegram API failures that will never
// succeed on retry: the bot was blocked, the account is gone, or the chat
// does not exist.
func isPermanentDeliveryError(err error) bool {
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "bot was blocked") ||
		strings.Contains(message, "user is deactivated") ||
		strings.Contains(message, "chat not found")
}
