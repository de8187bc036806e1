package notifier

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Action is an optional button embedded in a notification.
type Action struct {
	Label string
	URL   string
}

type Notifier struct {
	s sender
}

func New(s sender) *Notifier {
	return &Notifier{s: s}
}

// Notify queues message to the chat. A non-nil action is attached as an inline URL button.
func (n *Notifier) Notify(ctx context.Context, chatID int64, message string, action *Action) error {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   message,
	}

	if action != nil {
		params.ReplyMarkup = &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{{Text: action.Label, URL: action.URL}},
			},
		}
	}

	_, err := n.s.SendMessage(ctx, params)
	return err
}
