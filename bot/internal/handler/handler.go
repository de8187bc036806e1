package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/misshanya/link-shortener/bot/internal/notifier"
	"github.com/misshanya/link-shortener/pkg/form"
)

const usage = "Send me a long URL to get a short one.\n" +
	"Add a custom short code after it if you want one:\n" +
	"https://example.com/very/long/url my-code"

type service interface {
	ShortenURL(ctx context.Context, longURL, customShort string) (*form.Result, error)
}

type botAPI interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	AnswerInlineQuery(ctx context.Context, params *bot.AnswerInlineQueryParams) (bool, error)
}

type Handler struct {
	l *slog.Logger
	s service
}

func New(logger *slog.Logger, svc service) *Handler {
	return &Handler{l: logger, s: svc}
}

func (h *Handler) Default(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handle(ctx, b, update)
}

func (h *Handler) handle(ctx context.Context, api botAPI, update *models.Update) {
	switch {
	case update.InlineQuery != nil:
		h.inlineQuery(ctx, api, update.InlineQuery)
	case update.Message != nil:
		h.message(ctx, api, update.Message)
	}
}

func (h *Handler) message(ctx context.Context, api botAPI, msg *models.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if text == "/start" || text == "/help" {
		h.reply(ctx, api, chatID, usage)
		return
	}

	longURL, customShort := parseInput(text)

	result, err := h.s.ShortenURL(ctx, longURL, customShort)
	if err != nil {
		// Failures stay inline, notifications are for results only
		errMsg := form.Message(err)
		if errMsg == "" {
			errMsg = form.MsgRequestFailed
		}
		h.reply(ctx, api, chatID, "⚠️ "+errMsg)
		return
	}

	if err := notifier.New(api).Notify(ctx, chatID,
		"Your short link is ready: "+result.ShortURL,
		&notifier.Action{Label: "Open", URL: result.ShortURL},
	); err != nil {
		h.l.Error("failed to notify", slog.Any("error", err))
	}
}

func (h *Handler) inlineQuery(ctx context.Context, api botAPI, query *models.InlineQuery) {
	// Log new query
	h.l.Info("new inline query", slog.String("query", query.Query))

	// Validate URL
	if err := form.Validate(query.Query); err != nil {
		return
	}

	// Short URL
	result, err := h.s.ShortenURL(ctx, query.Query, "")
	if err != nil {
		return
	}

	// Answer
	if _, err := api.AnswerInlineQuery(ctx, &bot.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results: []models.InlineQueryResult{
			&models.InlineQueryResultArticle{
				ID:                  uuid.NewString(),
				Title:               "Shortened URL",
				Description:         result.ShortURL,
				URL:                 result.ShortURL,
				InputMessageContent: models.InputTextMessageContent{MessageText: result.ShortURL},
			},
		},
	}); err != nil {
		h.l.Error("failed to answer inline query", slog.Any("error", err))
	}
}

func (h *Handler) reply(ctx context.Context, api botAPI, chatID int64, text string) {
	if _, err := api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		h.l.Error("failed to send message", slog.Any("error", err))
	}
}

// parseInput splits "<long url> [custom code]". Anything after the code is ignored.
func parseInput(text string) (longURL, customShort string) {
	fields := strings.Fields(text)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], fields[1]
	}
}
