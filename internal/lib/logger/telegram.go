package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

// Alerter sends a text alert to the operations chat.
type Alerter interface {
	SendAlert(text string) error
}

// TgAlerter forwards alerts to a Telegram admin chat.
type TgAlerter struct {
	bot    *gotgbot.Bot
	chatId int64
}

func NewTgAlerter(apiKey string, adminId int64) (*TgAlerter, error) {
	bot, err := gotgbot.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &TgAlerter{bot: bot, chatId: adminId}, nil
}

func (a *TgAlerter) SendAlert(text string) error {
	_, err := a.bot.SendMessage(a.chatId, text, nil)
	return err
}

// alertHandler duplicates records at or above the threshold to an Alerter
// while delegating everything to the wrapped handler.
type alertHandler struct {
	next    slog.Handler
	alerter Alerter
	level   slog.Level
}

// SetupAlertHandler wraps the logger so error-level records also reach the
// operations chat. Failed deliveries are dropped: alerting must never take
// the service down.
func SetupAlertHandler(log *slog.Logger, alerter Alerter, level slog.Level) *slog.Logger {
	return slog.New(&alertHandler{
		next:    log.Handler(),
		alerter: alerter,
		level:   level,
	})
}

func (h *alertHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *alertHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		text := fmt.Sprintf("[%s] %s", r.Level, r.Message)
		r.Attrs(func(a slog.Attr) bool {
			text += fmt.Sprintf("\n%s: %s", a.Key, a.Value)
			return true
		})
		go func() { _ = h.alerter.SendAlert(text) }()
	}
	return h.next.Handle(ctx, r)
}

func (h *alertHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &alertHandler{next: h.next.WithAttrs(attrs), alerter: h.alerter, level: h.level}
}

func (h *alertHandler) WithGroup(name string) slog.Handler {
	return &alertHandler{next: h.next.WithGroup(name), alerter: h.alerter, level: h.level}
}
