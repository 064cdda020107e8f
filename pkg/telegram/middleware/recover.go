package middleware

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Recover is the outermost safety net: a panicking handler is logged and
// the user gets a truncated generic apology instead of silence.
func Recover(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			slog.ErrorContext(ctx, "Handler panicked", "panic", r)

			if update.Message == nil {
				return
			}
			msg := fmt.Sprint(r)
			if len(msg) > 100 {
				msg = msg[:100]
			}
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: update.Message.Chat.ID,
				Text:   "⚠️ Произошла ошибка: " + msg,
			})
		}()
		next(ctx, b, update)
	}
}
