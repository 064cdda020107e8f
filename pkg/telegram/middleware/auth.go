package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"
)

// Auth restricts the bot to the listed user IDs. An empty list means the
// bot is open to everyone.
func Auth(authorizedUserIDs []int64) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if len(authorizedUserIDs) == 0 || update.Message == nil {
				next(ctx, b, update)
				return
			}

			userID := update.Message.From.ID
			if !lo.Contains(authorizedUserIDs, userID) {
				slog.WarnContext(ctx, "Unauthorized user", "userID", userID)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: update.Message.Chat.ID,
					Text:   "⛔ Извините, этот бот доступен только авторизованным пользователям.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
