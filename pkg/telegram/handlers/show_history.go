package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/vikarrry7/zoobot/pkg/domain"
	"github.com/vikarrry7/zoobot/pkg/logger"
)

const historyLimit = 5

type showHistoryRecognitionProvider interface {
	ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Recognition, error)
}

// ShowHistory handles /history: the last few photo recognitions for the chat.
func ShowHistory(recognitions showHistoryRecognitionProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		recs, err := recognitions.ListRecent(ctx, chatID, historyLimit)
		if err != nil {
			slog.ErrorContext(ctx, "Listing recognitions failed", logger.Err(err))
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   fmt.Sprintf("❌ Не удалось получить историю: %s", err),
			})
			return
		}

		if len(recs) == 0 {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "История распознаваний пуста. Отправьте фото — и она появится!",
			})
			return
		}

		lines := lo.Map(recs, func(rec domain.Recognition, _ int) string {
			return fmt.Sprintf("• %s — %s (%s)",
				rec.CreatedAt.Format("02.01 15:04"), rec.Label, strings.Join(rec.Labels, ", "))
		})

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "🕘 Последние распознавания:\n" + strings.Join(lines, "\n"),
		})
	}
}
