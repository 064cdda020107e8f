package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/vikarrry7/zoobot/pkg/render"
)

const welcomeText = `📝 *Что умеет бот:*
• Отвечать на вопросы о животных на русском и английском
• Распознавать объекты на фотографиях
• Поддерживать уточняющие вопросы
• Рассказывать о ИИ, животных, технологиях

🐹 *Примеры запросов (русский):*
• Кто такие хомяки?
• Расскажи о слонах
• Как спят дельфины?
• Что такое ИИ?
• Что такое вопросительный знак?

🐘 *Примеры запросов (английский):*
• Tell me about elephants
• What is artificial intelligence?
• How do dolphins sleep?

📷 *Отправьте фото* — бот распознает объекты на изображении

🔍 *Уточняющие вопросы* после фото:
• Какое именно это животное?
• Что это за объект?
• Расскажи подробнее`

type StartContextResetter interface {
	Reset(chatID int64)
}

// Start handles /start and /help: the conversation context is wiped and
// the user gets the capability overview.
func Start(contexts StartContextResetter) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		contexts.Reset(chatID)
		slog.InfoContext(ctx, "Session started", "chatID", chatID)

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      render.ToHTML(welcomeText),
			ParseMode: models.ParseModeHTML,
		})
	}
}
