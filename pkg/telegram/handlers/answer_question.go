package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/vikarrry7/zoobot/pkg/domain"
	"github.com/vikarrry7/zoobot/pkg/language"
	"github.com/vikarrry7/zoobot/pkg/logger"
	"github.com/vikarrry7/zoobot/pkg/render"
	"github.com/vikarrry7/zoobot/pkg/resolver"
	"github.com/vikarrry7/zoobot/pkg/wiki"
)

type answerQuestionContextProvider interface {
	Get(chatID int64) domain.ConversationContext
}

type answerQuestionKnowledgeBase interface {
	Answer(key, lang string) (string, bool)
}

type answerQuestionSummaryProvider interface {
	Summary(ctx context.Context, title, lang string, sentences int) (string, error)
}

// AnswerQuestion handles plain text messages: detect language, resolve
// the keyphrase against the conversation context, then answer from the
// knowledge base or the encyclopedia.
func AnswerQuestion(
	contexts answerQuestionContextProvider,
	kb answerQuestionKnowledgeBase,
	encyclopedia answerQuestionSummaryProvider,
) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil || update.Message.Text == "" {
			return
		}

		chatID := update.Message.Chat.ID
		text := update.Message.Text

		lang := language.Detect(text)

		convCtx := contexts.Get(chatID)
		key, ok := resolver.Resolve(text, lang, &convCtx)
		if !ok {
			slog.InfoContext(ctx, "No keyphrase resolved", "chatID", chatID)
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "Не понял ваш запрос. Пожалуйста, уточните вопрос.",
			})
			return
		}

		slog.InfoContext(ctx, "Keyphrase resolved", "chatID", chatID, "key", key, "lang", lang)

		// The clock answer needs no search acknowledgment.
		if key == domain.TopicTime {
			answer, _ := kb.Answer(key, lang)
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "⏰ " + answer,
			})
			return
		}

		ack := "🔍 *Ищу:* " + key
		if topic, isSpecific := domain.SplitSpecificTopic(key); isSpecific {
			ack = "🔎 *Уточняю информацию о:* " + topic
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      render.ToHTML(ack),
			ParseMode: models.ParseModeHTML,
		})

		answer, ok := kb.Answer(key, lang)
		if !ok {
			answer = lookupSummary(ctx, encyclopedia, key, lang)
		}

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   answer,
		})
	}
}

// lookupSummary is the default policy for encyclopedia outcomes: one
// retry on disambiguation against the first candidate with a shorter
// summary, user-displayable text for everything else. Never errors.
func lookupSummary(ctx context.Context, encyclopedia answerQuestionSummaryProvider, key, lang string) string {
	summary, err := encyclopedia.Summary(ctx, key, lang, 3)
	if err == nil {
		return summary
	}

	var ambErr *wiki.AmbiguousError
	if errors.As(err, &ambErr) {
		if len(ambErr.Options) > 0 {
			if retry, rerr := encyclopedia.Summary(ctx, ambErr.Options[0], lang, 2); rerr == nil {
				return retry + "\n\n(Также см. другие варианты)"
			}
		}
		return fmt.Sprintf("Найдено несколько вариантов для '%s'. Уточните запрос.", key)
	}

	if errors.Is(err, wiki.ErrNotFound) {
		return fmt.Sprintf("Информация по запросу '%s' не найдена в Википедии.", key)
	}

	slog.ErrorContext(ctx, "Encyclopedia lookup failed", "key", key, logger.Err(err))
	return "Произошла ошибка при поиске информации."
}
