package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/vikarrry7/zoobot/pkg/domain"
	"github.com/vikarrry7/zoobot/pkg/logger"
	"github.com/vikarrry7/zoobot/pkg/render"
	"github.com/vikarrry7/zoobot/pkg/vision/clarifai"
)

type recognizePhotoClassifier interface {
	Classify(ctx context.Context, imagePath string) ([]domain.Concept, error)
}

type recognizePhotoContextUpdater interface {
	Update(chatID int64, topLabel string, allLabels []string)
}

type recognizePhotoKnowledgeBase interface {
	Describe(topic string) (string, bool)
}

type recognizePhotoSummaryProvider interface {
	Summary(ctx context.Context, title, lang string, sentences int) (string, error)
}

type recognizePhotoRecognitionSaver interface {
	Save(ctx context.Context, rec *domain.Recognition) error
}

// RecognizePhoto downloads the largest rendition of an incoming photo,
// classifies it, updates the conversation context, and replies with the
// recognized subject plus suggested follow-up questions.
func RecognizePhoto(
	classifier recognizePhotoClassifier,
	contexts recognizePhotoContextUpdater,
	kb recognizePhotoKnowledgeBase,
	encyclopedia recognizePhotoSummaryProvider,
	recognitions recognizePhotoRecognitionSaver,
) bot.HandlerFunc {
	downloadFile := func(link, path string) error {
		resp, err := http.Get(link)
		if err != nil {
			return fmt.Errorf("downloading photo: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("downloading photo: unexpected status code %d", resp.StatusCode)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating photo file: %w", err)
		}
		defer f.Close()

		if _, err := io.Copy(f, resp.Body); err != nil {
			return fmt.Errorf("writing photo file: %w", err)
		}
		return nil
	}

	fetchPhoto := func(ctx context.Context, b *bot.Bot, update *models.Update) (string, error) {
		tempDir := filepath.Join(os.TempDir(), "bot_images")
		if err := os.MkdirAll(tempDir, os.ModePerm); err != nil {
			return "", fmt.Errorf("creating temp directory: %w", err)
		}

		// The last photo size is the largest rendition.
		photo := update.Message.Photo[len(update.Message.Photo)-1]
		file, err := b.GetFile(ctx, &bot.GetFileParams{FileID: photo.FileID})
		if err != nil {
			return "", fmt.Errorf("getting photo file metadata: %w", err)
		}

		path := filepath.Join(tempDir, fmt.Sprintf("photo_%d_%s.jpg",
			update.Message.From.ID, time.Now().Format("150405")))
		if err := downloadFile(b.FileDownloadLink(file), path); err != nil {
			return "", err
		}
		return path, nil
	}

	classifyErrorText := func(err error) string {
		var statusErr *clarifai.StatusError
		switch {
		case errors.Is(err, clarifai.ErrMissingAPIKey):
			return "❌ API ключ Clarifai не задан"
		case errors.Is(err, fs.ErrNotExist):
			return "❌ Файл не найден"
		case errors.As(err, &statusErr):
			return fmt.Sprintf("❌ ошибка %d", statusErr.Code)
		default:
			return "❌ ошибка анализа"
		}
	}

	describe := func(ctx context.Context, label string) string {
		if desc, ok := kb.Describe(label); ok {
			return desc
		}
		if summary, err := encyclopedia.Summary(ctx, label, domain.LangRU, 2); err == nil {
			return summary
		}
		return fmt.Sprintf("Это объект категории '%s'. Для получения подробной информации задайте уточняющий вопрос.", label)
	}

	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      render.ToHTML("📸 *Анализирую изображение...*"),
			ParseMode: models.ParseModeHTML,
		})

		path, err := fetchPhoto(ctx, b, update)
		if err != nil {
			slog.ErrorContext(ctx, "Fetching photo failed", logger.Err(err))
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "⚠️ Ошибка при обработке изображения",
			})
			return
		}
		// Best-effort cleanup; the file only lives for this handler call.
		defer os.Remove(path)

		concepts, err := classifier.Classify(ctx, path)
		if err != nil {
			slog.ErrorContext(ctx, "Classification failed", logger.Err(err))
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   classifyErrorText(err),
			})
			return
		}

		main, labels := clarifai.TopConcepts(concepts)
		if main == "" {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "🤔 Не удалось распознать объекты на фото. Попробуйте другое изображение с более четким объектом.",
			})
			return
		}

		slog.InfoContext(ctx, "Photo recognized", "chatID", chatID, "main", main, "labels", labels)

		contexts.Update(chatID, main, labels)

		if err := recognitions.Save(ctx, &domain.Recognition{
			ChatID: chatID,
			Label:  main,
			Labels: labels,
		}); err != nil {
			slog.WarnContext(ctx, "Saving recognition failed", logger.Err(err))
		}

		text := fmt.Sprintf("📷 *На фото распознан:* %s\n\n%s", main, describe(ctx, main))

		if others := lo.Slice(labels, 1, 4); len(others) > 0 {
			text += "\n\n👀 *Также на фото:* " + strings.Join(others, ", ")
		}

		text += fmt.Sprintf("\n\n💡 *Можно уточнить:*\n• «Какое именно это %s?»\n• «Расскажи подробнее»\n• «Что это за %s?»", main, main)

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      render.ToHTML(text),
			ParseMode: models.ParseModeHTML,
		})
	}
}
