package matchers

import (
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HasPhoto matches updates carrying a photo message.
func HasPhoto() bot.MatchFunc {
	return func(update *models.Update) bool {
		return update.Message != nil && len(update.Message.Photo) > 0
	}
}
