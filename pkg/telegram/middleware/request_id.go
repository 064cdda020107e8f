package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/vikarrry7/zoobot/pkg/logger"
)

// RequestID tags the handler context with a short random identifier so
// all log lines of one update can be correlated.
func RequestID(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err == nil {
			ctx = logger.WithRequestID(ctx, hex.EncodeToString(buf))
		}
		next(ctx, b, update)
	}
}
