package repository

import (
	"sync"

	"github.com/vikarrry7/zoobot/pkg/domain"
)

// contextRepository keeps per-chat conversation context in memory for
// the lifetime of the process. The bot library dispatches handlers on
// separate goroutines, so access is lock-guarded.
type contextRepository struct {
	mu       sync.RWMutex
	contexts map[int64]domain.ConversationContext
}

func NewContextRepository() *contextRepository {
	return &contextRepository{
		contexts: make(map[int64]domain.ConversationContext),
	}
}

// Get returns the stored context for the chat, or an empty one if the
// chat has never sent a photo.
func (r *contextRepository) Get(chatID int64) domain.ConversationContext {
	r.mu.RLock()
	defer r.mu.RUnlock()

	convCtx, ok := r.contexts[chatID]
	if !ok {
		return domain.ConversationContext{}
	}
	// Copy the slice so callers cannot mutate stored state.
	topics := make([]string, len(convCtx.DetectedTopics))
	copy(topics, convCtx.DetectedTopics)
	convCtx.DetectedTopics = topics
	return convCtx
}

// Update overwrites the chat's context with the latest classification.
func (r *contextRepository) Update(chatID int64, topLabel string, allLabels []string) {
	topics := make([]string, len(allLabels))
	copy(topics, allLabels)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.contexts[chatID] = domain.ConversationContext{
		LastPhotoTopic: topLabel,
		DetectedTopics: topics,
	}
}

// Reset clears the chat's context, as /start does.
func (r *contextRepository) Reset(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contexts[chatID] = domain.ConversationContext{}
}
