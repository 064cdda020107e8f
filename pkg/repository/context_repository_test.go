package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRepository_RoundTrip(t *testing.T) {
	repo := NewContextRepository()

	repo.Update(42, "dog", []string{"dog", "puppy", "canine"})

	convCtx := repo.Get(42)
	assert.Equal(t, "dog", convCtx.LastPhotoTopic)
	assert.Equal(t, []string{"dog", "puppy", "canine"}, convCtx.DetectedTopics)
}

func TestContextRepository_GetUnknownChat(t *testing.T) {
	repo := NewContextRepository()

	convCtx := repo.Get(7)
	assert.Empty(t, convCtx.LastPhotoTopic)
	assert.Empty(t, convCtx.DetectedTopics)
}

func TestContextRepository_UpdateOverwrites(t *testing.T) {
	repo := NewContextRepository()

	repo.Update(1, "cat", []string{"cat", "pet"})
	repo.Update(1, "dog", []string{"dog"})

	convCtx := repo.Get(1)
	assert.Equal(t, "dog", convCtx.LastPhotoTopic)
	assert.Equal(t, []string{"dog"}, convCtx.DetectedTopics)
}

func TestContextRepository_Reset(t *testing.T) {
	repo := NewContextRepository()

	repo.Update(1, "cat", []string{"cat"})
	repo.Reset(1)

	convCtx := repo.Get(1)
	assert.Empty(t, convCtx.LastPhotoTopic)
	assert.Empty(t, convCtx.DetectedTopics)
}

func TestContextRepository_CallerCannotMutateStoredState(t *testing.T) {
	repo := NewContextRepository()

	labels := []string{"dog", "puppy"}
	repo.Update(1, "dog", labels)
	labels[0] = "mutated"

	convCtx := repo.Get(1)
	convCtx.DetectedTopics[1] = "also mutated"

	again := repo.Get(1)
	assert.Equal(t, []string{"dog", "puppy"}, again.DetectedTopics)
}

func TestContextRepository_ConcurrentAccess(t *testing.T) {
	repo := NewContextRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			chatID := int64(i % 5)
			repo.Update(chatID, fmt.Sprintf("label-%d", i), []string{"a", "b"})
			_ = repo.Get(chatID)
		}(i)
	}
	wg.Wait()

	for chatID := int64(0); chatID < 5; chatID++ {
		convCtx := repo.Get(chatID)
		assert.NotEmpty(t, convCtx.LastPhotoTopic)
		assert.Len(t, convCtx.DetectedTopics, 2)
	}
}
