package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikarrry7/zoobot/pkg/domain"
	"github.com/vikarrry7/zoobot/pkg/resolver"
)

func TestResolve_RussianAnimalWords(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"собака", "dog"},
		{"слоны", "elephant"},
		{"кто такие хомяки?", "hamster"},
		{"расскажи про кота: кот", "cat"},
		{"черепахи", "turtle"},
		{"лев", "lion"},
		{"птицы", "bird"},
		{"рыба", "fish"},
		{"млекопитающие", "mammal"},
		{"что такое ии", "artificial intelligence"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			key, ok := resolver.Resolve(tt.text, domain.LangRU, nil)
			require.True(t, ok)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestResolve_RussianStems(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"расскажи про тигров", "tiger"},
		{"а слонята милые", "elephant"},
		{"про млекопитающих", "mammal"},
		{"любит собаками гордиться", "dog"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			key, ok := resolver.Resolve(tt.text, domain.LangRU, nil)
			require.True(t, ok)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestResolve_FollowUpWithContext(t *testing.T) {
	convCtx := &domain.ConversationContext{
		LastPhotoTopic: "cat",
		DetectedTopics: []string{"cat", "mammal", "pet"},
	}

	key, ok := resolver.Resolve("какое именно это?", domain.LangRU, convCtx)
	require.True(t, ok)
	assert.Equal(t, "specific:cat", key)

	key, ok = resolver.Resolve("что это за кот?", domain.LangRU, convCtx)
	require.True(t, ok)
	assert.Equal(t, "cat", key)
}

func TestResolve_FollowUpTriggers(t *testing.T) {
	convCtx := &domain.ConversationContext{LastPhotoTopic: "dog"}

	specific := []string{"какое именно животное", "какой именно зверь", "что именно там", "конкретно", "скажи точнее"}
	for _, text := range specific {
		key, ok := resolver.Resolve(text, domain.LangRU, convCtx)
		require.True(t, ok, text)
		assert.Equal(t, "specific:dog", key, text)
	}

	whatIs := []string{"какое это животное", "это кто", "а это вообще"}
	for _, text := range whatIs {
		key, ok := resolver.Resolve(text, domain.LangRU, convCtx)
		require.True(t, ok, text)
		assert.Equal(t, "dog", key, text)
	}
}

func TestResolve_NoContextNoFollowUp(t *testing.T) {
	// Without a photo in the conversation, follow-up phrasings mean nothing.
	_, ok := resolver.Resolve("какое именно это?", domain.LangRU, nil)
	assert.False(t, ok)

	_, ok = resolver.Resolve("какое именно это?", domain.LangRU, &domain.ConversationContext{})
	assert.False(t, ok)
}

func TestResolve_ContextBeatsKeywords(t *testing.T) {
	// "что это за кот" contains a follow-up trigger, so the remembered
	// photo subject wins over the literal animal word.
	convCtx := &domain.ConversationContext{LastPhotoTopic: "hamster"}

	key, ok := resolver.Resolve("что это за кот?", domain.LangRU, convCtx)
	require.True(t, ok)
	assert.Equal(t, "hamster", key)
}

func TestResolve_TimePattern(t *testing.T) {
	for _, text := range []string{"14:30", "встретимся в 14:30 у входа", "сколько будет 9:05"} {
		key, ok := resolver.Resolve(text, domain.LangRU, nil)
		require.True(t, ok, text)
		assert.Equal(t, "time", key, text)
	}
}

func TestResolve_Number1617(t *testing.T) {
	key, ok := resolver.Resolve("1617", domain.LangRU, nil)
	require.True(t, ok)
	assert.Equal(t, "1617 number", key)

	key, ok = resolver.Resolve("что было в 1617 году", domain.LangRU, nil)
	require.True(t, ok)
	assert.Equal(t, "1617 number", key)

	// A longer number must not match.
	_, ok = resolver.Resolve("16170", domain.LangRU, nil)
	assert.False(t, ok)
}

func TestResolve_QuestionMark(t *testing.T) {
	key, ok := resolver.Resolve("что такое вопросительный знак?", domain.LangRU, nil)
	require.True(t, ok)
	assert.Equal(t, "question mark", key)

	// "?" plus "что такое" counts as asking about the mark itself.
	key, ok = resolver.Resolve("что такое слон?", domain.LangRU, nil)
	require.True(t, ok)
	assert.Equal(t, "question mark", key)

	// Without the question mark the animal wins.
	key, ok = resolver.Resolve("что такое слон", domain.LangRU, nil)
	require.True(t, ok)
	assert.Equal(t, "elephant", key)
}

func TestResolve_PhotoQuestion(t *testing.T) {
	for _, text := range []string{"кто на фото", "что на фото?", "что изображено тут"} {
		key, ok := resolver.Resolve(text, domain.LangRU, nil)
		require.True(t, ok, text)
		assert.Equal(t, "photo question", key, text)
	}
}

func TestResolve_DolphinSleep(t *testing.T) {
	key, ok := resolver.Resolve("как спят дельфины?", domain.LangRU, nil)
	require.True(t, ok)
	assert.Equal(t, "dolphin sleep", key)

	key, ok = resolver.Resolve("How do dolphins sleep?", domain.LangEN, nil)
	require.True(t, ok)
	assert.Equal(t, "dolphin sleep", key)

	// A plain mention of dolphins is the animal topic, not the sleep one.
	key, ok = resolver.Resolve("дельфины", domain.LangRU, nil)
	require.True(t, ok)
	assert.Equal(t, "dolphin", key)
}

func TestResolve_English(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"tell me about elephants", "elephant"},
		{"is a hamster a mammal", "hamster"},
		{"what is artificial intelligence?", "artificial intelligence"},
		{"what is ai", "artificial intelligence"},
		{"what is a question mark", "question mark"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			key, ok := resolver.Resolve(tt.text, domain.LangEN, nil)
			require.True(t, ok)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestResolve_NoMatch(t *testing.T) {
	for _, text := range []string{"привет", "hello there", "", "   "} {
		_, ok := resolver.Resolve(text, domain.LangRU, nil)
		assert.False(t, ok, text)
	}
}
