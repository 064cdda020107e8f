package language_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vikarrry7/zoobot/pkg/language"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"russian sentence", "Расскажи мне, пожалуйста, как спят дельфины в океане", "ru"},
		{"russian single word", "собака", "ru"},
		{"english sentence", "Tell me everything about elephants and their habits", "en"},
		{"english single word", "hamster", "en"},
		{"mixed mostly cyrillic", "Кто такие хомяки и что такое ИИ", "ru"},
		{"digits only falls back to english", "1617", "en"},
		{"empty ties to english", "", "en"},
		{"punctuation ties to english", "?!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, language.Detect(tt.text))
		})
	}
}
