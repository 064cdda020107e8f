package language

import (
	"regexp"

	"github.com/abadojack/whatlanggo"

	"github.com/vikarrry7/zoobot/pkg/domain"
)

var (
	cyrillicRe = regexp.MustCompile(`[а-яА-ЯёЁ]`)
	latinRe    = regexp.MustCompile(`[a-zA-Z]`)
)

// Detect classifies text as Russian or English. The trigram model is
// trusted only when it confidently names one of the two; everything else
// falls back to counting Cyrillic vs Latin letters, with ties going to
// English.
func Detect(text string) string {
	info := whatlanggo.Detect(text)
	if info.IsReliable() {
		switch info.Lang {
		case whatlanggo.Rus:
			return domain.LangRU
		case whatlanggo.Eng:
			return domain.LangEN
		}
	}

	ruCount := len(cyrillicRe.FindAllString(text, -1))
	enCount := len(latinRe.FindAllString(text, -1))
	if ruCount > enCount {
		return domain.LangRU
	}
	return domain.LangEN
}
