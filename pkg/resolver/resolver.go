package resolver

import (
	"regexp"
	"strings"

	"github.com/vikarrry7/zoobot/pkg/domain"
)

// request carries one utterance through the rule chain. raw keeps the
// untouched text for pattern rules; norm is lowercased and trimmed with
// a trailing question mark stripped (unless the user is literally asking
// about the question mark).
type request struct {
	raw     string
	norm    string
	lang    string
	convCtx *domain.ConversationContext
}

// rule inspects a request and either yields a topic key or passes.
type rule func(req request) (string, bool)

// The order is load-bearing: follow-up questions about a photo must win
// over plain keyword hits, and sentinel patterns over both.
var rules = []rule{
	followUp,
	timeOfDay,
	number1617,
	questionMark,
	photoQuestion,
	keywords,
}

// Resolve maps an utterance to a topic key. It is a pure function of the
// utterance, the detected language, and the caller-supplied conversation
// context (may be nil).
func Resolve(text, lang string, convCtx *domain.ConversationContext) (string, bool) {
	norm := strings.ToLower(strings.TrimSpace(text))
	if strings.HasSuffix(norm, "?") && !strings.Contains(norm, "вопросительный знак") {
		norm = strings.TrimSpace(strings.TrimRight(norm, "?"))
	}

	req := request{raw: text, norm: norm, lang: lang, convCtx: convCtx}
	for _, r := range rules {
		if key, ok := r(req); ok {
			return key, true
		}
	}
	return "", false
}

var (
	specificTriggers = []string{"какое именно", "какой именно", "что именно", "конкретно", "точнее"}
	whatIsTriggers   = []string{"какое это", "что это за", "это кто", "кто это", "а это"}
)

func followUp(req request) (string, bool) {
	if req.convCtx == nil || req.convCtx.LastPhotoTopic == "" {
		return "", false
	}
	if containsAny(req.norm, specificTriggers) {
		return domain.SpecificTopic(req.convCtx.LastPhotoTopic), true
	}
	if containsAny(req.norm, whatIsTriggers) {
		return req.convCtx.LastPhotoTopic, true
	}
	return "", false
}

var timeRe = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)

func timeOfDay(req request) (string, bool) {
	if timeRe.MatchString(req.raw) {
		return domain.TopicTime, true
	}
	return "", false
}

var number1617Re = regexp.MustCompile(`\b1617\b`)

func number1617(req request) (string, bool) {
	if number1617Re.MatchString(req.raw) {
		return domain.Topic1617Number, true
	}
	return "", false
}

func questionMark(req request) (string, bool) {
	if strings.Contains(req.norm, "вопросительный знак") ||
		(strings.Contains(req.raw, "?") && strings.Contains(req.norm, "что такое")) {
		return "question mark", true
	}
	return "", false
}

var photoQuestionTriggers = []string{"кто на фото", "что на фото", "что изображено"}

func photoQuestion(req request) (string, bool) {
	if containsAny(req.norm, photoQuestionTriggers) {
		return domain.TopicPhotoQuestion, true
	}
	return "", false
}

func keywords(req request) (string, bool) {
	if req.lang == domain.LangRU {
		return russianKeywords(req.norm)
	}
	return englishKeywords(req.norm)
}

// Plural and inflected forms normalize to the singular canonical key, so
// the canned-description lookup hits directly.
var russianTopics = map[string]string{
	"хомяк": "hamster", "хомяки": "hamster",
	"ёжик": "hedgehog", "ежик": "hedgehog", "ежики": "hedgehog",
	"собака": "dog", "собаки": "dog",
	"кошка": "cat", "кошки": "cat", "кот": "cat",
	"слон": "elephant", "слоны": "elephant",
	"дельфин": "dolphin", "дельфины": "dolphin",
	"лев": "lion", "львы": "lion",
	"тигр": "tiger", "тигры": "tiger",
	"птица": "bird", "птицы": "bird",
	"рыба":     "fish",
	"черепаха": "turtle", "черепахи": "turtle",
	"млекопитающее": "mammal", "млекопитающие": "mammal",
	"ии":                      "artificial intelligence",
	"искусственный интеллект": "artificial intelligence",
}

// russianStems catches inflected forms the word table misses, checked as
// substrings in fixed order.
var russianStems = []struct {
	stems []string
	key   string
}{
	{[]string{"хомяк"}, "hamster"},
	{[]string{"ежик", "ёжик"}, "hedgehog"},
	{[]string{"собака"}, "dog"},
	{[]string{"кошка", "кот"}, "cat"},
	{[]string{"слон"}, "elephant"},
	{[]string{"дельфин"}, "dolphin"},
	{[]string{"лев"}, "lion"},
	{[]string{"тигр"}, "tiger"},
	{[]string{"млекопитающ"}, "mammal"},
	{[]string{"искусственный интеллект", "ии"}, "artificial intelligence"},
}

func russianKeywords(norm string) (string, bool) {
	// Multi-word phrases first, otherwise "дельфины" wins as a single word.
	if strings.Contains(norm, "как спят дельфины") {
		return domain.TopicDolphinSleep, true
	}

	for _, word := range strings.Fields(norm) {
		if key, ok := russianTopics[word]; ok {
			return key, true
		}
	}

	for _, s := range russianStems {
		if containsAny(norm, s.stems) {
			return s.key, true
		}
	}
	return "", false
}

var englishTopics = map[string]string{
	"hamster": "hamster", "hamsters": "hamster",
	"hedgehog": "hedgehog", "hedgehogs": "hedgehog",
	"dog": "dog", "dogs": "dog",
	"cat": "cat", "cats": "cat",
	"elephant": "elephant", "elephants": "elephant",
	"dolphin": "dolphin", "dolphins": "dolphin",
	"lion": "lion", "lions": "lion",
	"tiger": "tiger", "tigers": "tiger",
	"mammal": "mammal", "mammals": "mammal",
}

func englishKeywords(norm string) (string, bool) {
	if strings.Contains(norm, "how do dolphins sleep") || strings.Contains(norm, "dolphins sleep") {
		return domain.TopicDolphinSleep, true
	}

	words := strings.Fields(norm)
	for _, word := range words {
		if key, ok := englishTopics[word]; ok {
			return key, true
		}
	}

	if strings.Contains(norm, "artificial intelligence") {
		return "artificial intelligence", true
	}
	for _, word := range words {
		if word == "ai" {
			return "artificial intelligence", true
		}
	}
	if strings.Contains(norm, "question mark") {
		return "question mark", true
	}
	return "", false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
