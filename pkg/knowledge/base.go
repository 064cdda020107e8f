package knowledge

import (
	"fmt"
	"time"

	"github.com/vikarrry7/zoobot/pkg/domain"
)

// Base answers sentinel and canned topics. Anything it does not know is
// the encyclopedia's business.
type Base struct {
	now func() time.Time
}

func NewBase() *Base {
	return &Base{now: time.Now}
}

const (
	dolphinSleepRU = "Дельфины спят особым образом: у них спит только одно полушарие мозга, а второе бодрствует. Это позволяет им продолжать дышать и контролировать свое положение в воде. Такой сон называется однополушарным медленноволновым сном."
	dolphinSleepEN = "Dolphins sleep with only one brain hemisphere at a time in slow-wave sleep. The other hemisphere remains awake to allow them to continue breathing and maintain awareness of their environment."

	number1617Text    = "1617 — натуральное число. 1617 год — невисокосный год, начинающийся в воскресенье по григорианскому календарю."
	photoQuestionText = "Отправьте мне фото, и я проанализирую его содержимое с помощью компьютерного зрения."

	mammalSpecificText = "По фото видно, что это млекопитающее. Для определения точного вида нужны более детальные признаки. Млекопитающие отличаются наличием шерсти, вскармливанием детенышей молоком и теплокровностью."
)

// Answer resolves a topic key to displayable text. The second return is
// false when the key is unknown here and the caller should look it up in
// the encyclopedia instead.
func (b *Base) Answer(key, lang string) (string, bool) {
	switch key {
	case domain.TopicTime:
		// Re-evaluated on every call, never cached.
		return "Текущее время: " + b.now().Format("15:04"), true
	case domain.Topic1617Number:
		return number1617Text, true
	case domain.TopicPhotoQuestion:
		return photoQuestionText, true
	case domain.TopicDolphinSleep:
		if lang == domain.LangRU {
			return dolphinSleepRU, true
		}
		return dolphinSleepEN, true
	}

	if topic, ok := domain.SplitSpecificTopic(key); ok {
		return b.specific(topic), true
	}

	if lang == domain.LangRU {
		if desc, ok := russianDescriptions[key]; ok {
			return desc, true
		}
	}
	return "", false
}

// specific elaborates on a previously photographed subject.
func (b *Base) specific(topic string) string {
	if topic == "mammal" {
		return mammalSpecificText
	}
	if desc, ok := russianDescriptions[topic]; ok {
		return desc
	}
	return fmt.Sprintf("На фото определен объект: '%s'. Это общая категория. Для более точной информации можно уточнить: 'Что это за %s?'", topic, topic)
}

// Describe returns the canned description for a topic, if the bot has one.
func (b *Base) Describe(topic string) (string, bool) {
	desc, ok := russianDescriptions[topic]
	return desc, ok
}
