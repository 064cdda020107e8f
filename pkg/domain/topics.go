package domain

import "strings"

// Sentinel topic keys resolved by the knowledge base itself rather than
// delegated to Wikipedia.
const (
	TopicTime          = "time"
	Topic1617Number    = "1617 number"
	TopicPhotoQuestion = "photo question"
	TopicDolphinSleep  = "dolphin sleep"
)

// SpecificTopicPrefix marks a follow-up key of the form "specific:<topic>",
// meaning "give more detail about the last photo's subject".
const SpecificTopicPrefix = "specific:"

func SpecificTopic(topic string) string {
	return SpecificTopicPrefix + topic
}

// SplitSpecificTopic returns the embedded topic and true if key is a
// follow-up key.
func SplitSpecificTopic(key string) (string, bool) {
	if strings.HasPrefix(key, SpecificTopicPrefix) {
		return strings.TrimPrefix(key, SpecificTopicPrefix), true
	}
	return "", false
}

// Languages the bot answers in.
const (
	LangRU = "ru"
	LangEN = "en"
)
