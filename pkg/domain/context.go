package domain

// ConversationContext remembers what the bot last saw on a user's photo,
// so elliptical follow-up questions ("а что это именно?") can be resolved.
type ConversationContext struct {
	// LastPhotoTopic is the topic key of the most recently classified
	// photo subject. Empty until a photo has been processed.
	LastPhotoTopic string

	// DetectedTopics holds all topic keys from the last classification,
	// ordered by descending confidence. When LastPhotoTopic is set it
	// equals DetectedTopics[0].
	DetectedTopics []string
}
