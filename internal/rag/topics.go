package rag

import "strings"

// topicVocabulary is the fixed set of domain topics used to index
// conversational history. Matching is plain substring containment; there is
// deliberately no stemming or word-boundary handling.
var topicVocabulary = []string{
	"international", "first-gen", "grades", "study",
	"exam", "attendance", "performance", "feedback",
}

// ExtractTopics returns the vocabulary topics contained in text,
// case-insensitively, in vocabulary order. Returns an empty slice when
// nothing matches.
func ExtractTopics(text string) []string {
	lower := strings.ToLower(text)

	topics := make([]string, 0, len(topicVocabulary))
	for _, topic := range topicVocabulary {
		if strings.Contains(lower, topic) {
			topics = append(topics, topic)
		}
	}
	return topics
}
