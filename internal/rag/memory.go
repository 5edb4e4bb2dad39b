package rag

import (
	"encoding/json"
	"strings"
	"sync"
	"time"
)

const (
	// defaultMemoryMaxBytes bounds the serialized interaction log.
	defaultMemoryMaxBytes = 4096
	// maxRelevantHistory caps how many prior interactions are surfaced for
	// a question.
	maxRelevantHistory = 3
)

// ConversationMemory is a bounded, topic-indexed log of past
// question/response turns. The interaction log is evicted oldest-first to
// stay within the configured serialized-size bound; topic counts are
// cumulative session statistics and are never decremented on eviction.
// Memory lives only for the duration of a session; there is no
// persistence. Each session must own its own instance.
type ConversationMemory struct {
	mu           sync.Mutex
	maxBytes     int
	interactions []Interaction
	topicCounts  map[string]int
}

// NewConversationMemory creates a memory bounded to maxBytes of serialized
// interactions. A non-positive maxBytes selects the default bound.
func NewConversationMemory(maxBytes int) *ConversationMemory {
	if maxBytes <= 0 {
		maxBytes = defaultMemoryMaxBytes
	}
	return &ConversationMemory{
		maxBytes:    maxBytes,
		topicCounts: make(map[string]int),
	}
}

// Record appends a question/response turn, updates topic counts, and
// evicts the oldest interactions until the serialized log fits the bound.
func (m *ConversationMemory) Record(question, response string, metadata map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, topic := range ExtractTopics(question) {
		m.topicCounts[topic]++
	}

	m.interactions = append(m.interactions, Interaction{
		Question:  question,
		Response:  response,
		Timestamp: time.Now(),
		Metadata:  metadata,
	})

	for len(m.interactions) > 0 && m.serializedSize() > m.maxBytes {
		m.interactions = m.interactions[1:]
	}
}

// RelevantHistory returns up to 3 stored interactions related to question,
// most recent first. An interaction is related when any of the question's
// topics appears in its stored question text (case-insensitive substring).
func (m *ConversationMemory) RelevantHistory(question string) []Interaction {
	topics := ExtractTopics(question)
	if len(topics) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var relevant []Interaction
	for i := len(m.interactions) - 1; i >= 0 && len(relevant) < maxRelevantHistory; i-- {
		stored := strings.ToLower(m.interactions[i].Question)
		for _, topic := range topics {
			if strings.Contains(stored, topic) {
				relevant = append(relevant, m.interactions[i])
				break
			}
		}
	}
	return relevant
}

// TopicCounts returns a copy of the cumulative topic statistics.
func (m *ConversationMemory) TopicCounts() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[string]int, len(m.topicCounts))
	for topic, count := range m.topicCounts {
		counts[topic] = count
	}
	return counts
}

// Len returns the number of interactions currently retained.
func (m *ConversationMemory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.interactions)
}

// serializedSize measures the JSON-encoded interaction log. Callers must
// hold the mutex.
func (m *ConversationMemory) serializedSize() int {
	encoded, err := json.Marshal(m.interactions)
	if err != nil {
		return 0
	}
	return len(encoded)
}
