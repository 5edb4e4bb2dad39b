package handlers

import (
	"net/http"
	"sort"

	"courselens/internal/rag"
)

// TopicsHandler serves the session's topic statistics.
type TopicsHandler struct {
	engine rag.Engine
}

// NewTopicsHandler creates a new TopicsHandler.
func NewTopicsHandler(engine rag.Engine) *TopicsHandler {
	return &TopicsHandler{engine: engine}
}

// TopicCount is one topic with its cumulative mention count.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// TopicsResponse represents the topic statistics payload.
type TopicsResponse struct {
	Topics []TopicCount `json:"topics"`
}

// ServeHTTP returns the topics discussed this session, most frequent first.
func (h *TopicsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	counts := h.engine.TopicCounts()

	topics := make([]TopicCount, 0, len(counts))
	for topic, count := range counts {
		topics = append(topics, TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topics[i].Topic < topics[j].Topic
	})

	writeJSON(w, http.StatusOK, TopicsResponse{Topics: topics})
}
