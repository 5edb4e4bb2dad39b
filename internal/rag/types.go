package rag

import "time"

// RetrievedItem is a (content, metadata) pair returned by the similarity
// search service for a query. Items are ephemeral: created per query and
// discarded after the response is assembled.
type RetrievedItem struct {
	// Content is the retrieved text excerpt.
	Content string
	// Meta is the metadata attached to the excerpt at indexing time.
	// It carries at minimum the student identifier.
	Meta map[string]any
}

// RetrievalRequest holds the parameters for one similarity search call.
type RetrievalRequest struct {
	// K is the number of items to request.
	K int
	// Filter is an exact-match attribute constraint, or nil for none.
	Filter map[string]any
}

// DataQuality classifies how trustworthy a retrieved sample is.
type DataQuality string

const (
	// QualityHigh means the sample is large enough and complete.
	QualityHigh DataQuality = "high"
	// QualityLimited means results should be interpreted with caution.
	QualityLimited DataQuality = "limited"
	// QualityUnknown means validation itself failed.
	QualityUnknown DataQuality = "unknown"
)

// ValidationResult describes the adequacy of a retrieved sample.
// Computed fresh per query; never cached.
type ValidationResult struct {
	Warnings   []string    `json:"warnings"`
	SampleSize int         `json:"sample_size"`
	Quality    DataQuality `json:"data_quality"`
}

// ReliabilityAssessment is a deterministic interpretation of a
// ValidationResult as a 0-100 confidence score with guidance.
type ReliabilityAssessment struct {
	Score           int      `json:"reliability_score"`
	Recommendations []string `json:"recommendations"`
	Explanation     string   `json:"explanation"`
}

// Interaction is one recorded question/response turn. Immutable once
// created.
type Interaction struct {
	Question  string         `json:"question"`
	Response  string         `json:"response"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Answer is the engine's reply to one question. Text is the authoritative
// answer; the remaining fields expose retrieval diagnostics to callers
// that want them (the HTTP surface, the console's verbose output).
type Answer struct {
	Text        string
	Comparative bool
	Validation  *ValidationResult
	Assessment  *ReliabilityAssessment
}
