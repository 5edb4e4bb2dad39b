package handlers

import (
	"encoding/json"
	"net/http"

	"courselens/internal/contextutil"
	"courselens/internal/rag"
)

// AskHandler handles HTTP requests for analytic questions.
type AskHandler struct {
	engine rag.Engine
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(engine rag.Engine) *AskHandler {
	return &AskHandler{engine: engine}
}

// AskRequest represents the HTTP request payload for a question.
type AskRequest struct {
	Question string `json:"question"`
	// Filter is an optional exact-match attribute constraint,
	// e.g. {"gender": "Female"}.
	Filter map[string]any `json:"filter,omitempty"`
}

// AskResponse represents the HTTP response payload for a question.
type AskResponse struct {
	Answer      string `json:"answer"`
	Comparative bool   `json:"comparative"`

	// Retrieval diagnostics; absent when the engine short-circuited before
	// retrieval (too-short question, no results, internal error).
	SampleSize       *int     `json:"sample_size,omitempty"`
	DataQuality      string   `json:"data_quality,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
	ReliabilityScore *int     `json:"reliability_score,omitempty"`
}

// ServeHTTP answers a question via the query engine.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := contextutil.LoggerFromContext(r.Context())

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(r.Context(), "invalid ask request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	answer := h.engine.Answer(r.Context(), req.Question, req.Filter)

	resp := AskResponse{
		Answer:      answer.Text,
		Comparative: answer.Comparative,
	}
	if answer.Validation != nil {
		resp.SampleSize = &answer.Validation.SampleSize
		resp.DataQuality = string(answer.Validation.Quality)
		resp.Warnings = answer.Validation.Warnings
	}
	if answer.Assessment != nil {
		resp.ReliabilityScore = &answer.Assessment.Score
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
