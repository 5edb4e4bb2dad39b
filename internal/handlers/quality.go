package handlers

import (
	"net/http"

	"courselens/internal/contextutil"
	"courselens/internal/rag"
)

// QualityHandler serves the standalone data-quality analysis.
type QualityHandler struct {
	engine rag.Engine
}

// NewQualityHandler creates a new QualityHandler.
func NewQualityHandler(engine rag.Engine) *QualityHandler {
	return &QualityHandler{engine: engine}
}

// QualityResponse represents the data-quality analysis payload.
type QualityResponse struct {
	ReliabilityScore int      `json:"reliability_score"`
	Recommendations  []string `json:"recommendations"`
	Explanation      string   `json:"explanation"`
}

// ServeHTTP probes the corpus and returns a reliability assessment.
func (h *QualityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := contextutil.LoggerFromContext(r.Context())

	assessment, err := h.engine.AnalyzeQuality(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "quality analysis failed", "error", err)
		writeError(w, http.StatusBadGateway, "data quality analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, QualityResponse{
		ReliabilityScore: assessment.Score,
		Recommendations:  assessment.Recommendations,
		Explanation:      assessment.Explanation,
	})
}
