package handlers

import (
	"context"
	"net/http"

	"courselens/internal/contextutil"
	"courselens/internal/storage"
	"courselens/internal/vectorstore"
)

// IndexStats reports on the vector index backing retrieval.
// *vectorstore.QdrantStore satisfies it.
type IndexStats interface {
	GetCollectionInfo(ctx context.Context, collection string) (*vectorstore.CollectionInfo, error)
}

// DatasetHandler reports on the loaded student dataset and its index.
type DatasetHandler struct {
	studentRepo storage.StudentStore
	index       IndexStats
	collection  string
}

// NewDatasetHandler creates a new DatasetHandler.
func NewDatasetHandler(studentRepo storage.StudentStore, index IndexStats, collection string) *DatasetHandler {
	return &DatasetHandler{studentRepo: studentRepo, index: index, collection: collection}
}

// DatasetResponse represents the dataset summary payload.
type DatasetResponse struct {
	Students    int    `json:"students"`
	Chunks      int    `json:"chunks"`
	IndexStatus string `json:"index_status"`
}

// ServeHTTP returns the number of loaded student records plus index stats.
// The index stats degrade to "unavailable" when the vector store cannot be
// reached; the student count is still served.
func (h *DatasetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := contextutil.LoggerFromContext(r.Context())

	count, err := h.studentRepo.Count(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to count students", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read dataset")
		return
	}

	resp := DatasetResponse{Students: count, IndexStatus: "unavailable"}
	info, err := h.index.GetCollectionInfo(r.Context(), h.collection)
	if err != nil {
		logger.WarnContext(r.Context(), "failed to read collection info", "collection", h.collection, "error", err)
	} else {
		resp.Chunks = info.PointsCount
		resp.IndexStatus = info.Status
	}

	writeJSON(w, http.StatusOK, resp)
}
