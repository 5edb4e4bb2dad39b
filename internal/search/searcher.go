package search

import (
	"context"
	"fmt"

	"courselens/internal/contextutil"
	"courselens/internal/rag"
	"courselens/internal/vectorstore"
)

// Embedder turns query text into a vector. *llm.EmbeddingsClient satisfies
// it.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Service implements rag.Searcher by embedding the query text and running
// a filtered vector search against the collection.
type Service struct {
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	collection  string
}

// NewService creates a similarity search service over the given embedder
// and vector store.
func NewService(embedder Embedder, vectorStore vectorstore.VectorStore, collection string) *Service {
	return &Service{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
	}
}

// Search embeds query and returns up to k items whose metadata exactly
// matches every filter pair, in the store's relevance order.
func (s *Service) Search(ctx context.Context, query string, k int, filter map[string]any) ([]rag.RetrievedItem, error) {
	logger := contextutil.LoggerFromContext(ctx)

	embeddings, err := s.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned for query")
	}

	results, err := s.vectorStore.Search(ctx, s.collection, embeddings[0], k, filter)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	items := make([]rag.RetrievedItem, 0, len(results))
	for _, result := range results {
		content, _ := result.Meta["text"].(string)
		if content == "" {
			logger.WarnContext(ctx, "search result missing text payload", "point_id", result.PointID)
			continue
		}

		meta := make(map[string]any, len(result.Meta))
		for key, value := range result.Meta {
			if key == "text" {
				continue
			}
			meta[key] = value
		}

		items = append(items, rag.RetrievedItem{
			Content: content,
			Meta:    meta,
		})
	}

	logger.InfoContext(ctx, "similarity search completed", "k", k, "results", len(items))
	return items, nil
}
