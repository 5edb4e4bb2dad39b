package indexer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"courselens/internal/contextutil"
	"courselens/internal/dataset"
	"courselens/internal/llm"
	"courselens/internal/vectorstore"
)

// embedBatchSize bounds the number of chunks sent to the embeddings API per
// request.
const embedBatchSize = 32

// Pipeline indexes student documents into the vector store.
type Pipeline struct {
	embedder    *llm.EmbeddingsClient
	vectorStore vectorstore.VectorStore
	collection  string
	splitter    *RecursiveSplitter
	logger      *slog.Logger
}

// NewPipeline creates a new indexing pipeline.
func NewPipeline(embedder *llm.EmbeddingsClient, vectorStore vectorstore.VectorStore, collection string) *Pipeline {
	return &Pipeline{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		splitter:    NewRecursiveSplitter(),
		logger:      slog.Default(),
	}
}

// IndexDocuments splits every document into chunks, embeds them, and
// upserts the resulting points. Each point's payload holds the chunk text
// under "text" plus the document metadata, so retrieved items are
// self-contained. Point IDs are random, so prior points are cleared first;
// re-indexing the same documents leaves the collection with one copy of
// each chunk instead of accumulating duplicates across restarts. Returns
// the number of chunks indexed.
func (p *Pipeline) IndexDocuments(ctx context.Context, documents []dataset.Document) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var texts []string
	var metas []map[string]any
	for _, doc := range documents {
		chunks := p.splitter.Split(doc.Text)
		for i, chunk := range chunks {
			meta := make(map[string]any, len(doc.Meta)+2)
			for k, v := range doc.Meta {
				meta[k] = v
			}
			meta["text"] = chunk
			meta["chunk_index"] = i
			texts = append(texts, chunk)
			metas = append(metas, meta)
		}
	}

	if len(texts) == 0 {
		return 0, fmt.Errorf("no chunks produced from %d documents", len(documents))
	}

	logger.InfoContext(ctx, "indexing documents", "documents", len(documents), "chunks", len(texts))

	if err := p.vectorStore.Clear(ctx, p.collection); err != nil {
		return 0, fmt.Errorf("failed to clear stale points: %w", err)
	}

	indexed := 0
	for start := 0; start < len(texts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		embeddings, err := p.embedder.EmbedTexts(ctx, texts[start:end])
		if err != nil {
			return indexed, fmt.Errorf("failed to embed chunk batch: %w", err)
		}

		points := make([]vectorstore.Point, 0, end-start)
		for i, vec := range embeddings {
			points = append(points, vectorstore.Point{
				ID:   uuid.NewString(),
				Vec:  vec,
				Meta: metas[start+i],
			})
		}

		if err := p.vectorStore.Upsert(ctx, p.collection, points); err != nil {
			return indexed, fmt.Errorf("failed to upsert chunk batch: %w", err)
		}
		indexed += len(points)

		logger.DebugContext(ctx, "indexed batch", "from", start, "to", end)
	}

	logger.InfoContext(ctx, "indexing completed", "chunks", indexed)
	return indexed, nil
}
