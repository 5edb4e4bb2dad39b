package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"courselens/internal/config"
	"courselens/internal/dataset"
	"courselens/internal/http"
	"courselens/internal/indexer"
	"courselens/internal/llm"
	"courselens/internal/rag"
	"courselens/internal/search"
	"courselens/internal/storage"
	"courselens/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	ctx := context.Background()

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Load and persist the student dataset (fatal on failure: the engine
	// is never constructed without data)
	students, err := dataset.Load(cfg.DataPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	studentRepo := storage.NewStudentRepo(db)
	if err := studentRepo.ReplaceAll(ctx, students); err != nil {
		log.Fatalf("Failed to store students: %v", err)
	}
	slog.Info("Dataset loaded", "students", len(students))

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.QdrantVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.QdrantVectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.QdrantVectorSize)

	// Index the per-student documents
	pipeline := indexer.NewPipeline(embedder, vectorStore, cfg.QdrantCollection)
	documents := dataset.BuildDocuments(students)
	chunks, err := pipeline.IndexDocuments(ctx, documents)
	if err != nil {
		log.Fatalf("Failed to index documents: %v", err)
	}
	slog.Info("Documents indexed", "documents", len(documents), "chunks", chunks)

	// Create the query engine with injected collaborators
	searcher := search.NewService(embedder, vectorStore, cfg.QdrantCollection)
	generator := llm.NewCachedGenerator(llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName))
	memory := rag.NewConversationMemory(cfg.MemoryMaxBytes)
	engine := rag.NewEngine(searcher, generator, memory)
	slog.Info("Query engine initialized")

	// Create router with dependencies
	router := http.NewRouter(&http.Deps{
		Engine:      engine,
		StudentRepo: studentRepo,
		Index:       vectorStore,
		Collection:  cfg.QdrantCollection,
	})

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
