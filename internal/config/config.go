package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	LLMBaseURL         string
	LLMModelName       string
	LLMAPIKey          string
	EmbeddingBaseURL   string
	EmbeddingModelName string
	DataPath           string
	DBPath             string
	QdrantURL          string
	QdrantCollection   string
	QdrantVectorSize   int
	APIPort            string
	MemoryMaxBytes     int
	LogLevel           slog.Level
	LogFormat          string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:         getEnv("LLM_BASE_URL", "http://localhost:8080"),
		LLMModelName:       getEnv("LLM_MODEL", "gpt-3.5-turbo"),
		LLMAPIKey:          getEnv("LLM_API_KEY", "dummy-key"),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", "http://localhost:8081"),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "all-MiniLM-L6-v2"),
		DataPath:           getEnv("DATA_PATH", ""),
		DBPath:             getEnv("DB_PATH", "./data/courselens.db"),
		QdrantURL:          getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "students"),
		APIPort:            getEnv("API_PORT", "9000"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}

	// Parse QDRANT_VECTOR_SIZE
	// Note: This must match the output vector size of the embeddings model.
	// For all-MiniLM-L6-v2 this is 384 dimensions. If the vector size changes,
	// the Qdrant collection must be recreated.
	vectorSizeStr := getEnv("QDRANT_VECTOR_SIZE", "")
	if vectorSizeStr == "" {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE is required")
	}
	vectorSize, err := strconv.Atoi(vectorSizeStr)
	if err != nil {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be a valid integer: %w", err)
	}
	if vectorSize <= 0 {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
	}
	cfg.QdrantVectorSize = vectorSize

	// Parse MEMORY_MAX_BYTES (bound on the serialized conversation log)
	memoryMaxStr := getEnv("MEMORY_MAX_BYTES", "4096")
	memoryMax, err := strconv.Atoi(memoryMaxStr)
	if err != nil {
		return nil, fmt.Errorf("MEMORY_MAX_BYTES must be a valid integer: %w", err)
	}
	if memoryMax <= 0 {
		return nil, fmt.Errorf("MEMORY_MAX_BYTES must be greater than 0")
	}
	cfg.MemoryMaxBytes = memoryMax

	// Parse LOG_LEVEL
	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// Validate required fields
	if cfg.DataPath == "" {
		return nil, fmt.Errorf("DATA_PATH is required")
	}

	// Create the data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a level name to a slog.Level.
func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error (got %q)", name)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
