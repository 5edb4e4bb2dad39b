package rag

import "errors"

var (
	// ErrSearchFailed wraps failures of the similarity search service.
	ErrSearchFailed = errors.New("similarity search failed")
	// ErrGenerationFailed wraps failures of the generation service.
	ErrGenerationFailed = errors.New("generation failed")
)
