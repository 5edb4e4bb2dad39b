package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"courselens/internal/contextutil"
)

// Searcher is the similarity search service: it resolves a query text to
// an ordered list of retrieved items, optionally restricted by an
// exact-match metadata filter. Ordering is the service's own relevance
// ranking; the engine does not re-rank.
type Searcher interface {
	Search(ctx context.Context, query string, k int, filter map[string]any) ([]RetrievedItem, error)
}

// Generator is the text generation service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Engine answers analytic questions over the indexed enrollment records.
type Engine interface {
	// Answer answers a question, optionally restricted by an exact-match
	// attribute filter. It never fails: every internal or external error
	// is converted to a user-facing message.
	Answer(ctx context.Context, question string, filter map[string]any) Answer
	// AnalyzeQuality probes the corpus with an unfiltered retrieval and
	// returns a reliability assessment of the indexed data.
	AnalyzeQuality(ctx context.Context) (ReliabilityAssessment, error)
	// TopicCounts returns the session's cumulative topic statistics.
	TopicCounts() map[string]int
	// RelevantHistory returns prior interactions related to question.
	RelevantHistory(question string) []Interaction
}

const (
	minQuestionLength = 3
	qualityProbeK     = 5
	// qualityProbeQuery is a neutral retrieval used to sample the corpus
	// for the standalone quality analysis.
	qualityProbeQuery = "student course experience and performance"

	msgQuestionTooShort = "Please enter a longer question."
	msgNoResults        = "No relevant information found. Try rephrasing your question."
	msgGenericError     = "An error occurred. Please try again."
)

// queryEngine implements Engine. Its collaborators are injected at
// construction; it reads no ambient state.
type queryEngine struct {
	searcher  Searcher
	generator Generator
	memory    *ConversationMemory
	logger    *slog.Logger
}

// NewEngine creates a query engine over the given search and generation
// services. memory may be nil, in which case a default-bounded memory is
// created.
func NewEngine(searcher Searcher, generator Generator, memory *ConversationMemory) Engine {
	if memory == nil {
		memory = NewConversationMemory(0)
	}
	return &queryEngine{
		searcher:  searcher,
		generator: generator,
		memory:    memory,
		logger:    slog.Default(),
	}
}

// Answer implements the never-fails orchestration boundary: every error
// from retrieval, validation, or generation is logged and converted to a
// fixed user-facing message here.
func (e *queryEngine) Answer(ctx context.Context, question string, filter map[string]any) Answer {
	logger := contextutil.LoggerFromContext(ctx)

	if len(strings.TrimSpace(question)) < minQuestionLength {
		return Answer{Text: msgQuestionTooShort}
	}

	answer, err := e.answer(ctx, question, filter)
	if err != nil {
		logger.ErrorContext(ctx, "query failed", "question", question, "error", err)
		return Answer{Text: msgGenericError}
	}
	return answer
}

func (e *queryEngine) answer(ctx context.Context, question string, filter map[string]any) (Answer, error) {
	logger := contextutil.LoggerFromContext(ctx)

	comparative := IsComparative(question)
	req := PlanRetrieval(question, filter)

	logger.InfoContext(ctx, "query started",
		"question", question,
		"comparative", comparative,
		"k", req.K,
		"filter", req.Filter,
	)

	items, err := e.searcher.Search(ctx, question, req.K, req.Filter)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	if len(items) == 0 {
		logger.InfoContext(ctx, "no items retrieved", "question", question)
		return Answer{Text: msgNoResults, Comparative: comparative}, nil
	}

	validation := ValidateSample(items)
	assessment := ScoreReliability(validation)

	logger.InfoContext(ctx, "sample validated",
		"sample_size", validation.SampleSize,
		"data_quality", validation.Quality,
		"warnings", len(validation.Warnings),
		"reliability_score", assessment.Score,
	)

	contextBlock := AssembleContext(items)
	prompt := BuildPrompt(comparative, contextBlock, question, req.Filter, validation)

	if history := e.memory.RelevantHistory(question); len(history) > 0 {
		logger.DebugContext(ctx, "including related history", "interactions", len(history))
		prompt = historyPreamble(history) + prompt
	}

	response, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	e.memory.Record(question, response, map[string]any{
		"comparative": comparative,
		"sample_size": validation.SampleSize,
	})

	logger.InfoContext(ctx, "query completed",
		"question_length", len(question),
		"items_used", len(items),
		"answer_length", len(response),
	)

	return Answer{
		Text:        response,
		Comparative: comparative,
		Validation:  &validation,
		Assessment:  &assessment,
	}, nil
}

// AnalyzeQuality samples the corpus without a filter and scores the result.
func (e *queryEngine) AnalyzeQuality(ctx context.Context) (ReliabilityAssessment, error) {
	items, err := e.searcher.Search(ctx, qualityProbeQuery, qualityProbeK, nil)
	if err != nil {
		return ReliabilityAssessment{}, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	validation := ValidateSample(items)
	return ScoreReliability(validation), nil
}

// TopicCounts returns the session's cumulative topic statistics.
func (e *queryEngine) TopicCounts() map[string]int {
	return e.memory.TopicCounts()
}

// RelevantHistory returns prior interactions related to question.
func (e *queryEngine) RelevantHistory(question string) []Interaction {
	return e.memory.RelevantHistory(question)
}

// historyPreamble renders related prior questions as a prompt prefix.
func historyPreamble(history []Interaction) string {
	var b strings.Builder
	b.WriteString("Previous related discussion:\n")
	for _, interaction := range history {
		fmt.Fprintf(&b, "- %s\n", interaction.Question)
	}
	b.WriteString("\n")
	return b.String()
}
