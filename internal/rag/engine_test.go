package rag

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeSearcher records the last search call and returns canned results.
type fakeSearcher struct {
	items      []RetrievedItem
	err        error
	calls      int
	lastQuery  string
	lastK      int
	lastFilter map[string]any
}

func (f *fakeSearcher) Search(ctx context.Context, query string, k int, filter map[string]any) ([]RetrievedItem, error) {
	f.calls++
	f.lastQuery = query
	f.lastK = k
	f.lastFilter = filter
	return f.items, f.err
}

// fakeGenerator records the last prompt and returns a canned response.
type fakeGenerator struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func retrievedSample(ids ...string) []RetrievedItem {
	items := make([]RetrievedItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, RetrievedItem{
			Content: "Student Feedback:\n- Solid course for " + id,
			Meta:    map[string]any{"student_id": id, "final_exam": 85.0},
		})
	}
	return items
}

func TestAnswerHappyPath(t *testing.T) {
	searcher := &fakeSearcher{items: retrievedSample("S1", "S2", "S3")}
	generator := &fakeGenerator{response: "Students performed well overall."}
	engine := NewEngine(searcher, generator, nil)

	answer := engine.Answer(context.Background(), "What do students say about the exam?", nil)

	if answer.Text != "Students performed well overall." {
		t.Errorf("unexpected answer text %q", answer.Text)
	}
	if answer.Comparative {
		t.Error("expected non-comparative classification")
	}
	if answer.Validation == nil || answer.Validation.SampleSize != 3 {
		t.Errorf("expected validation with 3 students, got %+v", answer.Validation)
	}
	if answer.Assessment == nil || answer.Assessment.Score != 80 {
		t.Errorf("expected reliability score 80 for a sample of 3, got %+v", answer.Assessment)
	}
	if searcher.lastK != standardK {
		t.Errorf("expected k=%d, got %d", standardK, searcher.lastK)
	}
}

func TestAnswerComparativeOverridesFilter(t *testing.T) {
	searcher := &fakeSearcher{items: retrievedSample("S1", "S2", "S3", "S4", "S5")}
	generator := &fakeGenerator{response: "comparison"}
	engine := NewEngine(searcher, generator, nil)

	answer := engine.Answer(context.Background(),
		"Compare international and domestic student grades",
		map[string]any{"international_student": "Yes"})

	if !answer.Comparative {
		t.Error("expected comparative classification")
	}
	if searcher.lastK != comparativeK {
		t.Errorf("expected k=%d, got %d", comparativeK, searcher.lastK)
	}
	if searcher.lastFilter != nil {
		t.Errorf("expected filter override to nil, got %v", searcher.lastFilter)
	}
	if !strings.Contains(generator.lastPrompt, "detailed comparison") {
		t.Errorf("expected comparative prompt, got %q", generator.lastPrompt)
	}
}

func TestAnswerTooShortSkipsServices(t *testing.T) {
	searcher := &fakeSearcher{}
	generator := &fakeGenerator{}
	engine := NewEngine(searcher, generator, nil)

	answer := engine.Answer(context.Background(), "hi", nil)

	if answer.Text != msgQuestionTooShort {
		t.Errorf("expected %q, got %q", msgQuestionTooShort, answer.Text)
	}
	if searcher.calls != 0 || generator.calls != 0 {
		t.Errorf("expected no service calls, got search=%d generate=%d", searcher.calls, generator.calls)
	}
}

func TestAnswerWhitespaceOnlyTooShort(t *testing.T) {
	engine := NewEngine(&fakeSearcher{}, &fakeGenerator{}, nil)

	answer := engine.Answer(context.Background(), "      ", nil)
	if answer.Text != msgQuestionTooShort {
		t.Errorf("expected %q, got %q", msgQuestionTooShort, answer.Text)
	}
}

func TestAnswerEmptyRetrievalSkipsGeneration(t *testing.T) {
	searcher := &fakeSearcher{items: nil}
	generator := &fakeGenerator{}
	engine := NewEngine(searcher, generator, nil)

	answer := engine.Answer(context.Background(), "What about attendance in a group with no data?", nil)

	if answer.Text != msgNoResults {
		t.Errorf("expected %q, got %q", msgNoResults, answer.Text)
	}
	if generator.calls != 0 {
		t.Errorf("expected no generation call, got %d", generator.calls)
	}
	if answer.Validation != nil {
		t.Errorf("expected no validation diagnostics for empty retrieval, got %+v", answer.Validation)
	}
}

func TestAnswerSearchFailure(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("connection refused")}
	engine := NewEngine(searcher, &fakeGenerator{}, nil)

	answer := engine.Answer(context.Background(), "What do students think?", nil)

	if answer.Text != msgGenericError {
		t.Errorf("expected %q, got %q", msgGenericError, answer.Text)
	}
}

func TestAnswerGenerationFailure(t *testing.T) {
	searcher := &fakeSearcher{items: retrievedSample("S1", "S2", "S3")}
	generator := &fakeGenerator{err: errors.New("model timeout")}
	engine := NewEngine(searcher, generator, nil)

	answer := engine.Answer(context.Background(), "What do students think?", nil)

	if answer.Text != msgGenericError {
		t.Errorf("expected %q, got %q", msgGenericError, answer.Text)
	}
}

func TestAnswerRecordsMemory(t *testing.T) {
	searcher := &fakeSearcher{items: retrievedSample("S1", "S2", "S3")}
	generator := &fakeGenerator{response: "answer"}
	memory := NewConversationMemory(0)
	engine := NewEngine(searcher, generator, memory)

	engine.Answer(context.Background(), "How does attendance affect performance?", nil)

	if memory.Len() != 1 {
		t.Fatalf("expected 1 recorded interaction, got %d", memory.Len())
	}
	counts := engine.TopicCounts()
	if counts["attendance"] != 1 || counts["performance"] != 1 {
		t.Errorf("expected topic counts recorded, got %v", counts)
	}
}

func TestAnswerFailuresNotRecorded(t *testing.T) {
	memory := NewConversationMemory(0)
	engine := NewEngine(&fakeSearcher{err: errors.New("down")}, &fakeGenerator{}, memory)

	engine.Answer(context.Background(), "How was the exam?", nil)

	if memory.Len() != 0 {
		t.Errorf("failed queries must not be recorded, got %d interactions", memory.Len())
	}
	if counts := engine.TopicCounts(); counts["exam"] != 0 {
		t.Errorf("failed queries must not count topics, got %v", counts)
	}
}

func TestAnswerIncludesHistoryPreamble(t *testing.T) {
	searcher := &fakeSearcher{items: retrievedSample("S1", "S2", "S3")}
	generator := &fakeGenerator{response: "answer"}
	engine := NewEngine(searcher, generator, nil)

	engine.Answer(context.Background(), "First exam question", nil)
	engine.Answer(context.Background(), "Another exam question", nil)

	if !strings.HasPrefix(generator.lastPrompt, "Previous related discussion:\n- First exam question\n") {
		t.Errorf("expected history preamble, got %q", generator.lastPrompt)
	}
}

func TestAnalyzeQuality(t *testing.T) {
	searcher := &fakeSearcher{items: retrievedSample("S1", "S2", "S3", "S4", "S5")}
	engine := NewEngine(searcher, &fakeGenerator{}, nil)

	assessment, err := engine.AnalyzeQuality(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.Score != 100 {
		t.Errorf("expected score 100 for a clean probe, got %d", assessment.Score)
	}
	if searcher.lastQuery != qualityProbeQuery {
		t.Errorf("expected probe query %q, got %q", qualityProbeQuery, searcher.lastQuery)
	}
	if searcher.lastK != qualityProbeK {
		t.Errorf("expected k=%d, got %d", qualityProbeK, searcher.lastK)
	}
	if searcher.lastFilter != nil {
		t.Errorf("expected unfiltered probe, got %v", searcher.lastFilter)
	}
}

func TestAnalyzeQualitySearchFailure(t *testing.T) {
	engine := NewEngine(&fakeSearcher{err: errors.New("down")}, &fakeGenerator{}, nil)

	_, err := engine.AnalyzeQuality(context.Background())
	if !errors.Is(err, ErrSearchFailed) {
		t.Errorf("expected ErrSearchFailed, got %v", err)
	}
}
