package rag

import (
	"strings"
	"testing"
)

func TestConversationMemoryRecordAndTopics(t *testing.T) {
	m := NewConversationMemory(0)

	m.Record("How do study hours affect the exam?", "answer", nil)
	m.Record("What about attendance?", "answer", nil)
	m.Record("More exam questions", "answer", nil)

	counts := m.TopicCounts()
	if counts["exam"] != 2 {
		t.Errorf("expected exam count 2, got %d", counts["exam"])
	}
	if counts["study"] != 1 {
		t.Errorf("expected study count 1, got %d", counts["study"])
	}
	if counts["attendance"] != 1 {
		t.Errorf("expected attendance count 1, got %d", counts["attendance"])
	}
	if m.Len() != 3 {
		t.Errorf("expected 3 interactions, got %d", m.Len())
	}
}

func TestConversationMemoryEvictsOldestFirst(t *testing.T) {
	// Bound tight enough that only the most recent turns fit.
	m := NewConversationMemory(600)

	long := strings.Repeat("x", 200)
	m.Record("first exam question", long, nil)
	m.Record("second exam question", long, nil)
	m.Record("third exam question", long, nil)

	if m.Len() >= 3 {
		t.Fatalf("expected eviction, still have %d interactions", m.Len())
	}

	history := m.RelevantHistory("exam")
	for _, interaction := range history {
		if interaction.Question == "first exam question" {
			t.Error("oldest interaction should have been evicted first")
		}
	}
}

func TestConversationMemoryTopicCountsSurviveEviction(t *testing.T) {
	m := NewConversationMemory(400)

	long := strings.Repeat("x", 300)
	m.Record("exam question one", long, nil)
	m.Record("exam question two", long, nil)

	if counts := m.TopicCounts(); counts["exam"] != 2 {
		t.Errorf("topic counts must not decrement on eviction, got %d", counts["exam"])
	}
}

func TestRelevantHistoryMostRecentFirstCapped(t *testing.T) {
	m := NewConversationMemory(0)

	questions := []string{
		"exam question A",
		"exam question B",
		"unrelated weather question",
		"exam question C",
		"exam question D",
	}
	for _, q := range questions {
		m.Record(q, "answer", nil)
	}

	history := m.RelevantHistory("How hard was the exam?")
	if len(history) != 3 {
		t.Fatalf("expected 3 interactions, got %d", len(history))
	}
	want := []string{"exam question D", "exam question C", "exam question B"}
	for i, interaction := range history {
		if interaction.Question != want[i] {
			t.Errorf("history[%d] = %q, want %q", i, interaction.Question, want[i])
		}
	}
}

func TestRelevantHistoryNoTopics(t *testing.T) {
	m := NewConversationMemory(0)
	m.Record("exam question", "answer", nil)

	if history := m.RelevantHistory("tell me about the weather"); history != nil {
		t.Errorf("expected nil history for a topicless question, got %v", history)
	}
}

func TestRelevantHistoryMatchesStoredQuestionText(t *testing.T) {
	m := NewConversationMemory(0)
	m.Record("What did students say about ATTENDANCE?", "answer", nil)
	m.Record("How are grades distributed?", "answer", nil)

	history := m.RelevantHistory("attendance trends")
	if len(history) != 1 {
		t.Fatalf("expected 1 matching interaction, got %d", len(history))
	}
	if history[0].Question != "What did students say about ATTENDANCE?" {
		t.Errorf("unexpected match %q", history[0].Question)
	}
}

func TestConversationMemoryDefaultBound(t *testing.T) {
	m := NewConversationMemory(-1)
	if m.maxBytes != defaultMemoryMaxBytes {
		t.Errorf("expected default bound %d, got %d", defaultMemoryMaxBytes, m.maxBytes)
	}
}
