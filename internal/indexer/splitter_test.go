package indexer

import (
	"strings"
	"testing"
)

func TestSplitShortTextSingleChunk(t *testing.T) {
	s := NewRecursiveSplitter()
	chunks := s.Split("A short paragraph that fits in one chunk.")

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "A short paragraph that fits in one chunk." {
		t.Errorf("unexpected chunk %q", chunks[0])
	}
}

func TestSplitEmptyText(t *testing.T) {
	s := NewRecursiveSplitter()

	if chunks := s.Split(""); chunks != nil {
		t.Errorf("expected nil for empty text, got %v", chunks)
	}
	if chunks := s.Split("   \n\n  "); chunks != nil {
		t.Errorf("expected nil for whitespace-only text, got %v", chunks)
	}
}

func TestSplitRespectsChunkSize(t *testing.T) {
	s := NewRecursiveSplitter()

	// Many paragraphs, each well under the chunk size.
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("This paragraph describes one aspect of student performance in the course. ")
		b.WriteString("It has enough words to be meaningful on its own.\n\n")
	}

	chunks := s.Split(b.String())
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > defaultChunkSize {
			t.Errorf("chunk %d exceeds size limit: %d chars", i, len(chunk))
		}
	}
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	s := NewRecursiveSplitter()

	para := strings.Repeat("word ", 60) // ~300 chars
	text := para + "\n\n" + para

	chunks := s.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("expected a split at the paragraph boundary, got %d chunks", len(chunks))
	}
}

func TestSplitNoSeparators(t *testing.T) {
	s := NewRecursiveSplitter()

	// A single unbroken token longer than the chunk size forces the
	// rune-level fallback.
	text := strings.Repeat("x", 1200)
	chunks := s.Split(text)

	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > defaultChunkSize {
			t.Errorf("chunk %d exceeds size limit: %d chars", i, len(chunk))
		}
	}
}

func TestSplitOverlapCarriesContext(t *testing.T) {
	s := NewRecursiveSplitter()

	text := strings.Repeat("x", 1200)
	chunks := s.Split(text)

	// The rune fallback advances chunkSize-chunkOverlap per step, so
	// adjacent chunks share 50 characters.
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	first := chunks[0]
	second := chunks[1]
	if !strings.HasPrefix(second, first[len(first)-defaultChunkOverlap:]) {
		t.Error("expected second chunk to start with the first chunk's tail")
	}
}

func TestSplitDropsWhitespaceChunks(t *testing.T) {
	s := NewRecursiveSplitter()

	chunks := s.Split("real content\n\n   \n\nmore content")
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			t.Errorf("whitespace-only chunk survived: %q", chunk)
		}
	}
}
