package indexer

import "strings"

const (
	defaultChunkSize    = 500
	defaultChunkOverlap = 50
)

// defaultSeparators are tried in order, most to least structural.
// The empty string is a rune-level fallback for pathological input.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// RecursiveSplitter splits plain text into chunks of bounded size by
// recursively descending a separator hierarchy, with a character overlap
// between adjacent chunks to preserve context across boundaries.
type RecursiveSplitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

// NewRecursiveSplitter creates a splitter with the default settings
// (500-character chunks, 50-character overlap).
func NewRecursiveSplitter() *RecursiveSplitter {
	return &RecursiveSplitter{
		chunkSize:    defaultChunkSize,
		chunkOverlap: defaultChunkOverlap,
		separators:   defaultSeparators,
	}
}

// Split returns the chunks of text. Whitespace-only chunks are dropped.
func (s *RecursiveSplitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	chunks := s.split(text, s.separators)

	result := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		trimmed := strings.TrimSpace(chunk)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// split divides text using the first applicable separator, recursing into
// oversized pieces with the remaining separators.
func (s *RecursiveSplitter) split(text string, separators []string) []string {
	if len(text) <= s.chunkSize {
		return []string{text}
	}

	// Pick the first separator that occurs in the text; the empty string
	// always applies as the last resort.
	separator := ""
	var remaining []string
	for i, candidate := range separators {
		if candidate == "" {
			separator = candidate
			break
		}
		if strings.Contains(text, candidate) {
			separator = candidate
			remaining = separators[i+1:]
			break
		}
	}

	if separator == "" {
		return s.splitRunes(text)
	}

	parts := strings.Split(text, separator)

	var final []string
	var pending []string
	for _, part := range parts {
		if len(part) <= s.chunkSize {
			pending = append(pending, part)
			continue
		}
		if len(pending) > 0 {
			final = append(final, s.merge(pending, separator)...)
			pending = nil
		}
		final = append(final, s.split(part, remaining)...)
	}
	if len(pending) > 0 {
		final = append(final, s.merge(pending, separator)...)
	}
	return final
}

// merge greedily joins small pieces into chunks no larger than chunkSize,
// carrying a tail of at most chunkOverlap characters into the next chunk.
func (s *RecursiveSplitter) merge(pieces []string, separator string) []string {
	sepLen := len(separator)

	var chunks []string
	var window []string
	total := 0

	joinedLen := func(extra int) int {
		n := total + extra
		if len(window) > 0 {
			n += sepLen * len(window)
		}
		return n
	}

	for _, piece := range pieces {
		if len(window) > 0 && joinedLen(len(piece)) > s.chunkSize {
			chunks = append(chunks, strings.Join(window, separator))
			// Shrink the window to the overlap budget before continuing.
			for len(window) > 0 && total > s.chunkOverlap {
				total -= len(window[0])
				window = window[1:]
			}
		}
		window = append(window, piece)
		total += len(piece)
	}

	if len(window) > 0 {
		chunks = append(chunks, strings.Join(window, separator))
	}
	return chunks
}

// splitRunes chops text at rune boundaries into chunkSize-sized pieces with
// chunkOverlap carryover. Only reached when no separator applies.
func (s *RecursiveSplitter) splitRunes(text string) []string {
	runes := []rune(text)
	step := s.chunkSize - s.chunkOverlap
	if step <= 0 {
		step = s.chunkSize
	}

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
