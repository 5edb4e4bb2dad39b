package llm

import (
	"context"
	"sync"
)

// Generator produces text for a prompt. *Client satisfies it; consumers
// that want caching wrap it in a CachedGenerator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CachedGenerator memoizes successful generations keyed by the exact prompt
// string. Identical prompts are common in an interactive session (repeated
// questions, test runs), and generation is the expensive call.
type CachedGenerator struct {
	inner Generator

	mu    sync.Mutex
	cache map[string]string
}

// NewCachedGenerator wraps a Generator with an in-memory response cache.
func NewCachedGenerator(inner Generator) *CachedGenerator {
	return &CachedGenerator{
		inner: inner,
		cache: make(map[string]string),
	}
}

// Generate returns the cached response for prompt if present, otherwise
// delegates to the wrapped generator and caches the result. Errors are
// never cached.
func (g *CachedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	if cached, ok := g.cache[prompt]; ok {
		g.mu.Unlock()
		return cached, nil
	}
	g.mu.Unlock()

	response, err := g.inner.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	g.cache[prompt] = response
	g.mu.Unlock()
	return response, nil
}

// Len returns the number of cached responses.
func (g *CachedGenerator) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.cache)
}
