package genai

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachedGenerator memoizes successful generations per prompt and collapses
// concurrent calls for the same prompt into a single backend fetch.
// Failures are never cached, so a later request retries the backend.
type CachedGenerator struct {
	gen   Generator
	group singleflight.Group
	mu    sync.RWMutex
	byKey map[string]string
}

func NewCachedGenerator(gen Generator) *CachedGenerator {
	return &CachedGenerator{
		gen:   gen,
		byKey: make(map[string]string),
	}
}

// Generate implements Generator.
func (c *CachedGenerator) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	key := cacheKey(prompt, opts)

	c.mu.RLock()
	cached, ok := c.byKey[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	out, err, _ := c.group.Do(key, func() (interface{}, error) {
		text, err := c.gen.Generate(ctx, prompt, opts)
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		c.byKey[key] = text
		c.mu.Unlock()
		return text, nil
	})
	if err != nil {
		return "", err
	}

	return out.(string), nil
}

// cacheKey folds the generation options into the key so that the same prompt
// with different settings is not served a stale variant.
func cacheKey(prompt string, opts GenerateOptions) string {
	return fmt.Sprintf("%s|%g|%g|%d|%d", prompt, opts.Temperature, opts.TopP, opts.TopK, opts.MaxOutputTokens)
}
