package genai

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// CacheTestSuite defines the test suite for the caching generator wrapper
type CacheTestSuite struct {
	suite.Suite
}

// TestCacheSuite runs the test suite
func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) TestRepeatPromptServedFromCache() {
	stub := succeedingStub()
	cache := NewCachedGenerator(stub)

	for i := 0; i < 5; i++ {
		out, err := cache.Generate(context.Background(), "prompt", DefaultOptions())
		s.NoError(err)
		s.Equal("ok", out)
	}

	s.Equal(1, stub.calls)
}

func (s *CacheTestSuite) TestDifferentOptionsMissTheCache() {
	stub := succeedingStub()
	cache := NewCachedGenerator(stub)

	opts := DefaultOptions()
	cache.Generate(context.Background(), "prompt", opts)

	opts.Temperature = 0.2
	cache.Generate(context.Background(), "prompt", opts)

	s.Equal(2, stub.calls)
}

func (s *CacheTestSuite) TestFailuresAreNotCached() {
	stub := &stubGenerator{fn: func(call int) (string, error) {
		if call == 1 {
			return "", &GenerationError{Reason: "transient"}
		}
		return "recovered", nil
	}}
	cache := NewCachedGenerator(stub)

	_, err := cache.Generate(context.Background(), "prompt", DefaultOptions())
	s.Error(err)

	out, err := cache.Generate(context.Background(), "prompt", DefaultOptions())
	s.NoError(err)
	s.Equal("recovered", out)
	s.Equal(2, stub.calls)
}

func (s *CacheTestSuite) TestConcurrentIdenticalPromptsCollapse() {
	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0

	stub := &stubGenerator{}
	stub.fn = func(int) (string, error) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return "ok", nil
	}
	cache := NewCachedGenerator(stub)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := cache.Generate(context.Background(), "prompt", DefaultOptions())
			s.NoError(err)
			s.Equal("ok", out)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	s.Equal(1, maxInFlight, "identical prompts must never fetch concurrently")
}
