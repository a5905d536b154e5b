package expr

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hoyle1974/dateset"
	"github.com/patrickmn/go-cache"
)

// Parsed literals and evaluated expressions. Literal entries are shared by
// every Evaluator; expression entries are keyed by the evaluator generation.
var resultCache = cache.New(5*time.Minute, time.Hour)

type CacheStats struct {
	Hits   atomic.Int64
	Misses atomic.Int64
}

func (c *CacheStats) Hit() {
	c.Hits.Add(1)
}
func (c *CacheStats) Miss() {
	c.Misses.Add(1)
}
func (c *CacheStats) Reset() {
	c.Hits.Store(0)
	c.Misses.Store(0)
}
func (c *CacheStats) String() string {
	return fmt.Sprintf("CacheStats(Hits: %d, Misses: %d)", c.Hits.Load(), c.Misses.Load())
}

var resultCacheStats = CacheStats{}

// Stats returns the shared cache statistics.
func Stats() *CacheStats {
	return &resultCacheStats
}

func ClearCache() {
	resultCacheStats.Reset()
	resultCache.Flush()
}

func literalKey(text string) string {
	return "literal/" + text
}

func expressionKey(generation, source string) string {
	return generation + "/" + source
}

// cached returns a private copy of the set stored under key.
func cached(key string) (dateset.DateSet, bool) {
	if v, ok := resultCache.Get(key); ok {
		resultCacheStats.Hit()
		return v.(dateset.DateSet).Clone(), true
	}
	resultCacheStats.Miss()
	return dateset.DateSet{}, false
}

func store(key string, s dateset.DateSet, ttl time.Duration) {
	resultCache.Set(key, s.Clone(), ttl)
}
