package analyzer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/scover/internal"
	"github.com/gnoswap-labs/scover/internal/boolexpr"
)

// CachedEngine serves analyses from an on-disk cache and falls back to the
// wrapped Analyzer on a miss. Only successful analyses are stored.
type CachedEngine struct {
	analyzer *Analyzer
	cache    *internal.Cache[*Result]
	logger   *zap.Logger
}

func NewCachedEngine(a *Analyzer, cacheDir string) (*CachedEngine, error) {
	cache, err := internal.NewCache[*Result](cacheDir)
	if err != nil {
		return nil, err
	}
	return &CachedEngine{analyzer: a, cache: cache, logger: a.logger}, nil
}

func (c *CachedEngine) Analyze(expression string) (*Result, error) {
	// Entries may have been stored under a higher limit.
	if err := c.analyzer.checkLimit(boolexpr.ExtractVariables(expression)); err != nil {
		return nil, err
	}

	variant := c.analyzer.config.Variant
	key := internal.CacheKey(string(variant), strings.TrimSpace(expression))

	if res, ok := c.cache.Get(key); ok {
		c.logger.Debug("cache hit", zap.String("expression", expression))
		return res, nil
	}

	res, err := c.analyzer.Analyze(expression)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, res)
	return res, nil
}

// Save persists new entries.
func (c *CachedEngine) Save() error {
	return c.cache.Save()
}

// Len returns the number of cached analyses.
func (c *CachedEngine) Len() int {
	return c.cache.Len()
}
