package extractor

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"lead-intake-agent/internal/lead"
	"lead-intake-agent/internal/observability/metrics"
	pkgLog "lead-intake-agent/pkg/log"
)

type implExtractor struct {
	l       pkgLog.Logger
	llm     LLM
	metrics *metrics.LeadMetrics
	cache   *expirable.LRU[string, lead.Fragment]
}

// New creates an LLM-backed Extractor. A negative CacheSize disables the fragment cache.
func New(l pkgLog.Logger, llm LLM, m *metrics.LeadMetrics, opt Options) Extractor {
	e := &implExtractor{
		l:       l,
		llm:     llm,
		metrics: m,
	}

	size := opt.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	if size > 0 {
		e.cache = expirable.NewLRU[string, lead.Fragment](size, nil, opt.CacheTTL)
	}

	return e
}
