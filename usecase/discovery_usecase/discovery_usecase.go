// Package discovery_usecase runs the search providers side by side and
// interleaves their buckets into one list. A provider that fails or times
// out contributes nothing; the search itself always succeeds.
package discovery_usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/port/discovery_port"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/metrics"
)

type DiscoveryUsecase struct {
	providers       []discovery_port.SearchProvider
	providerTimeout time.Duration
}

func NewDiscoveryUsecase(providers []discovery_port.SearchProvider, providerTimeout time.Duration) *DiscoveryUsecase {
	return &DiscoveryUsecase{providers: providers, providerTimeout: providerTimeout}
}

// Search queries every provider concurrently and interleaves the buckets
// round-robin in the canonical kind order, so the first results of each
// network appear before the second of any. An empty kinds filter means
// all kinds.
func (u *DiscoveryUsecase) Search(ctx context.Context, query string, kinds []domain.SourceType) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.ValidationError("query is required", nil)
	}

	wanted := kindSet(kinds)

	var (
		mu      sync.Mutex
		buckets = make(map[domain.SourceType][]domain.SearchResult)
		wg      sync.WaitGroup
	)

	for _, provider := range u.providers {
		kind := provider.Kind()
		if wanted != nil {
			if _, ok := wanted[kind]; !ok {
				continue
			}
		}

		wg.Add(1)
		go func(provider discovery_port.SearchProvider, kind domain.SourceType) {
			defer wg.Done()

			providerCtx, cancel := context.WithTimeout(ctx, u.providerTimeout)
			defer cancel()

			results, err := provider.Search(providerCtx, query)
			if err != nil {
				metrics.DiscoveryProviderTotal.WithLabelValues(string(kind), "error").Inc()
				logger.Logger.Warn("discovery provider failed",
					"kind", kind, "query", query, "error", err)
				return
			}
			metrics.DiscoveryProviderTotal.WithLabelValues(string(kind), "success").Inc()

			mu.Lock()
			buckets[kind] = append(buckets[kind], results...)
			mu.Unlock()
		}(provider, kind)
	}

	wg.Wait()

	return interleave(buckets), nil
}

// interleave merges per-kind buckets round-robin, honoring the canonical
// priority order within each round.
func interleave(buckets map[domain.SourceType][]domain.SearchResult) []domain.SearchResult {
	var merged []domain.SearchResult
	for round := 0; ; round++ {
		added := false
		for _, kind := range domain.DiscoveryInterleaveOrder {
			if bucket := buckets[kind]; round < len(bucket) {
				merged = append(merged, bucket[round])
				added = true
			}
		}
		if !added {
			return merged
		}
	}
}

func kindSet(kinds []domain.SourceType) map[domain.SourceType]struct{} {
	if len(kinds) == 0 {
		return nil
	}
	set := make(map[domain.SourceType]struct{}, len(kinds))
	for _, kind := range kinds {
		set[kind] = struct{}{}
	}
	return set
}
