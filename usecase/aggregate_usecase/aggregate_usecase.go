// Package aggregate_usecase collects the day's items across a subscriber's
// sources. Fetches run concurrently and every per-source failure is
// isolated: a dead feed contributes nothing and the rest of the run
// proceeds. The result is recency-filtered, newest first, and deduplicated
// by normalized title.
package aggregate_usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/port/feed_fetch_port"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"golang.org/x/sync/errgroup"
)

const defaultFetchConcurrency = 8

type AggregateUsecase struct {
	fetcher     feed_fetch_port.FetchFeedPort
	concurrency int
}

func NewAggregateUsecase(fetcher feed_fetch_port.FetchFeedPort) *AggregateUsecase {
	return &AggregateUsecase{fetcher: fetcher, concurrency: defaultFetchConcurrency}
}

// Result carries the aggregated items plus the names of sources whose
// fetch failed, for logging and diagnostics only.
type Result struct {
	Items         []domain.ContentItem
	FailedSources []string
}

// Aggregate fans out over the enabled sources and reduces the fetched
// items to one deduplicated, newest-first list bounded by the window.
// Running it twice over the same inputs yields the same result; nothing
// is persisted here.
func (u *AggregateUsecase) Aggregate(ctx context.Context, sources []domain.Source, window domain.AggregationWindow, now time.Time) *Result {
	var (
		mu      sync.Mutex
		fetched []domain.ContentItem
		failed  []string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(u.concurrency)

	for _, source := range sources {
		if !source.Enabled {
			continue
		}
		group.Go(func() error {
			items, err := u.fetcher.Fetch(groupCtx, source)
			if err != nil {
				logger.Logger.Warn("source fetch failed, continuing without it",
					"source", source.Name, "type", source.Type, "error", err)
				mu.Lock()
				failed = append(failed, source.Name)
				mu.Unlock()
				return nil
			}
			mu.Lock()
			fetched = append(fetched, items...)
			mu.Unlock()
			return nil
		})
	}

	// Tasks never return errors; Wait only synchronizes.
	_ = group.Wait()

	return &Result{
		Items:         reduce(fetched, window, now),
		FailedSources: failed,
	}
}

// reduce applies the window filter, the newest-first ordering, and title
// deduplication, in that order. The cutoff comparison is strictly
// exclusive: an item published exactly at the cutoff instant is out.
func reduce(items []domain.ContentItem, window domain.AggregationWindow, now time.Time) []domain.ContentItem {
	cutoff := window.Cutoff(now)

	recent := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if item.PublishedAt.After(cutoff) {
			recent = append(recent, item)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].PublishedAt.After(recent[j].PublishedAt)
	})

	seen := make(map[string]struct{}, len(recent))
	deduped := recent[:0]
	for _, item := range recent {
		key := domain.NormalizedTitle(item.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, item)
	}

	return deduped
}
