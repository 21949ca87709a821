package feed_fetch_port

import (
	"context"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_fetch_port.go -destination=../../mocks/mock_feed_fetch_port.go -package=mocks

// FetchFeedPort fetches one source's items. Implementations return an
// error only to the caller that owns the fan-out; the aggregator converts
// every per-source failure into an empty contribution.
type FetchFeedPort interface {
	Fetch(ctx context.Context, source domain.Source) ([]domain.ContentItem, error)
}
