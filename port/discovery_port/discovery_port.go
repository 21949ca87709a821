package discovery_port

import (
	"context"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=discovery_port.go -destination=../../mocks/mock_discovery_port.go -package=mocks

// SearchProvider is one discovery adapter. A failing provider contributes
// an empty bucket and never aborts the others.
type SearchProvider interface {
	Kind() domain.SourceType
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}
