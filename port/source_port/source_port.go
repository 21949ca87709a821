package source_port

import (
	"context"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=source_port.go -destination=../../mocks/mock_source_port.go -package=mocks

// SourcePort manages a subscriber's configured sources. Registration of an
// already-known feed endpoint is a no-op, not an error.
type SourcePort interface {
	RegisterSource(ctx context.Context, email string, source domain.Source) error
	ListSources(ctx context.Context, email string) ([]domain.Source, error)
	RemoveSource(ctx context.Context, email, sourceID string) error
	SetSourceEnabled(ctx context.Context, email, sourceID string, enabled bool) error
}
