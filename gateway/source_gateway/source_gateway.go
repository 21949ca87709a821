// Package source_gateway adapts the sources table to the source port.
package source_gateway

import (
	"context"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/newsletter_db"
)

type SourceGateway struct {
	repo *newsletter_db.Repository
}

func NewSourceGateway(repo *newsletter_db.Repository) *SourceGateway {
	return &SourceGateway{repo: repo}
}

func (g *SourceGateway) RegisterSource(ctx context.Context, email string, source domain.Source) error {
	return g.repo.InsertSource(ctx, email, source)
}

func (g *SourceGateway) ListSources(ctx context.Context, email string) ([]domain.Source, error) {
	return g.repo.ListSources(ctx, email)
}

func (g *SourceGateway) RemoveSource(ctx context.Context, email, sourceID string) error {
	return g.repo.DeleteSource(ctx, email, sourceID)
}

func (g *SourceGateway) SetSourceEnabled(ctx context.Context, email, sourceID string, enabled bool) error {
	return g.repo.UpdateSourceEnabled(ctx, email, sourceID, enabled)
}
