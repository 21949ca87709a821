// Package archive_gateway adapts the briefing archive tables to the
// archive port.
package archive_gateway

import (
	"context"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/newsletter_db"
)

type ArchiveGateway struct {
	repo *newsletter_db.Repository
}

func NewArchiveGateway(repo *newsletter_db.Repository) *ArchiveGateway {
	return &ArchiveGateway{repo: repo}
}

func (g *ArchiveGateway) UpsertArchive(ctx context.Context, email, date string, briefing *domain.Briefing) error {
	return g.repo.UpsertArchive(ctx, email, date, briefing)
}

func (g *ArchiveGateway) SaveLatest(ctx context.Context, email string, briefing *domain.Briefing) error {
	return g.repo.SaveLatest(ctx, email, briefing)
}

func (g *ArchiveGateway) ListDates(ctx context.Context, email string) ([]string, error) {
	return g.repo.ListArchiveDates(ctx, email)
}

func (g *ArchiveGateway) FetchByDate(ctx context.Context, email, date string) (*domain.Briefing, error) {
	return g.repo.FetchArchiveByDate(ctx, email, date)
}

func (g *ArchiveGateway) FetchLatest(ctx context.Context, email string) (*domain.Briefing, error) {
	return g.repo.FetchLatest(ctx, email)
}
