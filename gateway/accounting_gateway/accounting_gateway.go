// Package accounting_gateway adapts the append-only event tables to the
// accounting port. Missing IDs and timestamps are filled in here so
// callers can hand over bare events.
package accounting_gateway

import (
	"context"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/newsletter_db"

	"github.com/google/uuid"
)

type AccountingGateway struct {
	repo *newsletter_db.Repository
}

func NewAccountingGateway(repo *newsletter_db.Repository) *AccountingGateway {
	return &AccountingGateway{repo: repo}
}

func (g *AccountingGateway) AppendUsage(ctx context.Context, event domain.UsageEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return g.repo.InsertUsageEvent(ctx, event)
}

func (g *AccountingGateway) AppendError(ctx context.Context, event domain.ErrorEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return g.repo.InsertErrorEvent(ctx, event)
}
