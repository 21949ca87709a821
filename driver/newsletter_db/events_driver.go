package newsletter_db

import (
	"context"
	"fmt"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

// InsertUsageEvent appends one accounting record for a successful run.
func (r *Repository) InsertUsageEvent(ctx context.Context, event domain.UsageEvent) error {
	query := `
		INSERT INTO usage_events (id, subscriber_email, provider, model, input_tokens, output_tokens, cost_usd, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query, event.ID, event.SubscriberEmail, event.Provider, event.Model,
		event.InputTokens, event.OutputTokens, event.CostUSD, event.CreatedAt)
	if err != nil {
		logger.Logger.Error("error inserting usage event", "email", event.SubscriberEmail, "error", err)
		return fmt.Errorf("error inserting usage event: %w", err)
	}

	return nil
}

// InsertErrorEvent appends one diagnostic record for a failed run.
func (r *Repository) InsertErrorEvent(ctx context.Context, event domain.ErrorEvent) error {
	query := `
		INSERT INTO error_events (id, subscriber_email, stage, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, event.ID, event.SubscriberEmail, event.Stage, event.Message, event.CreatedAt)
	if err != nil {
		logger.Logger.Error("error inserting error event", "email", event.SubscriberEmail, "error", err)
		return fmt.Errorf("error inserting error event: %w", err)
	}

	return nil
}
