package newsletter_db

import (
	"context"
	"fmt"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

// InsertSource registers a source for a subscriber. Inserting a feed
// endpoint the subscriber already has is a silent no-op.
func (r *Repository) InsertSource(ctx context.Context, email string, source domain.Source) error {
	query := `
		INSERT INTO sources (id, subscriber_email, source_type, name, feed_endpoint, original_url, enabled, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (subscriber_email, feed_endpoint) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query,
		source.ID, email, string(source.Type), source.Name,
		source.FeedEndpoint, source.OriginalURL, source.Enabled, source.AddedAt)
	if err != nil {
		logger.Logger.Error("error inserting source", "email", email, "endpoint", source.FeedEndpoint, "error", err)
		return fmt.Errorf("error inserting source: %w", err)
	}

	return nil
}

// ListSources returns all of a subscriber's sources, oldest first.
func (r *Repository) ListSources(ctx context.Context, email string) ([]domain.Source, error) {
	query := `
		SELECT id, source_type, name, feed_endpoint, original_url, enabled, added_at
		FROM sources WHERE subscriber_email = $1 ORDER BY added_at ASC
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		logger.Logger.Error("error listing sources", "email", email, "error", err)
		return nil, fmt.Errorf("error listing sources: %w", err)
	}
	defer rows.Close()

	var sources []domain.Source
	for rows.Next() {
		var src domain.Source
		if err := rows.Scan(&src.ID, &src.Type, &src.Name, &src.FeedEndpoint, &src.OriginalURL, &src.Enabled, &src.AddedAt); err != nil {
			logger.Logger.Error("error scanning source", "error", err)
			return nil, fmt.Errorf("error scanning source: %w", err)
		}
		sources = append(sources, src)
	}

	return sources, rows.Err()
}

// DeleteSource removes a source permanently.
func (r *Repository) DeleteSource(ctx context.Context, email, sourceID string) error {
	query := `DELETE FROM sources WHERE subscriber_email = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, query, email, sourceID)
	if err != nil {
		logger.Logger.Error("error deleting source", "email", email, "source_id", sourceID, "error", err)
		return fmt.Errorf("error deleting source: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("source %s not found", sourceID)
	}

	return nil
}

// UpdateSourceEnabled toggles whether a source participates in aggregation.
func (r *Repository) UpdateSourceEnabled(ctx context.Context, email, sourceID string, enabled bool) error {
	query := `UPDATE sources SET enabled = $3 WHERE subscriber_email = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, query, email, sourceID, enabled)
	if err != nil {
		logger.Logger.Error("error updating source enabled", "email", email, "source_id", sourceID, "error", err)
		return fmt.Errorf("error updating source: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("source %s not found", sourceID)
	}

	return nil
}
