package newsletter_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/jackc/pgx/v5"
)

const archiveDateLayout = "2006-01-02"

// UpsertArchive writes the dated archive entry for a briefing. A second
// dispatch on the same date overwrites that date's entry.
func (r *Repository) UpsertArchive(ctx context.Context, email, date string, briefing *domain.Briefing) error {
	topStories, err := json.Marshal(briefing.TopStories)
	if err != nil {
		return fmt.Errorf("error encoding top stories: %w", err)
	}

	query := `
		INSERT INTO briefing_archive (subscriber_email, briefing_date, subject, narrative, top_stories,
		                              input_tokens, output_tokens, provider, model, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (subscriber_email, briefing_date) DO UPDATE SET
			subject = EXCLUDED.subject,
			narrative = EXCLUDED.narrative,
			top_stories = EXCLUDED.top_stories,
			input_tokens = EXCLUDED.input_tokens,
			output_tokens = EXCLUDED.output_tokens,
			provider = EXCLUDED.provider,
			model = EXCLUDED.model,
			generated_at = EXCLUDED.generated_at
	`

	_, err = r.pool.Exec(ctx, query, email, date, briefing.Subject, briefing.Narrative, topStories,
		briefing.TokenUsage.InputTokens, briefing.TokenUsage.OutputTokens,
		briefing.TokenUsage.Provider, briefing.TokenUsage.Model, briefing.GeneratedAt)
	if err != nil {
		logger.Logger.Error("error upserting archive", "email", email, "date", date, "error", err)
		return fmt.Errorf("error upserting archive: %w", err)
	}

	return nil
}

// SaveLatest overwrites the subscriber's latest-briefing record.
func (r *Repository) SaveLatest(ctx context.Context, email string, briefing *domain.Briefing) error {
	topStories, err := json.Marshal(briefing.TopStories)
	if err != nil {
		return fmt.Errorf("error encoding top stories: %w", err)
	}

	query := `
		INSERT INTO latest_briefings (subscriber_email, subject, narrative, top_stories,
		                              input_tokens, output_tokens, provider, model, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (subscriber_email) DO UPDATE SET
			subject = EXCLUDED.subject,
			narrative = EXCLUDED.narrative,
			top_stories = EXCLUDED.top_stories,
			input_tokens = EXCLUDED.input_tokens,
			output_tokens = EXCLUDED.output_tokens,
			provider = EXCLUDED.provider,
			model = EXCLUDED.model,
			generated_at = EXCLUDED.generated_at
	`

	_, err = r.pool.Exec(ctx, query, email, briefing.Subject, briefing.Narrative, topStories,
		briefing.TokenUsage.InputTokens, briefing.TokenUsage.OutputTokens,
		briefing.TokenUsage.Provider, briefing.TokenUsage.Model, briefing.GeneratedAt)
	if err != nil {
		logger.Logger.Error("error saving latest briefing", "email", email, "error", err)
		return fmt.Errorf("error saving latest briefing: %w", err)
	}

	return nil
}

// ListArchiveDates returns the dates with an archived briefing, newest first.
func (r *Repository) ListArchiveDates(ctx context.Context, email string) ([]string, error) {
	query := `
		SELECT briefing_date FROM briefing_archive
		WHERE subscriber_email = $1 ORDER BY briefing_date DESC
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		logger.Logger.Error("error listing archive dates", "email", email, "error", err)
		return nil, fmt.Errorf("error listing archive dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			logger.Logger.Error("error scanning archive date", "error", err)
			return nil, fmt.Errorf("error scanning archive date: %w", err)
		}
		dates = append(dates, date.Format(archiveDateLayout))
	}

	return dates, rows.Err()
}

// FetchArchiveByDate loads one archived briefing. Returns nil when the
// date has no entry.
func (r *Repository) FetchArchiveByDate(ctx context.Context, email, date string) (*domain.Briefing, error) {
	query := `
		SELECT subject, narrative, top_stories, input_tokens, output_tokens, provider, model, generated_at
		FROM briefing_archive WHERE subscriber_email = $1 AND briefing_date = $2
	`

	return r.scanBriefing(r.pool.QueryRow(ctx, query, email, date))
}

// FetchLatest loads the latest-briefing record. Returns nil when the
// subscriber has never received one.
func (r *Repository) FetchLatest(ctx context.Context, email string) (*domain.Briefing, error) {
	query := `
		SELECT subject, narrative, top_stories, input_tokens, output_tokens, provider, model, generated_at
		FROM latest_briefings WHERE subscriber_email = $1
	`

	return r.scanBriefing(r.pool.QueryRow(ctx, query, email))
}

func (r *Repository) scanBriefing(row pgx.Row) (*domain.Briefing, error) {
	var (
		briefing   domain.Briefing
		topStories []byte
	)
	err := row.Scan(&briefing.Subject, &briefing.Narrative, &topStories,
		&briefing.TokenUsage.InputTokens, &briefing.TokenUsage.OutputTokens,
		&briefing.TokenUsage.Provider, &briefing.TokenUsage.Model, &briefing.GeneratedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Logger.Error("error fetching briefing", "error", err)
		return nil, fmt.Errorf("error fetching briefing: %w", err)
	}

	if len(topStories) > 0 {
		if err := json.Unmarshal(topStories, &briefing.TopStories); err != nil {
			return nil, fmt.Errorf("error decoding top stories: %w", err)
		}
	}

	return &briefing, nil
}
