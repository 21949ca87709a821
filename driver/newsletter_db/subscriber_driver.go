package newsletter_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/jackc/pgx/v5"
)

// FetchSubscriberByEmail loads a subscriber and all of their sources.
func (r *Repository) FetchSubscriberByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	query := `
		SELECT email, delivery_time, timezone, llm_provider, subscription_status,
		       paused_until, tier, input_tokens, output_tokens, briefings_sent,
		       last_digest_at, created_at
		FROM subscribers WHERE email = $1
	`

	var (
		sub          domain.Subscriber
		pausedUntil  *time.Time
		lastDigestAt *time.Time
	)
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&sub.Email,
		&sub.Preferences.DeliveryTime,
		&sub.Preferences.Timezone,
		&sub.Preferences.LLMProvider,
		&sub.Preferences.SubscriptionStatus,
		&pausedUntil,
		&sub.Tier,
		&sub.Stats.InputTokens,
		&sub.Stats.OutputTokens,
		&sub.Stats.BriefingsSent,
		&lastDigestAt,
		&sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Logger.Error("error fetching subscriber", "email", email, "error", err)
		return nil, fmt.Errorf("error fetching subscriber: %w", err)
	}
	sub.Preferences.PausedUntil = pausedUntil
	sub.LastDigestAt = lastDigestAt

	sources, err := r.ListSources(ctx, email)
	if err != nil {
		return nil, err
	}
	sub.Sources = sources

	return &sub, nil
}

// SetSubscriptionStatus persists a pause/resume transition.
func (r *Repository) SetSubscriptionStatus(ctx context.Context, email string, status domain.SubscriptionStatus, pausedUntil *time.Time) error {
	query := `
		UPDATE subscribers SET subscription_status = $2, paused_until = $3 WHERE email = $1
	`

	if _, err := r.pool.Exec(ctx, query, email, string(status), pausedUntil); err != nil {
		logger.Logger.Error("error updating subscription status", "email", email, "error", err)
		return fmt.Errorf("error updating subscription status: %w", err)
	}

	return nil
}

// RecordDispatch adds token counters, bumps the briefing count, and stamps
// last_digest_at. Counters are additive so concurrent runs can only
// over-count, never lose a briefing.
func (r *Repository) RecordDispatch(ctx context.Context, email string, usage domain.TokenUsage, at time.Time) error {
	query := `
		UPDATE subscribers
		SET input_tokens = input_tokens + $2,
		    output_tokens = output_tokens + $3,
		    briefings_sent = briefings_sent + 1,
		    last_digest_at = $4
		WHERE email = $1
	`

	if _, err := r.pool.Exec(ctx, query, email, usage.InputTokens, usage.OutputTokens, at); err != nil {
		logger.Logger.Error("error recording dispatch", "email", email, "error", err)
		return fmt.Errorf("error recording dispatch: %w", err)
	}

	return nil
}

// ListDeliveryCandidates returns every subscriber who has not yet received
// today's briefing, along with the fields needed to decide whether their
// local delivery time has arrived. Timezone math happens in Go because
// per-row zone conversion in SQL is not worth the obscurity.
func (r *Repository) ListDeliveryCandidates(ctx context.Context) ([]DeliveryCandidate, error) {
	query := `
		SELECT email, delivery_time, timezone, last_digest_at
		FROM subscribers
		WHERE subscription_status != 'paused' OR paused_until <= now()
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.Error("error listing delivery candidates", "error", err)
		return nil, fmt.Errorf("error listing delivery candidates: %w", err)
	}
	defer rows.Close()

	var candidates []DeliveryCandidate
	for rows.Next() {
		var c DeliveryCandidate
		if err := rows.Scan(&c.Email, &c.DeliveryTime, &c.Timezone, &c.LastDigestAt); err != nil {
			logger.Logger.Error("error scanning delivery candidate", "error", err)
			return nil, fmt.Errorf("error scanning delivery candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

// DeliveryCandidate is a row of the scheduled-dispatch scan.
type DeliveryCandidate struct {
	Email        string
	DeliveryTime string
	Timezone     string
	LastDigestAt *time.Time
}
