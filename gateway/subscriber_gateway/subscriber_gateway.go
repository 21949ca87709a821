// Package subscriber_gateway adapts the subscriber tables to the port the
// usecases depend on. The scheduled-delivery scan lives here because
// matching a wall-clock delivery time needs per-subscriber timezone math.
package subscriber_gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/newsletter_db"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

type SubscriberGateway struct {
	repo *newsletter_db.Repository
}

func NewSubscriberGateway(repo *newsletter_db.Repository) *SubscriberGateway {
	return &SubscriberGateway{repo: repo}
}

func (g *SubscriberGateway) FetchByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	sub, err := g.repo.FetchSubscriberByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.ErrSubscriberNotFound
	}
	return sub, nil
}

func (g *SubscriberGateway) SetSubscriptionStatus(ctx context.Context, email string, status domain.SubscriptionStatus, pausedUntil *time.Time) error {
	return g.repo.SetSubscriptionStatus(ctx, email, status, pausedUntil)
}

func (g *SubscriberGateway) RecordDispatch(ctx context.Context, email string, usage domain.TokenUsage, at time.Time) error {
	return g.repo.RecordDispatch(ctx, email, usage, at)
}

// ListDueForDelivery returns subscribers whose configured delivery time, in
// their own timezone, falls on now's minute and who have not been sent a
// briefing yet today. A bad timezone or delivery time skips that
// subscriber instead of failing the scan.
func (g *SubscriberGateway) ListDueForDelivery(ctx context.Context, now time.Time) ([]string, error) {
	candidates, err := g.repo.ListDeliveryCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("error scanning delivery candidates: %w", err)
	}

	var due []string
	for _, c := range candidates {
		ok, err := dueNow(c, now)
		if err != nil {
			logger.Logger.Warn("skipping malformed delivery candidate",
				"email", c.Email, "timezone", c.Timezone, "delivery_time", c.DeliveryTime, "error", err)
			continue
		}
		if ok {
			due = append(due, c.Email)
		}
	}

	return due, nil
}

func dueNow(c newsletter_db.DeliveryCandidate, now time.Time) (bool, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return false, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	target, err := time.Parse("15:04", c.DeliveryTime)
	if err != nil {
		return false, fmt.Errorf("invalid delivery time %q: %w", c.DeliveryTime, err)
	}

	local := now.In(loc)
	if local.Hour() != target.Hour() || local.Minute() != target.Minute() {
		return false, nil
	}

	// Already delivered today in the subscriber's own calendar.
	if c.LastDigestAt != nil {
		last := c.LastDigestAt.In(loc)
		if last.Year() == local.Year() && last.YearDay() == local.YearDay() {
			return false, nil
		}
	}

	return true, nil
}
