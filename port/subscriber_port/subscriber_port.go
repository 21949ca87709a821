package subscriber_port

import (
	"context"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=subscriber_port.go -destination=../../mocks/mock_subscriber_port.go -package=mocks

// SubscriberPort loads and mutates subscriber records. Stats updates are
// additive; the read-modify-write race between concurrent dispatches is an
// accepted last-writer-wins trade-off.
type SubscriberPort interface {
	FetchByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	// SetSubscriptionStatus persists a status transition, e.g. the
	// auto-expiry of a lapsed pause.
	SetSubscriptionStatus(ctx context.Context, email string, status domain.SubscriptionStatus, pausedUntil *time.Time) error
	// RecordDispatch adds token/briefing counters and stamps last_digest_at.
	RecordDispatch(ctx context.Context, email string, usage domain.TokenUsage, at time.Time) error
	// ListDueForDelivery returns subscribers whose local delivery time
	// matches now's minute and who have not received today's briefing yet.
	ListDueForDelivery(ctx context.Context, now time.Time) ([]string, error)
}
