package job

import (
	"context"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/port/subscriber_port"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/dispatch_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

// Dispatcher triggers one dispatch, returning the gate's acknowledgement.
// Satisfied by the dispatch usecase.
type Dispatcher interface {
	Dispatch(ctx context.Context, email string, opts dispatch_usecase.Options) (*dispatch_usecase.Ack, error)
}

// ScheduledDispatch is the per-minute scan that triggers briefings whose
// subscriber-local delivery time has arrived. The scan only enqueues; the
// heavy work happens in the dispatch worker pool.
type ScheduledDispatch struct {
	subscribers subscriber_port.SubscriberPort
	dispatcher  Dispatcher
	now         func() time.Time
}

func NewScheduledDispatch(subscribers subscriber_port.SubscriberPort, dispatcher Dispatcher) *ScheduledDispatch {
	return &ScheduledDispatch{
		subscribers: subscribers,
		dispatcher:  dispatcher,
		now:         time.Now,
	}
}

// Tick runs one scan. Per-subscriber failures are logged and do not stop
// the rest of the scan.
func (s *ScheduledDispatch) Tick(ctx context.Context) error {
	now := s.now()

	due, err := s.subscribers.ListDueForDelivery(ctx, now)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	logger.Logger.Info("scheduled dispatch scan", "due", len(due))

	for _, email := range due {
		ack, err := s.dispatcher.Dispatch(ctx, email, dispatch_usecase.Options{})
		if err != nil {
			logger.Logger.Error("scheduled dispatch failed", "email", email, "error", err)
			continue
		}
		if ack.Status == "skipped" {
			logger.Logger.Info("scheduled dispatch skipped", "email", email, "reason", ack.Reason)
		}
	}

	return nil
}
