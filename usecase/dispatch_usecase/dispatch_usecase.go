// Package dispatch_usecase orchestrates one briefing dispatch. The caller
// gets an acknowledgement as soon as the gate has been evaluated; the
// pipeline itself (aggregate, synthesize, deliver, account) runs detached
// so a slow model or mail provider never blocks the trigger.
package dispatch_usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/port/accounting_port"
	"github.com/heyybhargav/personal-newsletter-sub000/port/archive_port"
	"github.com/heyybhargav/personal-newsletter-sub000/port/delivery_port"
	"github.com/heyybhargav/personal-newsletter-sub000/port/subscriber_port"
	"github.com/heyybhargav/personal-newsletter-sub000/port/synthesis_port"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/aggregate_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

// Stage names recorded on error events, one per pipeline step.
const (
	StageAggregate = "aggregate"
	StageSynthesis = "synthesis"
	StageDelivery  = "delivery"
	StagePersist   = "persist"
)

// Options modify one dispatch trigger.
type Options struct {
	// Force widens the lookback window. The pause gate still applies; a
	// paused subscriber is skipped even on a forced trigger.
	Force bool
	// DryRun runs the detached pipeline up to and including synthesis,
	// then stops before delivery and persistence.
	DryRun bool
}

// Ack is the immediate answer to a dispatch trigger.
type Ack struct {
	Status       string            `json:"status"` // "accepted" or "skipped"
	Reason       domain.SkipReason `json:"reason,omitempty"`
	PausedUntil  *time.Time        `json:"paused_until,omitempty"`
	PauseExpired bool              `json:"pause_expired,omitempty"`
}

// RunRequest is the unit of work handed to the background executor.
type RunRequest struct {
	Email    string
	Lookback int
	DryRun   bool
}

// Enqueuer hands a run to the background executor. It must not block on
// the run itself.
type Enqueuer interface {
	Enqueue(req RunRequest) error
}

type DispatchUsecase struct {
	subscribers subscriber_port.SubscriberPort
	aggregator  *aggregate_usecase.AggregateUsecase
	synthesizer synthesis_port.SynthesisPort
	deliverer   delivery_port.DeliveryPort
	archive     archive_port.ArchivePort
	accounting  accounting_port.AccountingPort
	pricing     domain.PricingTable
	cfg         config.DispatchConfig
	enqueuer    Enqueuer
	now         func() time.Time
}

func NewDispatchUsecase(
	subscribers subscriber_port.SubscriberPort,
	aggregator *aggregate_usecase.AggregateUsecase,
	synthesizer synthesis_port.SynthesisPort,
	deliverer delivery_port.DeliveryPort,
	archive archive_port.ArchivePort,
	accounting accounting_port.AccountingPort,
	pricing domain.PricingTable,
	cfg config.DispatchConfig,
) *DispatchUsecase {
	return &DispatchUsecase{
		subscribers: subscribers,
		aggregator:  aggregator,
		synthesizer: synthesizer,
		deliverer:   deliverer,
		archive:     archive,
		accounting:  accounting,
		pricing:     pricing,
		cfg:         cfg,
		now:         time.Now,
	}
}

// SetEnqueuer wires the background executor. Separated from the
// constructor because the executor itself needs the usecase to run
// requests, and one of the two has to be built first.
func (u *DispatchUsecase) SetEnqueuer(e Enqueuer) {
	u.enqueuer = e
}

// Dispatch evaluates the gate and either queues the detached run or
// reports why nothing will be sent. It returns quickly in all paths;
// dry runs are queued like any other run.
func (u *DispatchUsecase) Dispatch(ctx context.Context, email string, opts Options) (*Ack, error) {
	sub, err := u.subscribers.FetchByEmail(ctx, email)
	if stderrors.Is(err, errors.ErrSubscriberNotFound) {
		// An unknown subscriber has, by definition, zero sources.
		logger.Logger.Info("dispatch skipped", "email", email, "reason", domain.SkipNoSources)
		return &Ack{Status: "skipped", Reason: domain.SkipNoSources}, nil
	}
	if err != nil {
		return nil, err
	}

	now := u.now()

	if len(sub.EnabledSources()) == 0 {
		logger.Logger.Info("dispatch skipped", "email", email, "reason", domain.SkipNoSources)
		return &Ack{Status: "skipped", Reason: domain.SkipNoSources}, nil
	}

	decision := domain.EvaluateGate(sub, now)
	if !decision.Send {
		logger.Logger.Info("dispatch skipped",
			"email", email, "reason", decision.Reason, "until", decision.Until)
		return &Ack{Status: "skipped", Reason: decision.Reason, PausedUntil: decision.Until}, nil
	}

	if decision.PauseExpired {
		// The gate observed a lapsed pause; make the transition durable.
		if err := u.subscribers.SetSubscriptionStatus(ctx, email, domain.SubscriptionActive, nil); err != nil {
			logger.Logger.Error("failed to persist pause expiry", "email", email, "error", err)
		}
	}

	lookback := u.cfg.DefaultLookback
	if opts.Force {
		lookback = u.cfg.ForcedLookback
	}

	if u.enqueuer == nil {
		return nil, fmt.Errorf("dispatch executor not configured")
	}
	if err := u.enqueuer.Enqueue(RunRequest{Email: email, Lookback: lookback, DryRun: opts.DryRun}); err != nil {
		return nil, err
	}

	return &Ack{Status: "accepted", PauseExpired: decision.PauseExpired}, nil
}

// Run executes the detached pipeline for one request. The context it
// receives belongs to the background executor, not to the original HTTP
// request. Every failure is recorded as an error event before returning.
func (u *DispatchUsecase) Run(ctx context.Context, req RunRequest) error {
	start := u.now()

	sub, err := u.subscribers.FetchByEmail(ctx, req.Email)
	if err != nil {
		return u.fail(ctx, req.Email, StageAggregate, err)
	}

	result := u.aggregator.Aggregate(ctx, sub.EnabledSources(),
		domain.AggregationWindow{LookbackDays: req.Lookback}, start)
	if len(result.FailedSources) > 0 {
		logger.Logger.Warn("some sources failed during aggregation",
			"email", req.Email, "failed", result.FailedSources)
	}
	if len(result.Items) == 0 {
		// An empty window is a legitimate quiet day, not a failure. The
		// run ends here, leaving no trace in accounting.
		logger.Logger.Info("nothing to send",
			"email", req.Email, "lookback_days", req.Lookback)
		return nil
	}

	briefing, err := u.synthesizer.Synthesize(ctx, result.Items, sub.Preferences.LLMProvider)
	if err != nil {
		return u.fail(ctx, req.Email, StageSynthesis, err)
	}

	if req.DryRun {
		// The subscriber asked for a preview: synthesis ran so its cost
		// and output are real, but nothing is delivered or persisted.
		logger.Logger.Info("dry run complete",
			"email", req.Email,
			"items", len(result.Items),
			"provider", briefing.TokenUsage.Provider,
			"input_tokens", briefing.TokenUsage.InputTokens,
			"output_tokens", briefing.TokenUsage.OutputTokens)
		return nil
	}

	var trial *delivery_port.TrialContext
	if sub.Tier == domain.TierTrial {
		trial = &delivery_port.TrialContext{DaysLeft: sub.TrialDaysLeft(start, u.cfg.TrialDays)}
	}

	if err := u.deliverer.Deliver(ctx, sub.Email, briefing, trial); err != nil {
		return u.fail(ctx, req.Email, StageDelivery, err)
	}

	if err := u.account(ctx, sub, briefing, start); err != nil {
		return u.fail(ctx, req.Email, StagePersist, err)
	}

	logger.Logger.Info("briefing dispatched",
		"email", req.Email,
		"items", len(result.Items),
		"provider", briefing.TokenUsage.Provider,
		"duration", u.now().Sub(start))

	return nil
}

// account records everything a successful dispatch leaves behind: the
// usage event, the subscriber counters, and both archive records. The
// email is already out; failures here are persistence failures, not
// delivery failures.
func (u *DispatchUsecase) account(ctx context.Context, sub *domain.Subscriber, briefing *domain.Briefing, at time.Time) error {
	usage := briefing.TokenUsage

	event := domain.UsageEvent{
		SubscriberEmail: sub.Email,
		Provider:        usage.Provider,
		Model:           usage.Model,
		InputTokens:     usage.InputTokens,
		OutputTokens:    usage.OutputTokens,
		CostUSD:         u.pricing.Cost(usage.Provider, usage.Model, usage.InputTokens, usage.OutputTokens),
		CreatedAt:       at,
	}
	if err := u.accounting.AppendUsage(ctx, event); err != nil {
		return err
	}

	if err := u.subscribers.RecordDispatch(ctx, sub.Email, usage, at); err != nil {
		return err
	}

	date := at.In(subscriberLocation(sub)).Format("2006-01-02")
	if err := u.archive.UpsertArchive(ctx, sub.Email, date, briefing); err != nil {
		return err
	}
	return u.archive.SaveLatest(ctx, sub.Email, briefing)
}

func (u *DispatchUsecase) fail(ctx context.Context, email, stage string, cause error) error {
	logger.Logger.Error("dispatch run failed", "email", email, "stage", stage, "error", cause)

	event := domain.ErrorEvent{
		SubscriberEmail: email,
		Stage:           stage,
		Message:         cause.Error(),
		CreatedAt:       u.now(),
	}
	if err := u.accounting.AppendError(ctx, event); err != nil {
		logger.Logger.Error("failed to record error event", "email", email, "error", err)
	}

	return fmt.Errorf("dispatch %s stage failed: %w", stage, cause)
}

// subscriberLocation resolves the subscriber's timezone, falling back to
// UTC. Archive dates are calendar dates in the subscriber's own zone.
func subscriberLocation(sub *domain.Subscriber) *time.Location {
	loc, err := time.LoadLocation(sub.Preferences.Timezone)
	if err != nil || loc == nil {
		return time.UTC
	}
	return loc
}
