// Package register_source_usecase manages a subscriber's source list:
// registration goes through URL resolution first, so callers hand in the
// URL they pasted, not a pre-classified source.
package register_source_usecase

import (
	"context"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/port/source_port"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/resolve_source_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/google/uuid"
)

type RegisterSourceUsecase struct {
	resolver *resolve_source_usecase.ResolveSourceUsecase
	sources  source_port.SourcePort
}

func NewRegisterSourceUsecase(resolver *resolve_source_usecase.ResolveSourceUsecase, sources source_port.SourcePort) *RegisterSourceUsecase {
	return &RegisterSourceUsecase{resolver: resolver, sources: sources}
}

// Register resolves the URL and stores the resulting source. Registering a
// feed endpoint the subscriber already has changes nothing and still
// succeeds.
func (u *RegisterSourceUsecase) Register(ctx context.Context, email, rawURL string) (*domain.Source, error) {
	if email == "" {
		return nil, errors.ValidationError("email is required", nil)
	}

	detected, err := u.resolver.Resolve(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	source := domain.Source{
		ID:           uuid.New().String(),
		Type:         detected.Type,
		Name:         detected.Name,
		FeedEndpoint: detected.FeedEndpoint,
		OriginalURL:  rawURL,
		Enabled:      true,
		AddedAt:      time.Now(),
	}

	if err := u.sources.RegisterSource(ctx, email, source); err != nil {
		return nil, err
	}

	logger.Logger.Info("source registered",
		"email", email, "type", source.Type, "endpoint", source.FeedEndpoint, "confidence", detected.Confidence)

	return &source, nil
}

func (u *RegisterSourceUsecase) List(ctx context.Context, email string) ([]domain.Source, error) {
	return u.sources.ListSources(ctx, email)
}

func (u *RegisterSourceUsecase) Remove(ctx context.Context, email, sourceID string) error {
	return u.sources.RemoveSource(ctx, email, sourceID)
}

func (u *RegisterSourceUsecase) SetEnabled(ctx context.Context, email, sourceID string, enabled bool) error {
	return u.sources.SetSourceEnabled(ctx, email, sourceID, enabled)
}
