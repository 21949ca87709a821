// Package archive_usecase serves the read side of the briefing archive.
package archive_usecase

import (
	"context"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/port/archive_port"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
)

const dateLayout = "2006-01-02"

type ArchiveUsecase struct {
	archive archive_port.ArchivePort
}

func NewArchiveUsecase(archive archive_port.ArchivePort) *ArchiveUsecase {
	return &ArchiveUsecase{archive: archive}
}

// ListDates returns the dates with an archived briefing, newest first.
func (u *ArchiveUsecase) ListDates(ctx context.Context, email string) ([]string, error) {
	if email == "" {
		return nil, errors.ValidationError("email is required", nil)
	}
	return u.archive.ListDates(ctx, email)
}

// GetByDate returns one archived briefing, or ErrBriefingNotFound.
func (u *ArchiveUsecase) GetByDate(ctx context.Context, email, date string) (*domain.Briefing, error) {
	if email == "" {
		return nil, errors.ValidationError("email is required", nil)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, errors.ValidationError("date must be YYYY-MM-DD", map[string]interface{}{"date": date})
	}

	briefing, err := u.archive.FetchByDate(ctx, email, date)
	if err != nil {
		return nil, err
	}
	if briefing == nil {
		return nil, errors.ErrBriefingNotFound
	}
	return briefing, nil
}

// GetLatest returns the most recent briefing, or ErrBriefingNotFound for a
// subscriber who has never received one.
func (u *ArchiveUsecase) GetLatest(ctx context.Context, email string) (*domain.Briefing, error) {
	if email == "" {
		return nil, errors.ValidationError("email is required", nil)
	}

	briefing, err := u.archive.FetchLatest(ctx, email)
	if err != nil {
		return nil, err
	}
	if briefing == nil {
		return nil, errors.ErrBriefingNotFound
	}
	return briefing, nil
}
