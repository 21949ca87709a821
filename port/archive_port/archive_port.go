package archive_port

import (
	"context"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=archive_port.go -destination=../../mocks/mock_archive_port.go -package=mocks

// ArchivePort persists briefings. Dates are local calendar dates in
// "2006-01-02" form; the archive holds at most one briefing per
// (subscriber, date) and a second write for the same date overwrites.
type ArchivePort interface {
	UpsertArchive(ctx context.Context, email, date string, briefing *domain.Briefing) error
	SaveLatest(ctx context.Context, email string, briefing *domain.Briefing) error
	ListDates(ctx context.Context, email string) ([]string, error)
	FetchByDate(ctx context.Context, email, date string) (*domain.Briefing, error)
	FetchLatest(ctx context.Context, email string) (*domain.Briefing, error)
}
