package newsletter_db

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewRepository(mock), mock
}

func sampleBriefing() *domain.Briefing {
	return &domain.Briefing{
		Subject:   "Your briefing for June 15",
		Narrative: "Quiet day in tech. One model release, two funding rounds.",
		TopStories: []domain.TopStory{
			{Title: "Model release", Link: "https://example.com/a", SourceName: "Example Blog"},
		},
		GeneratedAt: time.Date(2025, time.June, 15, 7, 0, 0, 0, time.UTC),
		TokenUsage: domain.TokenUsage{
			InputTokens:  1200,
			OutputTokens: 480,
			Provider:     "openai",
			Model:        "gpt-4o-mini",
		},
	}
}

func TestRepository_UpsertArchive(t *testing.T) {
	repo, mock := newTestRepo(t)
	briefing := sampleBriefing()

	topStories, err := json.Marshal(briefing.TopStories)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO briefing_archive").
		WithArgs("reader@example.com", "2025-06-15", briefing.Subject, briefing.Narrative, topStories,
			briefing.TokenUsage.InputTokens, briefing.TokenUsage.OutputTokens,
			briefing.TokenUsage.Provider, briefing.TokenUsage.Model, briefing.GeneratedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.UpsertArchive(context.Background(), "reader@example.com", "2025-06-15", briefing)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchArchiveByDate_RoundTrip(t *testing.T) {
	repo, mock := newTestRepo(t)
	briefing := sampleBriefing()

	topStories, err := json.Marshal(briefing.TopStories)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT subject, narrative, top_stories.*FROM briefing_archive").
		WithArgs("reader@example.com", "2025-06-15").
		WillReturnRows(pgxmock.NewRows([]string{
			"subject", "narrative", "top_stories", "input_tokens", "output_tokens", "provider", "model", "generated_at",
		}).AddRow(briefing.Subject, briefing.Narrative, topStories,
			briefing.TokenUsage.InputTokens, briefing.TokenUsage.OutputTokens,
			briefing.TokenUsage.Provider, briefing.TokenUsage.Model, briefing.GeneratedAt))

	got, err := repo.FetchArchiveByDate(context.Background(), "reader@example.com", "2025-06-15")
	require.NoError(t, err)
	require.NotNil(t, got)

	// What went in must come back byte-identical.
	require.Equal(t, briefing.Subject, got.Subject)
	require.Equal(t, briefing.Narrative, got.Narrative)
	require.Equal(t, briefing.TopStories, got.TopStories)
	require.Equal(t, briefing.TokenUsage, got.TokenUsage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchArchiveByDate_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT subject, narrative, top_stories.*FROM briefing_archive").
		WithArgs("reader@example.com", "2025-06-16").
		WillReturnRows(pgxmock.NewRows([]string{
			"subject", "narrative", "top_stories", "input_tokens", "output_tokens", "provider", "model", "generated_at",
		}))

	got, err := repo.FetchArchiveByDate(context.Background(), "reader@example.com", "2025-06-16")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRepository_ListArchiveDates(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT briefing_date FROM briefing_archive").
		WithArgs("reader@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"briefing_date"}).
			AddRow(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)).
			AddRow(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)))

	dates, err := repo.ListArchiveDates(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.Equal(t, []string{"2025-06-15", "2025-06-14"}, dates)
}
