package newsletter_db

import (
	"context"
	"testing"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestRepository_InsertSource_DuplicateIsNoOp(t *testing.T) {
	repo, mock := newTestRepo(t)

	source := domain.Source{
		ID:           "5f0c4f9e-0000-0000-0000-000000000001",
		Type:         domain.SourceTypeSubstack,
		Name:         "Example Letter",
		FeedEndpoint: "https://example.substack.com/feed",
		OriginalURL:  "https://example.substack.com",
		Enabled:      true,
		AddedAt:      time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	// ON CONFLICT DO NOTHING: zero rows affected, still no error.
	mock.ExpectExec("INSERT INTO sources").
		WithArgs(source.ID, "reader@example.com", string(source.Type), source.Name,
			source.FeedEndpoint, source.OriginalURL, source.Enabled, source.AddedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err := repo.InsertSource(context.Background(), "reader@example.com", source)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListSources(t *testing.T) {
	repo, mock := newTestRepo(t)
	addedAt := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, source_type, name, feed_endpoint, original_url, enabled, added_at.*FROM sources").
		WithArgs("reader@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "source_type", "name", "feed_endpoint", "original_url", "enabled", "added_at"}).
			AddRow("id-1", "substack", "Example Letter", "https://example.substack.com/feed", "https://example.substack.com", true, addedAt).
			AddRow("id-2", "youtube", "Example Channel", "https://www.youtube.com/feeds/videos.xml?channel_id=UC1", "https://www.youtube.com/channel/UC1", false, addedAt))

	sources, err := repo.ListSources(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.Len(t, sources, 2)
	require.Equal(t, domain.SourceTypeSubstack, sources[0].Type)
	require.False(t, sources[1].Enabled)
}

func TestRepository_DeleteSource_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("DELETE FROM sources").
		WithArgs("reader@example.com", "missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteSource(context.Background(), "reader@example.com", "missing")
	require.Error(t, err)
}
