package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/di"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/mocks"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/archive_usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newArchiveContainer(t *testing.T) (*di.ApplicationComponents, *mocks.MockArchivePort) {
	t.Helper()
	ctrl := gomock.NewController(t)
	archive := mocks.NewMockArchivePort(ctrl)
	return &di.ApplicationComponents{
		ArchiveUsecase: archive_usecase.NewArchiveUsecase(archive),
	}, archive
}

func TestHandleArchiveDates(t *testing.T) {
	container, archive := newArchiveContainer(t)
	archive.EXPECT().ListDates(gomock.Any(), "reader@example.com").
		Return([]string{"2025-06-15", "2025-06-14"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/archive/dates?email=reader@example.com", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handleArchiveDates(container)(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ArchiveDatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2025-06-15", "2025-06-14"}, resp.Dates)
}

func TestHandleArchiveByDate(t *testing.T) {
	container, archive := newArchiveContainer(t)
	archive.EXPECT().FetchByDate(gomock.Any(), "reader@example.com", "2025-06-15").
		Return(&domain.Briefing{
			Subject:     "Your briefing",
			Narrative:   "A quiet day.",
			GeneratedAt: time.Date(2025, time.June, 15, 7, 0, 0, 0, time.UTC),
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/archive/2025-06-15?email=reader@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues("2025-06-15")

	require.NoError(t, handleArchiveByDate(container)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var briefing domain.Briefing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &briefing))
	assert.Equal(t, "Your briefing", briefing.Subject)
}

func TestHandleArchiveByDate_NotFound(t *testing.T) {
	container, archive := newArchiveContainer(t)
	archive.EXPECT().FetchByDate(gomock.Any(), "reader@example.com", "2025-06-15").
		Return(nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/archive/2025-06-15?email=reader@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues("2025-06-15")

	require.NoError(t, handleArchiveByDate(container)(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleArchiveByDate_MalformedDate(t *testing.T) {
	container, _ := newArchiveContainer(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/archive/june-15?email=reader@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues("june-15")

	require.NoError(t, handleArchiveByDate(container)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLatestBriefing_NeverDelivered(t *testing.T) {
	container, archive := newArchiveContainer(t)
	archive.EXPECT().FetchLatest(gomock.Any(), "new@example.com").Return(nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/briefings/latest?email=new@example.com", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handleLatestBriefing(container)(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
