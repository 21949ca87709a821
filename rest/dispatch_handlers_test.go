package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/di"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/mocks"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/aggregate_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/dispatch_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

type fakeEnqueuer struct {
	requests []dispatch_usecase.RunRequest
}

func (f *fakeEnqueuer) Enqueue(req dispatch_usecase.RunRequest) error {
	f.requests = append(f.requests, req)
	return nil
}

type dispatchRig struct {
	subscribers *mocks.MockSubscriberPort
	enqueuer    *fakeEnqueuer
	container   *di.ApplicationComponents
}

func newDispatchRig(t *testing.T) *dispatchRig {
	t.Helper()
	ctrl := gomock.NewController(t)

	subscribers := mocks.NewMockSubscriberPort(ctrl)
	fetcher := mocks.NewMockFetchFeedPort(ctrl)
	synthesizer := mocks.NewMockSynthesisPort(ctrl)
	deliverer := mocks.NewMockDeliveryPort(ctrl)
	archive := mocks.NewMockArchivePort(ctrl)
	accounting := mocks.NewMockAccountingPort(ctrl)

	usecase := dispatch_usecase.NewDispatchUsecase(
		subscribers,
		aggregate_usecase.NewAggregateUsecase(fetcher),
		synthesizer,
		deliverer,
		archive,
		accounting,
		domain.DefaultPricingTable,
		config.DispatchConfig{DefaultLookback: 1, ForcedLookback: 3, TrialDays: 7},
	)
	enqueuer := &fakeEnqueuer{}
	usecase.SetEnqueuer(enqueuer)

	return &dispatchRig{
		subscribers: subscribers,
		enqueuer:    enqueuer,
		container:   &di.ApplicationComponents{DispatchUsecase: usecase},
	}
}

func activeSubscriber(email string) *domain.Subscriber {
	return &domain.Subscriber{
		Email: email,
		Sources: []domain.Source{
			{ID: "src-1", Type: domain.SourceTypeSubstack, FeedEndpoint: "https://one.substack.com/feed", Enabled: true},
		},
		Preferences: domain.Preferences{SubscriptionStatus: domain.SubscriptionActive},
		Tier:        domain.TierActive,
		CreatedAt:   time.Now().AddDate(0, -1, 0),
	}
}

func postDispatch(t *testing.T, container *di.ApplicationComponents, body, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/dispatch"+query, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handleDispatch(container)(c))
	return rec
}

func TestHandleDispatch_QueuesRun(t *testing.T) {
	rig := newDispatchRig(t)
	rig.subscribers.EXPECT().FetchByEmail(gomock.Any(), "reader@example.com").
		Return(activeSubscriber("reader@example.com"), nil)

	rec := postDispatch(t, rig.container, `{"email":"reader@example.com"}`, "")

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var ack dispatch_usecase.Ack
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, "accepted", ack.Status)
	require.Len(t, rig.enqueuer.requests, 1)
	assert.Equal(t, 1, rig.enqueuer.requests[0].Lookback)
}

func TestHandleDispatch_ForceWidensLookback(t *testing.T) {
	rig := newDispatchRig(t)
	rig.subscribers.EXPECT().FetchByEmail(gomock.Any(), "reader@example.com").
		Return(activeSubscriber("reader@example.com"), nil)

	rec := postDispatch(t, rig.container, `{"email":"reader@example.com"}`, "?force=true")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, rig.enqueuer.requests, 1)
	assert.Equal(t, 3, rig.enqueuer.requests[0].Lookback)
}

func TestHandleDispatch_PausedSubscriberSkipped(t *testing.T) {
	rig := newDispatchRig(t)
	sub := activeSubscriber("paused@example.com")
	sub.Preferences.SubscriptionStatus = domain.SubscriptionPaused
	rig.subscribers.EXPECT().FetchByEmail(gomock.Any(), "paused@example.com").
		Return(sub, nil)

	rec := postDispatch(t, rig.container, `{"email":"paused@example.com"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var ack dispatch_usecase.Ack
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, "skipped", ack.Status)
	assert.Equal(t, domain.SkipPausedIndefinite, ack.Reason)
	assert.Empty(t, rig.enqueuer.requests)
}

func TestHandleDispatch_UnknownSubscriberSkipped(t *testing.T) {
	rig := newDispatchRig(t)
	rig.subscribers.EXPECT().FetchByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, errors.ErrSubscriberNotFound)

	rec := postDispatch(t, rig.container, `{"email":"ghost@example.com"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var ack dispatch_usecase.Ack
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, "skipped", ack.Status)
	assert.Equal(t, domain.SkipNoSources, ack.Reason)
}

func TestHandleDispatch_MissingEmail(t *testing.T) {
	rig := newDispatchRig(t)

	rec := postDispatch(t, rig.container, `{}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rig.enqueuer.requests)
}
