package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homely/config"
	"homely/internal/domain/entity"
	"homely/internal/domain/repository"
	"homely/internal/domain/service"
	mockRepo "homely/internal/mocks/repository"
	mockUC "homely/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*mockRepo.MockBookingRepository, *mockUC.MockNotificationDispatcher, *PushHandler) {
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	dispatcher := mockUC.NewMockNotificationDispatcher(t)

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: "local"},
	}

	h := NewPushHandler(PushHandlerParams{
		Config:      cfg,
		Logger:      slog.Default(),
		BookingRepo: bookingRepo,
		Dispatcher:  dispatcher,
	})

	return bookingRepo, dispatcher, h
}

func pushRequest(t *testing.T, event *service.BookingEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/test/subscriptions/bookings"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush_DispatchesBooking(t *testing.T) {
	bookingRepo, dispatcher, h := newTestPushHandler(t)

	booking := &entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusConfirmed, Version: 2}

	bookingRepo.EXPECT().FindBookingByID(mock.Anything, "b1").Return(booking, nil)
	dispatcher.EXPECT().DispatchBookingUpdate(mock.Anything, booking).Once()

	e := echo.New()
	req := pushRequest(t, &service.BookingEvent{
		RequestID: "req-1",
		BookingID: "b1",
		UserID:    "user-1",
		Status:    string(entity.BookingStatusConfirmed),
		Version:   2,
	})
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MissingBookingAcked(t *testing.T) {
	bookingRepo, _, h := newTestPushHandler(t)

	// A deleted booking must not be retried by Pub/Sub, so the push is acked.
	bookingRepo.EXPECT().FindBookingByID(mock.Anything, "gone").Return(nil, repository.ErrBookingNotFound)

	e := echo.New()
	req := pushRequest(t, &service.BookingEvent{BookingID: "gone"})
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RepoErrorTriggersRetry(t *testing.T) {
	bookingRepo, _, h := newTestPushHandler(t)

	bookingRepo.EXPECT().FindBookingByID(mock.Anything, "b1").Return(nil, errors.New("read timeout"))

	e := echo.New()
	req := pushRequest(t, &service.BookingEvent{BookingID: "b1"})
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64(t *testing.T) {
	_, _, h := newTestPushHandler(t)

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"msg-1"},"subscription":"s"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_BadEventJSON(t *testing.T) {
	_, _, h := newTestPushHandler(t)

	data := base64.StdEncoding.EncodeToString([]byte("not json"))
	body := `{"message":{"data":"` + data + `","messageId":"msg-1"},"subscription":"s"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_RequestIDFromAttributes(t *testing.T) {
	bookingRepo, dispatcher, h := newTestPushHandler(t)

	booking := &entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusConfirmed}

	bookingRepo.EXPECT().FindBookingByID(mock.Anything, "b1").Return(booking, nil)
	dispatcher.EXPECT().DispatchBookingUpdate(mock.Anything, booking).Once()

	payload, err := json.Marshal(&service.BookingEvent{BookingID: "b1"})
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.Attributes = map[string]string{"request_id": "req-from-attr"}

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
