package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockwatch/config"
	"stockwatch/internal/domain/service"
	mockRepo "stockwatch/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEventHandler(t *testing.T) (*EventHandler, *mockRepo.MockEventLogRepository) {
	eventLogRepo := mockRepo.NewMockEventLogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := NewEventHandler(EventHandlerParams{
		Config:       &config.Config{},
		Logger:       logger,
		EventLogRepo: eventLogRepo,
	})

	return handler, eventLogRepo
}

func pushRequest(t *testing.T, event *service.StockEvent) *http.Request {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(payload),
			"messageId": "msg-1",
		},
		"subscription": "projects/test/subscriptions/stock-events",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestEventHandler_HandlePush_ArchivesEvent(t *testing.T) {
	handler, eventLogRepo := createTestEventHandler(t)

	event := &service.StockEvent{
		Category:  "Seeds",
		Item:      "Carrot",
		Quantity:  12,
		InStock:   true,
		Timestamp: 1756700000,
	}

	eventLogRepo.EXPECT().
		AppendEvent(mock.Anything, mock.MatchedBy(func(got *service.StockEvent) bool {
			return got.Category == "Seeds" && got.Item == "Carrot" && got.Quantity == 12
		})).
		Return(nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEventHandler_HandlePush_StoreFailureAsks503(t *testing.T) {
	handler, eventLogRepo := createTestEventHandler(t)

	eventLogRepo.EXPECT().
		AppendEvent(mock.Anything, mock.Anything).
		Return(errors.New("rtdb unavailable"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.StockEvent{
		Category: "Gear", Item: "Trowel", Quantity: 1, InStock: true,
	}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestEventHandler_HandlePush_BadPayloadIsDropped(t *testing.T) {
	handler, _ := createTestEventHandler(t)

	body := `{"message":{"data":"not-base64!!","messageId":"msg-2"}}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventHandler_HandlePush_EmptyEventIsDropped(t *testing.T) {
	handler, _ := createTestEventHandler(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.StockEvent{}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
