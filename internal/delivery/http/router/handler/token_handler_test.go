package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockwatch/internal/delivery/http/validator"
	"stockwatch/internal/domain/entity"
	mockUsecase "stockwatch/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTokenHandler(t *testing.T) (*TokenHandler, *mockUsecase.MockTokenUsecase) {
	tokenUC := mockUsecase.NewMockTokenUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := NewTokenHandler(TokenHandlerParams{
		TokenUC: tokenUC,
		Logger:  logger,
	})

	return handler, tokenUC
}

func newTokenContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestTokenHandler_RegisterToken_Created(t *testing.T) {
	handler, tokenUC := createTestTokenHandler(t)

	tokenUC.EXPECT().
		RegisterToken(mock.Anything, "user-a", "fcm-token-1").
		Return(&entity.PushToken{Token: "fcm-token-1", RegisteredAt: 1756700000}, nil)

	c, rec := newTokenContext(http.MethodPost, `{"token":"fcm-token-1"}`)
	c.Set("userID", "user-a")

	require.NoError(t, handler.RegisterToken(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"fcm-token-1"`)
	assert.Contains(t, rec.Body.String(), `"registered_at":1756700000`)
}

func TestTokenHandler_RegisterToken_EmptyTokenRejected(t *testing.T) {
	handler, _ := createTestTokenHandler(t)

	c, rec := newTokenContext(http.MethodPost, `{"token":""}`)
	c.Set("userID", "user-a")

	require.NoError(t, handler.RegisterToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestTokenHandler_RegisterToken_NoSession(t *testing.T) {
	handler, _ := createTestTokenHandler(t)

	c, rec := newTokenContext(http.MethodPost, `{"token":"fcm-token-1"}`)

	require.NoError(t, handler.RegisterToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
}

func TestTokenHandler_GetTokens_ReturnsTokens(t *testing.T) {
	handler, tokenUC := createTestTokenHandler(t)

	tokenUC.EXPECT().
		GetTokens(mock.Anything, "user-a").
		Return([]*entity.PushToken{
			{Token: "fcm-token-1", RegisteredAt: 1756700000},
			{Token: "fcm-token-2", RegisteredAt: 1756703600},
		}, nil)

	c, rec := newTokenContext(http.MethodGet, "")
	c.Set("userID", "user-a")

	require.NoError(t, handler.GetTokens(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fcm-token-1")
	assert.Contains(t, rec.Body.String(), "fcm-token-2")
}

func TestTokenHandler_GetTokens_UnexpectedErrorBubbles(t *testing.T) {
	handler, tokenUC := createTestTokenHandler(t)

	tokenUC.EXPECT().
		GetTokens(mock.Anything, "user-a").
		Return(nil, errors.New("store unreachable"))

	c, _ := newTokenContext(http.MethodGet, "")
	c.Set("userID", "user-a")

	err := handler.GetTokens(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store unreachable")
}
