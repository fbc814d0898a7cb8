package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockwatch/config"
	mockService "stockwatch/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockService.MockIdentityService) {
	identitySvc := mockService.NewMockIdentityService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{
		Session: config.SessionConfig{
			CookieName: "sw_session",
			TTL:        24 * time.Hour,
		},
	}

	return NewSessionMiddleware(identitySvc, cfg, logger), identitySvc
}

// capture wraps the middleware around a handler that records the resolved
// user ID.
func capture(m *SessionMiddleware, req *http.Request) (string, *httptest.ResponseRecorder, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID string
	err := m.Identify(func(c echo.Context) error {
		gotUserID, _ = GetUserID(c)

		return c.NoContent(http.StatusOK)
	})(c)

	return gotUserID, rec, err
}

func TestSessionMiddleware_ValidCookieKeepsIdentity(t *testing.T) {
	m, identitySvc := createTestSessionMiddleware(t)

	identitySvc.EXPECT().Verify("signed-token").Return("user-a", nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sw_session", Value: "signed-token"})

	userID, rec, err := capture(m, req)

	require.NoError(t, err)
	assert.Equal(t, "user-a", userID)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionMiddleware_MissingCookieMintsIdentity(t *testing.T) {
	m, identitySvc := createTestSessionMiddleware(t)

	identitySvc.EXPECT().Issue().Return("user-new", "fresh-token", nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	userID, rec, err := capture(m, req)

	require.NoError(t, err)
	assert.Equal(t, "user-new", userID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sw_session", cookies[0].Name)
	assert.Equal(t, "fresh-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddleware_BadCookieIsReplaced(t *testing.T) {
	m, identitySvc := createTestSessionMiddleware(t)

	identitySvc.EXPECT().Verify("tampered").Return("", errors.New("signature mismatch"))
	identitySvc.EXPECT().Issue().Return("user-new", "fresh-token", nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sw_session", Value: "tampered"})

	userID, rec, err := capture(m, req)

	require.NoError(t, err)
	assert.Equal(t, "user-new", userID)
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestSessionMiddleware_IssueFailureProceedsAnonymously(t *testing.T) {
	m, identitySvc := createTestSessionMiddleware(t)

	identitySvc.EXPECT().Issue().Return("", "", errors.New("signing key unavailable"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	userID, rec, err := capture(m, req)

	require.NoError(t, err)
	assert.Empty(t, userID)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, http.StatusOK, rec.Code)
}
