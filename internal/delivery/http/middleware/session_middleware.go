package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"stockwatch/config"
	"stockwatch/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const keyUserID = "userID"

// SessionMiddleware maintains the anonymous cookie identity. Every request
// leaves with a valid identity: an existing cookie is verified and refreshed,
// a missing or bad one is replaced by a freshly minted identity. Requests are
// never rejected for lacking a session.
type SessionMiddleware struct {
	identitySvc service.IdentityService
	cfg         *config.Config
	logger      *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(identitySvc service.IdentityService, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		identitySvc: identitySvc,
		cfg:         cfg,
		logger:      logger,
	}
}

// Identify resolves or mints the caller's identity and stores the user ID on
// the echo context for handlers.
func (m *SessionMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := m.resolve(c)
		c.Set(keyUserID, userID)

		return next(c)
	}
}

func (m *SessionMiddleware) resolve(c echo.Context) string {
	cookie, err := c.Cookie(m.cfg.Session.CookieName)
	if err == nil && cookie.Value != "" {
		if userID, verifyErr := m.identitySvc.Verify(cookie.Value); verifyErr == nil {
			return userID
		}

		m.logger.Debug("session cookie failed verification, reissuing")
	}

	userID, signed, err := m.identitySvc.Issue()
	if err != nil {
		// The request proceeds anonymously; identity-dependent handlers
		// reject it themselves.
		m.logger.Error("failed to issue session identity", slog.Any("error", err))

		return ""
	}

	m.setCookie(c, signed)

	return userID
}

func (m *SessionMiddleware) setCookie(c echo.Context, signed string) {
	c.SetCookie(&http.Cookie{
		Name:     m.cfg.Session.CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  time.Now().Add(m.cfg.Session.TTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetUserID extracts the session user ID set by Identify.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(keyUserID).(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}
