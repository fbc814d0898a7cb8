// Package auth provides the signed-cookie implementation of the anonymous
// session identity.
package auth

import (
	"time"

	"stockwatch/config"
	"stockwatch/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type sessionService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionService is the constructor for the JWT-backed identity service.
func NewSessionService(cfg *config.Config) (service.IdentityService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &sessionService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
	}, nil
}

// Issue mints a fresh anonymous user ID with its signed token.
func (s *sessionService) Issue() (string, string, error) {
	userID := uuid.New().String()
	signed, err := s.IssueFor(userID)
	if err != nil {
		return "", "", err
	}

	return userID, signed, nil
}

// IssueFor signs a token carrying an existing user ID.
func (s *sessionService) IssueFor(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// Verify checks the signature and expiry and extracts the user ID.
func (s *sessionService) Verify(signed string) (string, error) {
	token, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "parse session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("session token has no subject")
	}

	return sub, nil
}
