package auth

import (
	"testing"
	"time"

	"stockwatch/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T, secret string, ttl time.Duration) *sessionService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.Secret = secret
	cfg.Session.TTL = ttl

	svc, err := NewSessionService(cfg)
	require.NoError(t, err)

	return svc.(*sessionService)
}

func TestNewSessionService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewSessionService(cfg)
	assert.Error(t, err)
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := newTestSessionService(t, "test-secret", time.Hour)

	userID, signed, err := svc.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	_, err = uuid.Parse(userID)
	require.NoError(t, err, "issued identity should be a uuid")

	got, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestIssueFor_KeepsExistingIdentity(t *testing.T) {
	svc := newTestSessionService(t, "test-secret", time.Hour)

	signed, err := svc.IssueFor("user-123")
	require.NoError(t, err)

	got, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	issuer := newTestSessionService(t, "secret-a", time.Hour)
	verifier := newTestSessionService(t, "secret-b", time.Hour)

	_, signed, err := issuer.Issue()
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	svc := newTestSessionService(t, "test-secret", -time.Minute)

	_, signed, err := svc.Issue()
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	svc := newTestSessionService(t, "test-secret", time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}
