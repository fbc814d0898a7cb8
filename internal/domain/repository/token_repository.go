// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// TokenRepository persists the FCM registration tokens of each user, keyed by
// user_tokens/{user}/{token}.
type TokenRepository interface {
	// AddToken registers a token for a user. Re-registering an existing token
	// refreshes its registration time.
	AddToken(ctx context.Context, userID string, token *entity.PushToken) error

	// FindTokensByUser retrieves every token registered to a user.
	FindTokensByUser(ctx context.Context, userID string) ([]*entity.PushToken, error)

	// RemoveToken deletes a single token from a user's registered set.
	// Removing an absent token is not an error.
	RemoveToken(ctx context.Context, userID string, token string) error
}
