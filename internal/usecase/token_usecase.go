package usecase

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// TokenUsecase defines the push token management use cases.
type TokenUsecase interface {
	// RegisterToken stores an FCM registration token for the user.
	// Re-registering the same token refreshes its registration time.
	RegisterToken(ctx context.Context, userID string, token string) (*entity.PushToken, error)

	// GetTokens returns every token registered to the user.
	GetTokens(ctx context.Context, userID string) ([]*entity.PushToken, error)
}
