package usecase

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// NotificationUsecase defines the notification feed use cases.
type NotificationUsecase interface {
	// GetUserFeed returns the user's delivery log, newest first. Clients
	// dedup entries on (category, item, timestamp).
	GetUserFeed(ctx context.Context, userID string) ([]*entity.NotificationRecord, error)
}
