package impl

import (
	"context"
	"fmt"
	"log/slog"

	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/repository"
	"stockwatch/internal/usecase"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *notificationService) GetUserFeed(ctx context.Context, userID string) ([]*entity.NotificationRecord, error) {
	records, err := s.notificationRepo.FindRecordsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification feed: %w", err)
	}

	return records, nil
}
