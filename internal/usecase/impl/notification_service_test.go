package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stockwatch/internal/domain/entity"
	mockRepo "stockwatch/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_GetUserFeed(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	service := NewNotificationService(notificationRepo, logger)

	ctx := context.Background()
	expected := []*entity.NotificationRecord{
		{Category: entity.CategorySeeds, Item: "Carrot", Message: "Carrot is in stock (12)!", Timestamp: 200},
		{Category: entity.CategoryGear, Item: "Trowel", Message: "Trowel is in stock (3)!", Timestamp: 100},
	}

	notificationRepo.EXPECT().
		FindRecordsByUser(ctx, "user-a").
		Return(expected, nil)

	records, err := service.GetUserFeed(ctx, "user-a")

	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestNotificationService_GetUserFeed_Error(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	service := NewNotificationService(notificationRepo, logger)

	notificationRepo.EXPECT().
		FindRecordsByUser(context.Background(), "user-a").
		Return(nil, errors.New("rtdb unavailable"))

	records, err := service.GetUserFeed(context.Background(), "user-a")

	assert.Error(t, err)
	assert.Nil(t, records)
}
