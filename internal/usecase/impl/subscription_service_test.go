package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stockwatch/internal/domain/entity"
	mockRepo "stockwatch/internal/mocks/repository"
	"stockwatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSubscriptionService(t *testing.T) (usecase.SubscriptionUsecase, *mockRepo.MockSubscriptionRepository) {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewSubscriptionService(subscriptionRepo, logger), subscriptionRepo
}

func TestSubscriptionService_GetSelection_CatalogOrder(t *testing.T) {
	service, subscriptionRepo := createTestSubscriptionService(t)
	ctx := context.Background()

	// Stored order is whatever the map iteration yielded; the result follows
	// the catalog.
	subscriptionRepo.EXPECT().
		FindItemsByUser(ctx, "user-a", entity.CategorySeeds).
		Return([]string{"Strawberry", "Carrot"}, nil)

	items, err := service.GetSelection(ctx, "user-a", entity.CategorySeeds)

	require.NoError(t, err)
	assert.Equal(t, []string{"Carrot", "Strawberry"}, items)
}

func TestSubscriptionService_GetSelection_KeepsRetiredNames(t *testing.T) {
	service, subscriptionRepo := createTestSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		FindItemsByUser(ctx, "user-a", entity.CategorySeeds).
		Return([]string{"Retired Seed", "Carrot"}, nil)

	items, err := service.GetSelection(ctx, "user-a", entity.CategorySeeds)

	require.NoError(t, err)
	assert.Equal(t, []string{"Carrot", "Retired Seed"}, items)
}

func TestSubscriptionService_UpdateSelection_AddsAndRemoves(t *testing.T) {
	service, subscriptionRepo := createTestSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		FindItemsByUser(ctx, "user-a", entity.CategorySeeds).
		Return([]string{"Carrot", "Strawberry"}, nil)

	subscriptionRepo.EXPECT().
		AddItems(ctx, "user-a", entity.CategorySeeds, []string{"Blueberry"}).
		Return(nil)
	subscriptionRepo.EXPECT().
		RemoveItems(ctx, "user-a", entity.CategorySeeds, []string{"Strawberry"}).
		Return(nil)

	err := service.UpdateSelection(ctx, "user-a", entity.CategorySeeds, []string{"Carrot", "Blueberry"})

	require.NoError(t, err)
}

func TestSubscriptionService_UpdateSelection_NoChanges(t *testing.T) {
	service, subscriptionRepo := createTestSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		FindItemsByUser(ctx, "user-a", entity.CategorySeeds).
		Return([]string{"Carrot"}, nil)

	// Identical selection: neither AddItems nor RemoveItems may run.
	err := service.UpdateSelection(ctx, "user-a", entity.CategorySeeds, []string{"Carrot"})

	require.NoError(t, err)
}

func TestSubscriptionService_UpdateSelection_EmptyClearsAll(t *testing.T) {
	service, subscriptionRepo := createTestSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		FindItemsByUser(ctx, "user-a", entity.CategorySeeds).
		Return([]string{"Carrot", "Strawberry"}, nil)
	subscriptionRepo.EXPECT().
		RemoveItems(ctx, "user-a", entity.CategorySeeds, []string{"Carrot", "Strawberry"}).
		Return(nil)

	err := service.UpdateSelection(ctx, "user-a", entity.CategorySeeds, nil)

	require.NoError(t, err)
}

func TestSubscriptionService_UpdateSelection_RejectsUnknownItem(t *testing.T) {
	service, _ := createTestSubscriptionService(t)
	ctx := context.Background()

	err := service.UpdateSelection(ctx, "user-a", entity.CategorySeeds, []string{"Not A Seed"})

	assert.Error(t, err)
}

func TestSubscriptionService_UpdateSelection_RepoError(t *testing.T) {
	service, subscriptionRepo := createTestSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		FindItemsByUser(ctx, "user-a", entity.CategorySeeds).
		Return(nil, errors.New("rtdb unavailable"))

	err := service.UpdateSelection(ctx, "user-a", entity.CategorySeeds, []string{"Carrot"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load current subscriptions")
}
