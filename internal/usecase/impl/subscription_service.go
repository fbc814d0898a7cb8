package impl

import (
	"context"
	"fmt"
	"log/slog"

	"stockwatch/internal/domain/catalog"
	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/repository"
	"stockwatch/internal/usecase"

	apperrors "stockwatch/internal/domain/errors"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	logger *slog.Logger,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// GetSelection returns the user's selected items ordered the way the catalog
// lists them. Selections for names that later left the catalog still appear,
// after the ordered ones.
func (s *subscriptionService) GetSelection(ctx context.Context, userID string, category entity.Category) ([]string, error) {
	items, err := s.subscriptionRepo.FindItemsByUser(ctx, userID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions for %s: %w", category, err)
	}

	selected := make(map[string]bool, len(items))
	for _, item := range items {
		selected[item] = true
	}

	ordered := make([]string, 0, len(items))
	for _, name := range catalog.Names(category) {
		if selected[name] {
			ordered = append(ordered, name)
			delete(selected, name)
		}
	}

	for _, item := range items {
		if selected[item] {
			ordered = append(ordered, item)
		}
	}

	return ordered, nil
}

// UpdateSelection replaces the user's selection for a category with the given
// item set. Items the user had but the new set omits are unsubscribed.
func (s *subscriptionService) UpdateSelection(ctx context.Context, userID string, category entity.Category, items []string) error {
	for _, item := range items {
		if !catalog.Contains(category, item) {
			return apperrors.ErrItemNotInCatalog.WithDetails(item)
		}
	}

	current, err := s.subscriptionRepo.FindItemsByUser(ctx, userID, category)
	if err != nil {
		return fmt.Errorf("failed to load current subscriptions: %w", err)
	}

	wanted := make(map[string]bool, len(items))
	for _, item := range items {
		wanted[item] = true
	}

	var removed []string
	for _, item := range current {
		if !wanted[item] {
			removed = append(removed, item)
		}

		delete(wanted, item)
	}

	var added []string
	for _, item := range items {
		if wanted[item] {
			added = append(added, item)
		}
	}

	if len(added) > 0 {
		if err := s.subscriptionRepo.AddItems(ctx, userID, category, added); err != nil {
			return fmt.Errorf("failed to add subscriptions: %w", err)
		}
	}

	if len(removed) > 0 {
		if err := s.subscriptionRepo.RemoveItems(ctx, userID, category, removed); err != nil {
			return fmt.Errorf("failed to remove subscriptions: %w", err)
		}
	}

	s.logger.Debug("subscription selection updated",
		slog.String("user_id", userID),
		slog.String("category", string(category)),
		slog.Int("added", len(added)),
		slog.Int("removed", len(removed)),
	)

	return nil
}
