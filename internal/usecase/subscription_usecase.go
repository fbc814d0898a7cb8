package usecase

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// SubscriptionUsecase defines the subscription management use cases.
type SubscriptionUsecase interface {
	// GetSelection returns the items the user selected in a category, in
	// catalog display order.
	GetSelection(ctx context.Context, userID string, category entity.Category) ([]string, error)

	// UpdateSelection replaces the user's selection for a category. Items in
	// the category catalog that are absent from the new selection are
	// deselected; unknown item names are rejected.
	UpdateSelection(ctx context.Context, userID string, category entity.Category, items []string) error
}
