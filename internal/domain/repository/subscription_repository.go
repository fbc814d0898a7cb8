// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// SubscriptionRepository persists per-user item selections, keyed by
// user_subscriptions/{user}/{category}/{item}.
type SubscriptionRepository interface {
	// FindItemsByUser retrieves the item names a user selected in a category.
	FindItemsByUser(ctx context.Context, userID string, category entity.Category) ([]string, error)

	// AddItems marks the given items as selected for the user.
	AddItems(ctx context.Context, userID string, category entity.Category, items []string) error

	// RemoveItems deletes the given items from the user's selection.
	RemoveItems(ctx context.Context, userID string, category entity.Category, items []string) error

	// FindSubscribersForItem retrieves the IDs of every user whose selection
	// for the category contains the item. Used by notification fan-out.
	FindSubscribersForItem(ctx context.Context, category entity.Category, item string) ([]string, error)
}
