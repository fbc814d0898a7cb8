// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// StatusRepository persists the last known stock state per category. It is
// mutated only by the stock check; everything else reads it.
type StatusRepository interface {
	// FindStatus retrieves the stored status for a category. A category that
	// was never checked yields an empty map, not an error.
	FindStatus(ctx context.Context, category entity.Category) (entity.CategoryStatus, error)

	// MergeStatus applies a change set as a partial update: only the items in
	// the set are written, existing unrelated items are untouched. An empty
	// set is a no-op.
	MergeStatus(ctx context.Context, category entity.Category, changes entity.ChangeSet) error
}
