// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// NotificationRepository persists the delivery log, keyed by
// notifications/{user}/{category}/{item}. Each key holds only the last
// message sent for that item; clients dedup on the record timestamp.
type NotificationRepository interface {
	// AppendRecord writes the delivery record for one user and item,
	// replacing any earlier record for the same key.
	AppendRecord(ctx context.Context, userID string, record *entity.NotificationRecord) error

	// FindRecordsByUser retrieves every stored record for a user, newest
	// first.
	FindRecordsByUser(ctx context.Context, userID string) ([]*entity.NotificationRecord, error)
}
