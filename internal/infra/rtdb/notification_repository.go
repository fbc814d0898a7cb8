package rtdb

import (
	"context"
	"fmt"
	"sort"

	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

// storedNotification is the wire form under notifications/{user}/{cat}/{item}.
type storedNotification struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

type notificationRepository struct {
	client *db.Client
}

// NewNotificationRepository creates the delivery log repository backed by the
// realtime database.
func NewNotificationRepository(client *db.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) AppendRecord(ctx context.Context, userID string, record *entity.NotificationRecord) error {
	ref := r.client.NewRef(fmt.Sprintf("%s/%s/%s/%s", notificationsRef, userID, record.Category, record.Item))
	stored := storedNotification{Message: record.Message, Timestamp: record.Timestamp}
	if err := ref.Set(ctx, stored); err != nil {
		return errors.Wrapf(err, "append notification for %s", userID)
	}

	return nil
}

func (r *notificationRepository) FindRecordsByUser(ctx context.Context, userID string) ([]*entity.NotificationRecord, error) {
	var tree map[string]map[string]storedNotification
	ref := r.client.NewRef(fmt.Sprintf("%s/%s", notificationsRef, userID))
	if err := ref.Get(ctx, &tree); err != nil {
		return nil, errors.Wrapf(err, "read notifications of %s", userID)
	}

	var records []*entity.NotificationRecord
	for category, items := range tree {
		for item, stored := range items {
			records = append(records, &entity.NotificationRecord{
				Category:  entity.Category(category),
				Item:      item,
				Message:   stored.Message,
				Timestamp: stored.Timestamp,
			})
		}
	}

	// Newest first; ties broken by key for stable output.
	sort.Slice(records, func(i, j int) bool {
		if records[i].Timestamp != records[j].Timestamp {
			return records[i].Timestamp > records[j].Timestamp
		}
		if records[i].Category != records[j].Category {
			return records[i].Category < records[j].Category
		}

		return records[i].Item < records[j].Item
	})

	return records, nil
}
