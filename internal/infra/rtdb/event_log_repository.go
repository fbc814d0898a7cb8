package rtdb

import (
	"context"
	"fmt"

	"stockwatch/internal/domain/repository"
	"stockwatch/internal/domain/service"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

type eventLogRepository struct {
	client *db.Client
}

// NewEventLogRepository creates the stock event audit trail repository backed
// by the realtime database.
func NewEventLogRepository(client *db.Client) repository.EventLogRepository {
	return &eventLogRepository{client: client}
}

// AppendEvent writes the event under stock_events/{category}/{item}/{ts}.
// The timestamp key makes redelivery of the same event a harmless overwrite.
func (r *eventLogRepository) AppendEvent(ctx context.Context, event *service.StockEvent) error {
	ref := r.client.NewRef(fmt.Sprintf("%s/%s/%s/%d", eventsRef, event.Category, event.Item, event.Timestamp))
	if err := ref.Set(ctx, event); err != nil {
		return errors.Wrapf(err, "append event for %s/%s", event.Category, event.Item)
	}

	return nil
}
