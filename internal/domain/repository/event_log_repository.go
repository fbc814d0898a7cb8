// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stockwatch/internal/domain/service"
)

// EventLogRepository persists the audit trail of stock change events consumed
// from the event bus, keyed by stock_events/{category}.
type EventLogRepository interface {
	// AppendEvent stores one consumed event. Consuming the same event twice
	// overwrites the earlier entry, keeping the log idempotent.
	AppendEvent(ctx context.Context, event *service.StockEvent) error
}
