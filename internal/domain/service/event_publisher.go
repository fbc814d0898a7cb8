package service

import (
	"context"
)

// StockEvent describes one item whose stock status changed during a check.
// Events are observability output only; push delivery never depends on them.
type StockEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Category  string `json:"category"`
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	InStock   bool   `json:"in_stock"`
	Timestamp int64  `json:"timestamp"` // Unix seconds of the check
}

// EventPublisher defines the interface for publishing stock events to a
// message queue.
type EventPublisher interface {
	// PublishStockEvent publishes a stock change event for downstream
	// consumers.
	PublishStockEvent(ctx context.Context, event *StockEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
