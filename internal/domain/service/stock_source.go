// Package service defines the interfaces for external collaborators of the
// domain: the stock data provider, the push delivery channel and the event
// bus.
package service

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// StockSource fetches the current stock snapshot for a category from the
// upstream game API. Any failure (network error, timeout, non-200 status, a
// payload that fits no supported shape) must surface as an error so the check
// aborts without mutating stored state.
type StockSource interface {
	FetchSnapshot(ctx context.Context, category entity.Category) (entity.StockSnapshot, error)
}
