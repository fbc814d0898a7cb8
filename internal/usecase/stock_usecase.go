// Package usecase defines the interfaces for application use cases.
package usecase

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// StockItem is one row of a category listing: the live quantity joined with
// the item's static catalog metadata.
type StockItem struct {
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	SheckleCost int    `json:"sheckle_cost"`
	Quantity    int    `json:"quantity"`
	InStock     bool   `json:"in_stock"`
}

// CheckResult is the outcome of one stock check.
type CheckResult struct {
	// Changes is the update set that was merged into the stored status.
	Changes entity.ChangeSet `json:"changes"`

	// Notified lists the items that transitioned to in stock and had
	// notifications dispatched, in stable order.
	Notified []string `json:"notified"`

	// SelfItems lists the notified items the calling session itself is
	// subscribed to, so the frontend can toast immediately without waiting
	// for the push round trip.
	SelfItems []string `json:"self_items"`
}

// StockUsecase defines the stock listing and check-and-notify use cases.
type StockUsecase interface {
	// GetStock returns the category listing in catalog display order. Items
	// the upstream snapshot does not mention appear with quantity zero.
	GetStock(ctx context.Context, category entity.Category) ([]StockItem, error)

	// CheckAndNotify fetches a fresh snapshot, diffs it against the stored
	// status, persists the changes and fans out push notifications for every
	// item that transitioned to in stock. A fetch failure aborts before any
	// mutation. callerID is the session identity of the user who triggered
	// the check.
	CheckAndNotify(ctx context.Context, category entity.Category, callerID string) (*CheckResult, error)
}
