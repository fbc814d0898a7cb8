// Package entity contains the core business objects of the project.
package entity

import (
	"sort"
	"time"
)

// StockSnapshot is a point-in-time read of item name to quantity for a single
// category, produced fresh on every check. It is never persisted.
type StockSnapshot map[string]int

// ItemStatus is the last known stock state of one item, as persisted under
// global_stock_status/{category}/{item}.
type ItemStatus struct {
	InStock   bool  `json:"in_stock"`  // Whether the item had quantity > 0 at the last check.
	Quantity  int   `json:"quantity"`  // Quantity observed at the last check.
	Timestamp int64 `json:"timestamp"` // Unix seconds of the last check that touched this record.
}

// CategoryStatus maps item name to its last known status for one category.
// An absent entry is treated as out of stock with quantity zero.
type CategoryStatus map[string]ItemStatus

// ChangeSet is the partial status update produced by diffing a snapshot
// against the stored status. It is merged into the store key by key; items
// not present in the set are left untouched.
type ChangeSet map[string]ItemStatus

// Diff compares a fresh snapshot against the previously stored status and
// builds the update set for the category.
//
// An item enters the update set when its in-stock boolean flipped, or when it
// is currently in stock (a heartbeat refresh that keeps quantity and
// timestamp fresh without signalling a transition). The second return value
// lists the items that transitioned from out of stock to in stock; only those
// trigger notification fan-out, heartbeat entries never re-notify.
func Diff(prev CategoryStatus, snap StockSnapshot, now time.Time) (ChangeSet, []string) {
	changes := make(ChangeSet)
	var transitioned []string

	ts := now.Unix()
	for item, quantity := range snap {
		inStock := quantity > 0
		wasInStock := prev[item].InStock

		if inStock == wasInStock && !inStock {
			continue
		}

		changes[item] = ItemStatus{
			InStock:   inStock,
			Quantity:  quantity,
			Timestamp: ts,
		}

		if inStock && !wasInStock {
			transitioned = append(transitioned, item)
		}
	}

	sort.Strings(transitioned)

	return changes, transitioned
}
