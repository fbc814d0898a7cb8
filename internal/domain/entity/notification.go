// Package entity contains the core business objects of the project.
package entity

import "fmt"

// NotificationRecord is the last message delivered to a user for one item in
// one category, as persisted under notifications/{user}/{category}/{item}.
// Clients dedup on the (category, item, timestamp) key.
type NotificationRecord struct {
	Category  Category `json:"category"`  // The category the notified item belongs to.
	Item      string   `json:"item"`      // The item that came in stock.
	Message   string   `json:"message"`   // The human-readable message that was delivered.
	Timestamp int64    `json:"timestamp"` // Unix seconds of the dispatch.
}

// StockMessage formats the notification body for an in-stock item.
func StockMessage(item string, quantity int) string {
	return fmt.Sprintf("%s is in stock (%d)!", item, quantity)
}
