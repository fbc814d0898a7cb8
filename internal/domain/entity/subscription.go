// Package entity contains the core business objects of the project.
package entity

// Subscription is one user's item selection for a single category. The user
// owns the selection; the notifier joins it against stock changes at dispatch
// time.
type Subscription struct {
	UserID   string   `json:"user_id"`  // The persistent anonymous identity of the subscriber.
	Category Category `json:"category"` // The category the selection applies to.
	Items    []string `json:"items"`    // The item names the user wants to be notified about.
}
