// Package entity contains the core business objects of the project.
package entity

// PushToken is one opaque FCM registration token belonging to a user. A user
// may hold several tokens at once (one per browser or device). Tokens are
// removed when delivery reports them invalid or unregistered.
type PushToken struct {
	Token        string `json:"token"`         // The opaque FCM registration token.
	RegisteredAt int64  `json:"registered_at"` // Unix seconds of when the client registered the token.
}
