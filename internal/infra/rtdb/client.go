// Package rtdb implements the persistence interfaces over Firebase Realtime
// Database. Every repository addresses the store through slash-separated
// hierarchical paths; a single-key update is the only atomicity the store
// guarantees.
package rtdb

import (
	"context"

	"stockwatch/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// Store path roots.
const (
	stockStatusRef   = "global_stock_status"
	subscriptionsRef = "user_subscriptions"
	tokensRef        = "user_tokens"
	notificationsRef = "notifications"
	eventsRef        = "stock_events"
)

// New initializes the Firebase app and returns its realtime database client.
func New(ctx context.Context, cfg *config.Config) (*db.Client, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.Firebase.ProjectID,
		DatabaseURL: cfg.Firebase.DatabaseURL,
	}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get realtime database client")
	}

	return client, nil
}
