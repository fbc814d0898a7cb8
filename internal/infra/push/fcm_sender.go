// Package push implements the push delivery boundary over Firebase Cloud
// Messaging.
package push

import (
	"context"
	"fmt"

	"stockwatch/config"
	"stockwatch/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender creates a push sender backed by Firebase Cloud Messaging.
func NewFCMSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmSender{
		client: client,
	}, nil
}

// Send delivers one message to one token and folds the SDK's error taxonomy
// into the domain's result kinds. Token removal policy lives with the caller,
// keyed on the kind alone.
func (s *fcmSender) Send(ctx context.Context, token, title, body string, data map[string]string) (service.SendResult, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err == nil {
		return service.SendOK, nil
	}

	switch {
	case messaging.IsInvalidArgument(err):
		return service.SendInvalidToken, fmt.Errorf("invalid token: %w", err)
	case messaging.IsUnregistered(err):
		return service.SendUnregistered, fmt.Errorf("unregistered token: %w", err)
	default:
		return service.SendFailed, fmt.Errorf("failed to send notification: %w", err)
	}
}
