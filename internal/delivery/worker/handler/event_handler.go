// Package handler contains the Pub/Sub push handlers of the worker.
package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"stockwatch/config"
	deliverycontext "stockwatch/internal/delivery/context"
	"stockwatch/internal/domain/constants"
	"stockwatch/internal/domain/repository"
	"stockwatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// EventHandler consumes stock change events pushed by Pub/Sub and archives
// them as the audit trail.
type EventHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	eventLogRepo   repository.EventLogRepository
}

// EventHandlerParams holds dependencies for the EventHandler
type EventHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	EventLogRepo repository.EventLogRepository
}

// NewEventHandler creates a new Pub/Sub push handler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	// Google push requests carry a signed token outside of development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &EventHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		eventLogRepo:   params.EventLogRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages. A malformed message is
// acknowledged with a 4xx so it is never redelivered; a store failure returns
// 503 to trigger a Pub/Sub retry.
func (h *EventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.StockEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse stock event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if event.Category == "" || event.Item == "" {
		h.logger.Warn("[Worker] Dropping event without category or item",
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(&pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.eventLogRepo.AppendEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to archive stock event",
			slog.String("category", event.Category),
			slog.String("item", event.Item),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Stock event archived",
		slog.String("category", event.Category),
		slog.String("item", event.Item),
		slog.Bool("in_stock", event.InStock),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID picks the request ID from message attributes, the event
// payload, or mints a new one.
func (h *EventHandler) extractRequestID(pushMsg *PubSubMessage, event *service.StockEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
