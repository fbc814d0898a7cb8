// Package impl contains the concrete implementations of the use cases.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stockwatch/internal/domain/catalog"
	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/repository"
	"stockwatch/internal/domain/service"
	"stockwatch/internal/usecase"

	deliverycontext "stockwatch/internal/delivery/context"
)

type stockService struct {
	source           service.StockSource
	statusRepo       repository.StatusRepository
	subscriptionRepo repository.SubscriptionRepository
	tokenRepo        repository.TokenRepository
	notificationRepo repository.NotificationRepository
	pushSender       service.PushSender
	eventPublisher   service.EventPublisher
	logger           *slog.Logger

	now func() time.Time
}

// NewStockService creates a new stock service instance
func NewStockService(
	source service.StockSource,
	statusRepo repository.StatusRepository,
	subscriptionRepo repository.SubscriptionRepository,
	tokenRepo repository.TokenRepository,
	notificationRepo repository.NotificationRepository,
	pushSender service.PushSender,
	eventPublisher service.EventPublisher,
	logger *slog.Logger,
) usecase.StockUsecase {
	return &stockService{
		source:           source,
		statusRepo:       statusRepo,
		subscriptionRepo: subscriptionRepo,
		tokenRepo:        tokenRepo,
		notificationRepo: notificationRepo,
		pushSender:       pushSender,
		eventPublisher:   eventPublisher,
		logger:           logger,
		now:              time.Now,
	}
}

// GetStock returns the category listing in catalog display order.
func (s *stockService) GetStock(ctx context.Context, category entity.Category) ([]usecase.StockItem, error) {
	snapshot, err := s.source.FetchSnapshot(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s snapshot: %w", category, err)
	}

	entries := catalog.Items(category)
	items := make([]usecase.StockItem, 0, len(entries))
	listed := make(map[string]bool, len(entries))
	for _, e := range entries {
		quantity := snapshot[e.Name]
		items = append(items, usecase.StockItem{
			Name:        e.Name,
			Rarity:      e.Rarity,
			SheckleCost: e.SheckleCost,
			Quantity:    quantity,
			InStock:     quantity > 0,
		})
		listed[e.Name] = true
	}

	// The API occasionally ships items the catalog doesn't know yet; show
	// them after the ordered ones rather than hiding stock.
	for name, quantity := range snapshot {
		if listed[name] || quantity == 0 {
			continue
		}
		items = append(items, usecase.StockItem{
			Name:     name,
			Rarity:   "Unknown",
			Quantity: quantity,
			InStock:  true,
		})
	}

	return items, nil
}

// CheckAndNotify runs one detect-and-notify cycle for a category.
func (s *stockService) CheckAndNotify(ctx context.Context, category entity.Category, callerID string) (*usecase.CheckResult, error) {
	// Fail closed: a fetch error must never read as "everything went out of
	// stock", so nothing below runs unless the snapshot is good.
	snapshot, err := s.source.FetchSnapshot(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s snapshot: %w", category, err)
	}

	prev, err := s.statusRepo.FindStatus(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored status for %s: %w", category, err)
	}

	changes, transitioned := entity.Diff(prev, snapshot, s.now())

	if err := s.statusRepo.MergeStatus(ctx, category, changes); err != nil {
		return nil, fmt.Errorf("failed to persist status for %s: %w", category, err)
	}

	result := &usecase.CheckResult{Changes: changes}

	for _, item := range transitioned {
		quantity := changes[item].Quantity

		selfNotified, err := s.notify(ctx, category, item, quantity, callerID)
		if err != nil {
			return result, fmt.Errorf("failed to notify for %s/%s: %w", category, item, err)
		}

		result.Notified = append(result.Notified, item)
		if selfNotified {
			result.SelfItems = append(result.SelfItems, item)
		}

		s.publishEvent(ctx, category, item, changes[item])
	}

	return result, nil
}

// notify fans one in-stock transition out to every subscribed user. The
// returned bool reports whether callerID was among the recipients. Only the
// subscriber query error aborts; per-recipient failures are logged and the
// loop continues.
func (s *stockService) notify(ctx context.Context, category entity.Category, item string, quantity int, callerID string) (bool, error) {
	userIDs, err := s.subscriptionRepo.FindSubscribersForItem(ctx, category, item)
	if err != nil {
		return false, fmt.Errorf("failed to find subscribers: %w", err)
	}

	message := entity.StockMessage(item, quantity)
	title := fmt.Sprintf("%s is in Stock!", item)
	data := map[string]string{
		"category": string(category),
		"item":     item,
	}

	selfNotified := false
	for _, userID := range userIDs {
		if userID == callerID {
			selfNotified = true
		}

		record := &entity.NotificationRecord{
			Category:  category,
			Item:      item,
			Message:   message,
			Timestamp: s.now().Unix(),
		}
		if err := s.notificationRepo.AppendRecord(ctx, userID, record); err != nil {
			s.logger.Error("failed to append notification record",
				slog.String("user_id", userID),
				slog.String("item", item),
				slog.Any("error", err),
			)
		}

		tokens, err := s.tokenRepo.FindTokensByUser(ctx, userID)
		if err != nil {
			s.logger.Error("failed to load tokens",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)

			continue
		}

		for _, token := range tokens {
			s.deliver(ctx, userID, token.Token, title, message, data)
		}
	}

	return selfNotified, nil
}

// deliver attempts one push delivery and applies the token removal policy.
func (s *stockService) deliver(ctx context.Context, userID, token, title, body string, data map[string]string) {
	result, err := s.pushSender.Send(ctx, token, title, body, data)
	if result == service.SendOK {
		return
	}

	if result.Dead() {
		// Stale or malformed registration; drop it so it is never retried.
		if removeErr := s.tokenRepo.RemoveToken(ctx, userID, token); removeErr != nil {
			s.logger.Error("failed to remove dead token",
				slog.String("user_id", userID),
				slog.Any("error", removeErr),
			)

			return
		}

		s.logger.Info("removed dead token",
			slog.String("user_id", userID),
		)

		return
	}

	s.logger.Warn("push delivery failed, token retained",
		slog.String("user_id", userID),
		slog.Any("error", err),
	)
}

// publishEvent reports one transition to the event bus. Publishing is
// observability only; failures are logged, never propagated.
func (s *stockService) publishEvent(ctx context.Context, category entity.Category, item string, status entity.ItemStatus) {
	event := &service.StockEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Category:  string(category),
		Item:      item,
		Quantity:  status.Quantity,
		InStock:   status.InStock,
		Timestamp: status.Timestamp,
	}

	if err := s.eventPublisher.PublishStockEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish stock event",
			slog.String("item", item),
			slog.Any("error", err),
		)
	}
}
