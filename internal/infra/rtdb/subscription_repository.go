package rtdb

import (
	"context"
	"fmt"
	"sort"

	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

type subscriptionRepository struct {
	client *db.Client
}

// NewSubscriptionRepository creates the subscription repository backed by the
// realtime database.
func NewSubscriptionRepository(client *db.Client) repository.SubscriptionRepository {
	return &subscriptionRepository{client: client}
}

func (r *subscriptionRepository) FindItemsByUser(ctx context.Context, userID string, category entity.Category) ([]string, error) {
	var selection map[string]bool
	ref := r.client.NewRef(fmt.Sprintf("%s/%s/%s", subscriptionsRef, userID, category))
	if err := ref.Get(ctx, &selection); err != nil {
		return nil, errors.Wrapf(err, "read subscriptions of %s/%s", userID, category)
	}

	items := make([]string, 0, len(selection))
	for item, selected := range selection {
		if selected {
			items = append(items, item)
		}
	}
	sort.Strings(items)

	return items, nil
}

func (r *subscriptionRepository) AddItems(ctx context.Context, userID string, category entity.Category, items []string) error {
	if len(items) == 0 {
		return nil
	}

	update := make(map[string]any, len(items))
	for _, item := range items {
		update[item] = true
	}

	ref := r.client.NewRef(fmt.Sprintf("%s/%s/%s", subscriptionsRef, userID, category))
	if err := ref.Update(ctx, update); err != nil {
		return errors.Wrapf(err, "add subscriptions of %s/%s", userID, category)
	}

	return nil
}

func (r *subscriptionRepository) RemoveItems(ctx context.Context, userID string, category entity.Category, items []string) error {
	ref := r.client.NewRef(fmt.Sprintf("%s/%s/%s", subscriptionsRef, userID, category))
	for _, item := range items {
		if err := ref.Child(item).Delete(ctx); err != nil {
			return errors.Wrapf(err, "remove subscription %s of %s/%s", item, userID, category)
		}
	}

	return nil
}

func (r *subscriptionRepository) FindSubscribersForItem(ctx context.Context, category entity.Category, item string) ([]string, error) {
	// The store has no reverse index, so fan-out scans the whole
	// subscription tree, same as the per-key layout implies.
	var all map[string]map[string]map[string]bool
	if err := r.client.NewRef(subscriptionsRef).Get(ctx, &all); err != nil {
		return nil, errors.Wrap(err, "read subscription tree")
	}

	var userIDs []string
	for userID, categories := range all {
		if categories[string(category)][item] {
			userIDs = append(userIDs, userID)
		}
	}
	sort.Strings(userIDs)

	return userIDs, nil
}
