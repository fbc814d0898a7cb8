package rtdb

import (
	"context"
	"fmt"

	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

type statusRepository struct {
	client *db.Client
}

// NewStatusRepository creates the stock status repository backed by the
// realtime database.
func NewStatusRepository(client *db.Client) repository.StatusRepository {
	return &statusRepository{client: client}
}

func (r *statusRepository) FindStatus(ctx context.Context, category entity.Category) (entity.CategoryStatus, error) {
	var status entity.CategoryStatus
	ref := r.client.NewRef(fmt.Sprintf("%s/%s", stockStatusRef, category))
	if err := ref.Get(ctx, &status); err != nil {
		return nil, errors.Wrapf(err, "read status for %s", category)
	}

	// A category that was never checked comes back nil, not an error.
	if status == nil {
		status = make(entity.CategoryStatus)
	}

	return status, nil
}

func (r *statusRepository) MergeStatus(ctx context.Context, category entity.Category, changes entity.ChangeSet) error {
	if len(changes) == 0 {
		return nil
	}

	update := make(map[string]any, len(changes))
	for item, status := range changes {
		update[item] = status
	}

	ref := r.client.NewRef(fmt.Sprintf("%s/%s", stockStatusRef, category))
	if err := ref.Update(ctx, update); err != nil {
		return errors.Wrapf(err, "merge status for %s", category)
	}

	return nil
}
