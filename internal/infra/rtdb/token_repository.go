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

type tokenRepository struct {
	client *db.Client
}

// NewTokenRepository creates the push token repository backed by the realtime
// database.
func NewTokenRepository(client *db.Client) repository.TokenRepository {
	return &tokenRepository{client: client}
}

func (r *tokenRepository) AddToken(ctx context.Context, userID string, token *entity.PushToken) error {
	ref := r.client.NewRef(fmt.Sprintf("%s/%s/%s", tokensRef, userID, token.Token))
	if err := ref.Set(ctx, token.RegisteredAt); err != nil {
		return errors.Wrapf(err, "register token for %s", userID)
	}

	return nil
}

func (r *tokenRepository) FindTokensByUser(ctx context.Context, userID string) ([]*entity.PushToken, error) {
	var stored map[string]int64
	ref := r.client.NewRef(fmt.Sprintf("%s/%s", tokensRef, userID))
	if err := ref.Get(ctx, &stored); err != nil {
		return nil, errors.Wrapf(err, "read tokens of %s", userID)
	}

	tokens := make([]*entity.PushToken, 0, len(stored))
	for token, registeredAt := range stored {
		tokens = append(tokens, &entity.PushToken{Token: token, RegisteredAt: registeredAt})
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Token < tokens[j].Token })

	return tokens, nil
}

func (r *tokenRepository) RemoveToken(ctx context.Context, userID string, token string) error {
	ref := r.client.NewRef(fmt.Sprintf("%s/%s/%s", tokensRef, userID, token))
	if err := ref.Delete(ctx); err != nil {
		return errors.Wrapf(err, "remove token of %s", userID)
	}

	return nil
}
