package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/repository"
	"stockwatch/internal/usecase"

	apperrors "stockwatch/internal/domain/errors"
)

type tokenService struct {
	tokenRepo repository.TokenRepository
	logger    *slog.Logger

	now func() time.Time
}

// NewTokenService creates a new token service instance
func NewTokenService(
	tokenRepo repository.TokenRepository,
	logger *slog.Logger,
) usecase.TokenUsecase {
	return &tokenService{
		tokenRepo: tokenRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterToken stores a push token for the user. Re-registering an existing
// token refreshes its timestamp.
func (s *tokenService) RegisterToken(ctx context.Context, userID string, token string) (*entity.PushToken, error) {
	if token == "" {
		return nil, apperrors.ErrTokenEmpty
	}

	pushToken := &entity.PushToken{
		Token:        token,
		RegisteredAt: s.now().Unix(),
	}
	if err := s.tokenRepo.AddToken(ctx, userID, pushToken); err != nil {
		return nil, fmt.Errorf("failed to register token: %w", err)
	}

	s.logger.Debug("push token registered",
		slog.String("user_id", userID),
	)

	return pushToken, nil
}

func (s *tokenService) GetTokens(ctx context.Context, userID string) ([]*entity.PushToken, error) {
	tokens, err := s.tokenRepo.FindTokensByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokens: %w", err)
	}

	return tokens, nil
}
