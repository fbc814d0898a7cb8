package handler

import (
	"log/slog"
	"net/http"

	"stockwatch/internal/delivery/http/middleware"
	"stockwatch/internal/delivery/http/response"
	"stockwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Logger  *slog.Logger
}

// TokenHandler holds dependencies for push token handlers
type TokenHandler struct {
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering an FCM
// token
type RegisterTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegisterToken handles storing an FCM registration token for the caller
func (h *TokenHandler) RegisterToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "Missing or invalid session identity")
	}

	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Push token must not be empty")
	}

	registered, err := h.tokenUC.RegisterToken(c.Request().Context(), userID, req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, registered, "Token registered successfully")
}

// GetTokens handles listing the caller's registered tokens
func (h *TokenHandler) GetTokens(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "Missing or invalid session identity")
	}

	tokens, err := h.tokenUC.GetTokens(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens, "Tokens retrieved successfully")
}
