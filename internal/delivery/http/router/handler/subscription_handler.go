package handler

import (
	"log/slog"
	"net/http"

	"stockwatch/internal/delivery/http/middleware"
	"stockwatch/internal/delivery/http/response"
	"stockwatch/internal/domain/entity"
	"stockwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// UpdateSelectionRequest represents the request body for replacing a
// category selection
type UpdateSelectionRequest struct {
	Items []string `json:"items"`
}

// GetSelection handles retrieving the caller's selection for a category
func (h *SubscriptionHandler) GetSelection(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "Missing or invalid session identity")
	}

	category, err := entity.ParseCategory(c.Param("category"))
	if err != nil {
		return response.NotFound(c, "CATEGORY_UNKNOWN", "Unknown stock category")
	}

	items, err := h.subscriptionUC.GetSelection(c.Request().Context(), userID, category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if items == nil {
		items = []string{}
	}

	return response.Success(c, http.StatusOK, map[string][]string{"items": items}, "Selection retrieved successfully")
}

// UpdateSelection handles replacing the caller's selection for a category
func (h *SubscriptionHandler) UpdateSelection(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "Missing or invalid session identity")
	}

	category, err := entity.ParseCategory(c.Param("category"))
	if err != nil {
		return response.NotFound(c, "CATEGORY_UNKNOWN", "Unknown stock category")
	}

	var req UpdateSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	if err := h.subscriptionUC.UpdateSelection(c.Request().Context(), userID, category, req.Items); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"selected": len(req.Items)}, "Selection updated successfully")
}
