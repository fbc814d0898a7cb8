// Package handler contains the echo request handlers.
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

// StockHandlerParams holds dependencies for StockHandler, injected by Fx.
type StockHandlerParams struct {
	fx.In

	StockUC usecase.StockUsecase
	Logger  *slog.Logger
}

// StockHandler holds dependencies for stock-related handlers
type StockHandler struct {
	stockUC usecase.StockUsecase
	logger  *slog.Logger
}

// NewStockHandler is the constructor for StockHandler
func NewStockHandler(params StockHandlerParams) *StockHandler {
	return &StockHandler{
		stockUC: params.StockUC,
		logger:  params.Logger,
	}
}

// GetStock handles retrieving the current stock listing for a category
func (h *StockHandler) GetStock(c echo.Context) error {
	category, err := entity.ParseCategory(c.Param("category"))
	if err != nil {
		return response.NotFound(c, "CATEGORY_UNKNOWN", "Unknown stock category")
	}

	items, err := h.stockUC.GetStock(c.Request().Context(), category)
	if err != nil {
		return response.BadGateway(c, "STOCK_FETCH_FAILED", "Failed to fetch stock from the upstream API")
	}

	return response.Success(c, http.StatusOK, items, "Stock retrieved successfully")
}

// CheckStock handles running a detect-and-notify cycle for a category
func (h *StockHandler) CheckStock(c echo.Context) error {
	category, err := entity.ParseCategory(c.Param("category"))
	if err != nil {
		return response.NotFound(c, "CATEGORY_UNKNOWN", "Unknown stock category")
	}

	// The caller's own identity lets the use case flag items it can toast
	// immediately. An absent session just means no self-toast.
	callerID, _ := middleware.GetUserID(c)

	result, err := h.stockUC.CheckAndNotify(c.Request().Context(), category, callerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Stock check completed")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
