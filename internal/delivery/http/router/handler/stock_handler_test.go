package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockwatch/internal/domain/entity"
	mockUsecase "stockwatch/internal/mocks/usecase"
	"stockwatch/internal/usecase"

	apperrors "stockwatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStockHandler(t *testing.T) (*StockHandler, *mockUsecase.MockStockUsecase) {
	stockUC := mockUsecase.NewMockStockUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := NewStockHandler(StockHandlerParams{
		StockUC: stockUC,
		Logger:  logger,
	})

	return handler, stockUC
}

// newCategoryContext builds an echo context for a request routed with a
// :category path parameter.
func newCategoryContext(method, category string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues(category)

	return c, rec
}

func TestStockHandler_GetStock_ReturnsListing(t *testing.T) {
	handler, stockUC := createTestStockHandler(t)

	stockUC.EXPECT().
		GetStock(mock.Anything, entity.CategorySeeds).
		Return([]usecase.StockItem{
			{Name: "Carrot", Rarity: "Common", SheckleCost: 10, Quantity: 20, InStock: true},
			{Name: "Strawberry", Rarity: "Common", SheckleCost: 50, Quantity: 0, InStock: false},
		}, nil)

	c, rec := newCategoryContext(http.MethodGet, "seeds")

	require.NoError(t, handler.GetStock(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"name":"Carrot"`)
	assert.Contains(t, rec.Body.String(), `"quantity":20`)
}

func TestStockHandler_GetStock_UnknownCategory(t *testing.T) {
	handler, _ := createTestStockHandler(t)

	c, rec := newCategoryContext(http.MethodGet, "potions")

	require.NoError(t, handler.GetStock(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CATEGORY_UNKNOWN")
}

func TestStockHandler_GetStock_FetchFailure(t *testing.T) {
	handler, stockUC := createTestStockHandler(t)

	stockUC.EXPECT().
		GetStock(mock.Anything, entity.CategoryGear).
		Return(nil, errors.New("upstream timeout"))

	c, rec := newCategoryContext(http.MethodGet, "gear")

	require.NoError(t, handler.GetStock(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "STOCK_FETCH_FAILED")
}

func TestStockHandler_CheckStock_ReturnsResult(t *testing.T) {
	handler, stockUC := createTestStockHandler(t)

	stockUC.EXPECT().
		CheckAndNotify(mock.Anything, entity.CategoryGear, "user-a").
		Return(&usecase.CheckResult{
			Changes: entity.ChangeSet{
				"Trowel": {InStock: true, Quantity: 3, Timestamp: 1756700000},
			},
			Notified:  []string{"Trowel"},
			SelfItems: []string{"Trowel"},
		}, nil)

	c, rec := newCategoryContext(http.MethodPost, "gear")
	c.Set("userID", "user-a")

	require.NoError(t, handler.CheckStock(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notified":["Trowel"]`)
	assert.Contains(t, rec.Body.String(), `"self_items":["Trowel"]`)
}

func TestStockHandler_CheckStock_NoSessionUsesEmptyCaller(t *testing.T) {
	handler, stockUC := createTestStockHandler(t)

	stockUC.EXPECT().
		CheckAndNotify(mock.Anything, entity.CategoryEggs, "").
		Return(&usecase.CheckResult{Changes: entity.ChangeSet{}}, nil)

	c, rec := newCategoryContext(http.MethodPost, "eggs")

	require.NoError(t, handler.CheckStock(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStockHandler_CheckStock_AppErrorKeepsStatus(t *testing.T) {
	handler, stockUC := createTestStockHandler(t)

	stockUC.EXPECT().
		CheckAndNotify(mock.Anything, entity.CategorySeeds, "").
		Return(nil, apperrors.ErrStoreUnavailable)

	c, rec := newCategoryContext(http.MethodPost, "seeds")

	require.NoError(t, handler.CheckStock(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORE_UNAVAILABLE")
}

func TestStockHandler_CheckStock_UnexpectedErrorBubbles(t *testing.T) {
	handler, stockUC := createTestStockHandler(t)

	stockUC.EXPECT().
		CheckAndNotify(mock.Anything, entity.CategorySeeds, "").
		Return(nil, errors.New("merge failed"))

	c, _ := newCategoryContext(http.MethodPost, "seeds")

	err := handler.CheckStock(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merge failed")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
