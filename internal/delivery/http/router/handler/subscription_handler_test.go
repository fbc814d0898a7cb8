package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockwatch/internal/domain/entity"
	mockUsecase "stockwatch/internal/mocks/usecase"

	apperrors "stockwatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSubscriptionHandler(t *testing.T) (*SubscriptionHandler, *mockUsecase.MockSubscriptionUsecase) {
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: subscriptionUC,
		Logger:         logger,
	})

	return handler, subscriptionUC
}

func newSelectionContext(method, category, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues(category)

	return c, rec
}

func TestSubscriptionHandler_GetSelection_ReturnsItems(t *testing.T) {
	handler, subscriptionUC := createTestSubscriptionHandler(t)

	subscriptionUC.EXPECT().
		GetSelection(mock.Anything, "user-a", entity.CategorySeeds).
		Return([]string{"Carrot", "Strawberry"}, nil)

	c, rec := newSelectionContext(http.MethodGet, "seeds", "")
	c.Set("userID", "user-a")

	require.NoError(t, handler.GetSelection(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":["Carrot","Strawberry"]`)
}

func TestSubscriptionHandler_GetSelection_EmptySelectionIsArray(t *testing.T) {
	handler, subscriptionUC := createTestSubscriptionHandler(t)

	subscriptionUC.EXPECT().
		GetSelection(mock.Anything, "user-a", entity.CategoryGear).
		Return(nil, nil)

	c, rec := newSelectionContext(http.MethodGet, "gear", "")
	c.Set("userID", "user-a")

	require.NoError(t, handler.GetSelection(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestSubscriptionHandler_GetSelection_NoSession(t *testing.T) {
	handler, _ := createTestSubscriptionHandler(t)

	c, rec := newSelectionContext(http.MethodGet, "seeds", "")

	require.NoError(t, handler.GetSelection(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
}

func TestSubscriptionHandler_GetSelection_UnknownCategory(t *testing.T) {
	handler, _ := createTestSubscriptionHandler(t)

	c, rec := newSelectionContext(http.MethodGet, "potions", "")
	c.Set("userID", "user-a")

	require.NoError(t, handler.GetSelection(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CATEGORY_UNKNOWN")
}

func TestSubscriptionHandler_UpdateSelection_ReplacesSelection(t *testing.T) {
	handler, subscriptionUC := createTestSubscriptionHandler(t)

	subscriptionUC.EXPECT().
		UpdateSelection(mock.Anything, "user-a", entity.CategorySeeds, []string{"Carrot", "Blueberry"}).
		Return(nil)

	c, rec := newSelectionContext(http.MethodPut, "seeds", `{"items":["Carrot","Blueberry"]}`)
	c.Set("userID", "user-a")

	require.NoError(t, handler.UpdateSelection(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"selected":2`)
}

func TestSubscriptionHandler_UpdateSelection_RejectsUnknownItem(t *testing.T) {
	handler, subscriptionUC := createTestSubscriptionHandler(t)

	subscriptionUC.EXPECT().
		UpdateSelection(mock.Anything, "user-a", entity.CategorySeeds, []string{"Moon Rock"}).
		Return(apperrors.ErrItemNotInCatalog.WithDetails("Moon Rock"))

	c, rec := newSelectionContext(http.MethodPut, "seeds", `{"items":["Moon Rock"]}`)
	c.Set("userID", "user-a")

	require.NoError(t, handler.UpdateSelection(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ITEM_NOT_IN_CATALOG")
	assert.Contains(t, rec.Body.String(), "Moon Rock")
}

func TestSubscriptionHandler_UpdateSelection_BadBody(t *testing.T) {
	handler, _ := createTestSubscriptionHandler(t)

	c, rec := newSelectionContext(http.MethodPut, "seeds", `{"items":`)
	c.Set("userID", "user-a")

	require.NoError(t, handler.UpdateSelection(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestSubscriptionHandler_UpdateSelection_NoSession(t *testing.T) {
	handler, _ := createTestSubscriptionHandler(t)

	c, rec := newSelectionContext(http.MethodPut, "seeds", `{"items":[]}`)

	require.NoError(t, handler.UpdateSelection(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
}
