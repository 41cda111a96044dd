package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catering-api/models"
	"catering-api/repositories"
	"catering-api/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCartStore backs the cart service with a single dish and extra.
type stubCartStore struct {
	dish  *models.Dish
	extra *models.ExtraItem

	stats map[string]*models.CartStat
	item  models.CartItem
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{
		dish: &models.Dish{
			ID: 1, Name: "Jollof Rice", Price: decimal.RequireFromString("100.00"), IsAvailable: true,
		},
		extra: &models.ExtraItem{
			ID: 7, Name: "Extra Chicken", Price: decimal.RequireFromString("1.50"), IsAvailable: true,
		},
		stats: map[string]*models.CartStat{},
		item:  models.CartItem{ID: 1, CartID: 1, DishID: 1, Quantity: 1},
	}
}

func (s *stubCartStore) InTx(ctx context.Context, fn func(tx repositories.CartTx) error) error {
	return fn(s)
}

func (s *stubCartStore) ResolveCart(ctx context.Context, code string) (*models.Cart, error) {
	return &models.Cart{ID: 1, CartCode: code, OrderType: models.OrderTypeDelivery, IsActive: true}, nil
}

func (s *stubCartStore) SetOrderType(ctx context.Context, cartID int, orderType string) error {
	return nil
}

func (s *stubCartStore) GetDish(ctx context.Context, id int) (*models.Dish, error) {
	if id != s.dish.ID {
		return nil, pgx.ErrNoRows
	}
	copied := *s.dish
	return &copied, nil
}

func (s *stubCartStore) GetExtra(ctx context.Context, id int) (*models.ExtraItem, error) {
	if id != s.extra.ID {
		return nil, pgx.ErrNoRows
	}
	copied := *s.extra
	return &copied, nil
}

func (s *stubCartStore) GetOrCreateItem(ctx context.Context, cartID, dishID int) (*models.CartItem, error) {
	copied := s.item
	return &copied, nil
}

func (s *stubCartStore) SetItemExtras(ctx context.Context, itemID int, extras []models.CartItemExtra) ([]models.CartItemExtra, error) {
	for i := range extras {
		extras[i].ID = i + 1
	}
	return extras, nil
}

func (s *stubCartStore) UpdateItem(ctx context.Context, item *models.CartItem) error {
	s.item = *item
	return nil
}

func (s *stubCartStore) GetCartStat(ctx context.Context, code string) (*models.CartStat, error) {
	stat, ok := s.stats[code]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return stat, nil
}

func (s *stubCartStore) GetCartByCode(ctx context.Context, code string) (*models.CartSnapshot, error) {
	if _, ok := s.stats[code]; !ok {
		return nil, pgx.ErrNoRows
	}
	return &models.CartSnapshot{ID: 1, CartCode: code, OrderType: models.OrderTypeDelivery}, nil
}

func newCartTestRouter(store *stubCartStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewCartController(services.NewCartService(store))

	router := gin.New()
	router.POST("/cart/add_item/", ctrl.AddItem)
	router.GET("/cart/get_cart_stat/", ctrl.GetCartStat)
	router.GET("/cart/get_cart_item/", ctrl.GetCartItem)
	return router
}

func TestAddItemEndpoint(t *testing.T) {
	router := newCartTestRouter(newStubCartStore())

	body := `{"cart_code":"cart-abc","dish_id":1,"quantity":2,"extra_items":{"7":{"quantity":2}}}`
	req := httptest.NewRequest(http.MethodPost, "/cart/add_item/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Success bool                  `json:"success"`
		Data    models.CartItemDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "cart-abc", resp.Data.CartCode)
	assert.True(t, resp.Data.TotalPrice.Equal(decimal.RequireFromString("203.00")),
		"expected 203.00, got %s", resp.Data.TotalPrice)
}

func TestAddItemEndpointMissingCartCode(t *testing.T) {
	router := newCartTestRouter(newStubCartStore())

	body := `{"dish_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/cart/add_item/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddItemEndpointRejectsExtraItemsArray(t *testing.T) {
	router := newCartTestRouter(newStubCartStore())

	body := `{"cart_code":"cart-abc","dish_id":1,"extra_items":[1,2]}`
	req := httptest.NewRequest(http.MethodPost, "/cart/add_item/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "extra_items")
}

func TestAddItemEndpointUnknownDish(t *testing.T) {
	router := newCartTestRouter(newStubCartStore())

	body := `{"cart_code":"cart-abc","dish_id":99}`
	req := httptest.NewRequest(http.MethodPost, "/cart/add_item/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCartStatEndpointMissingCode(t *testing.T) {
	router := newCartTestRouter(newStubCartStore())

	req := httptest.NewRequest(http.MethodGet, "/cart/get_cart_stat/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCartStatEndpoint(t *testing.T) {
	store := newStubCartStore()
	store.stats["cart-abc"] = &models.CartStat{ID: 1, CartCode: "cart-abc", NumberOfItems: 4}
	router := newCartTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/cart/get_cart_stat/?cart_code=cart-abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stat models.CartStat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stat))
	assert.Equal(t, 4, stat.NumberOfItems)
}

func TestGetCartItemEndpointNotFound(t *testing.T) {
	router := newCartTestRouter(newStubCartStore())

	req := httptest.NewRequest(http.MethodGet, "/cart/get_cart_item/?cart_code=missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
