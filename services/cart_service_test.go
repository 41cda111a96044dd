package services

import (
	"context"
	"testing"

	"catering-api/models"
	"catering-api/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartStore keeps carts, items and extras in memory and implements
// both CartStore and repositories.CartTx.
type fakeCartStore struct {
	dishes map[int]*models.Dish
	extras map[int]*models.ExtraItem

	carts      map[string]*models.Cart
	items      map[int]*models.CartItem
	itemExtras map[int][]models.CartItemExtra

	nextCartID  int
	nextItemID  int
	nextExtraID int
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{
		dishes:      map[int]*models.Dish{},
		extras:      map[int]*models.ExtraItem{},
		carts:       map[string]*models.Cart{},
		items:       map[int]*models.CartItem{},
		itemExtras:  map[int][]models.CartItemExtra{},
		nextCartID:  1,
		nextItemID:  1,
		nextExtraID: 1,
	}
}

func (f *fakeCartStore) InTx(ctx context.Context, fn func(tx repositories.CartTx) error) error {
	return fn(f)
}

func (f *fakeCartStore) ResolveCart(ctx context.Context, code string) (*models.Cart, error) {
	if cart, ok := f.carts[code]; ok {
		copied := *cart
		return &copied, nil
	}
	cart := &models.Cart{
		ID:        f.nextCartID,
		CartCode:  code,
		OrderType: models.OrderTypeDelivery,
		IsActive:  true,
	}
	f.nextCartID++
	f.carts[code] = cart
	copied := *cart
	return &copied, nil
}

func (f *fakeCartStore) SetOrderType(ctx context.Context, cartID int, orderType string) error {
	for _, cart := range f.carts {
		if cart.ID == cartID {
			cart.OrderType = orderType
		}
	}
	return nil
}

func (f *fakeCartStore) GetDish(ctx context.Context, id int) (*models.Dish, error) {
	dish, ok := f.dishes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *dish
	return &copied, nil
}

func (f *fakeCartStore) GetExtra(ctx context.Context, id int) (*models.ExtraItem, error) {
	extra, ok := f.extras[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *extra
	return &copied, nil
}

func (f *fakeCartStore) GetOrCreateItem(ctx context.Context, cartID, dishID int) (*models.CartItem, error) {
	for _, item := range f.items {
		if item.CartID == cartID && item.DishID == dishID {
			copied := *item
			return &copied, nil
		}
	}
	item := &models.CartItem{
		ID:       f.nextItemID,
		CartID:   cartID,
		DishID:   dishID,
		Quantity: 1,
	}
	f.nextItemID++
	f.items[item.ID] = item
	copied := *item
	return &copied, nil
}

func (f *fakeCartStore) SetItemExtras(ctx context.Context, itemID int, extras []models.CartItemExtra) ([]models.CartItemExtra, error) {
	existing := map[int]int{}
	for _, row := range f.itemExtras[itemID] {
		existing[row.ExtraItemID] = row.ID
	}
	for i := range extras {
		if id, ok := existing[extras[i].ExtraItemID]; ok {
			extras[i].ID = id
			continue
		}
		extras[i].ID = f.nextExtraID
		f.nextExtraID++
	}
	f.itemExtras[itemID] = append([]models.CartItemExtra{}, extras...)
	return extras, nil
}

func (f *fakeCartStore) UpdateItem(ctx context.Context, item *models.CartItem) error {
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeCartStore) GetCartStat(ctx context.Context, code string) (*models.CartStat, error) {
	cart, ok := f.carts[code]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	stat := &models.CartStat{ID: cart.ID, CartCode: cart.CartCode}
	for _, item := range f.items {
		if item.CartID == cart.ID {
			stat.NumberOfItems += item.Quantity
		}
	}
	return stat, nil
}

func (f *fakeCartStore) GetCartByCode(ctx context.Context, code string) (*models.CartSnapshot, error) {
	cart, ok := f.carts[code]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	snapshot := &models.CartSnapshot{
		ID:        cart.ID,
		CartCode:  cart.CartCode,
		OrderType: cart.OrderType,
		Paid:      cart.Paid,
		Items:     []models.CartItemDetail{},
	}
	for _, item := range f.items {
		if item.CartID != cart.ID {
			continue
		}
		snapshot.Items = append(snapshot.Items, models.CartItemDetail{
			ID:         item.ID,
			DishID:     item.DishID,
			CartCode:   cart.CartCode,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			ExtraItems: f.itemExtras[item.ID],
		})
	}
	return snapshot, nil
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedDish(store *fakeCartStore, id int, name, priceStr string) {
	store.dishes[id] = &models.Dish{
		ID: id, Name: name, Price: price(priceStr), IsAvailable: true,
	}
}

func seedExtra(store *fakeCartStore, id int, name, priceStr string) {
	store.extras[id] = &models.ExtraItem{
		ID: id, Name: name, Price: price(priceStr), IsAvailable: true,
	}
}

func intPtr(v int) *int { return &v }

func TestAddItemComputesTotalWithExtras(t *testing.T) {
	store := newFakeCartStore()
	seedDish(store, 1, "Jollof Rice", "100.00")
	seedExtra(store, 7, "Extra Chicken", "1.50")
	svc := NewCartService(store)

	detail, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   1,
		Quantity: intPtr(2),
		ExtraItems: map[string]models.ExtraSelection{
			"7": {Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jollof Rice", detail.DishName)
	assert.Equal(t, 2, detail.Quantity)
	assert.True(t, detail.TotalPrice.Equal(price("203.00")),
		"expected 203.00, got %s", detail.TotalPrice)
	require.Len(t, detail.ExtraItems, 1)
	assert.Equal(t, 7, detail.ExtraItems[0].ExtraItemID)
	assert.Equal(t, 2, detail.ExtraItems[0].Quantity)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	store := newFakeCartStore()
	seedDish(store, 1, "Fried Rice", "25.00")
	svc := NewCartService(store)

	detail, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Quantity)
	assert.True(t, detail.TotalPrice.Equal(price("25.00")))
}

func TestAddItemRejectsInvalidQuantity(t *testing.T) {
	store := newFakeCartStore()
	seedDish(store, 1, "Fried Rice", "25.00")
	svc := NewCartService(store)

	_, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   1,
		Quantity: intPtr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddItemUnknownDish(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)

	_, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   99,
	})
	assert.ErrorIs(t, err, ErrDishNotFound)
}

func TestAddItemSkipsUnresolvedExtras(t *testing.T) {
	store := newFakeCartStore()
	seedDish(store, 1, "Suya Platter", "40.00")
	seedExtra(store, 3, "Extra Sauce", "2.00")
	svc := NewCartService(store)

	detail, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   1,
		Quantity: intPtr(1),
		ExtraItems: map[string]models.ExtraSelection{
			"3":         {Quantity: 1},
			"999":       {Quantity: 5},
			"not-an-id": {Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, detail.ExtraItems, 1)
	assert.Equal(t, 3, detail.ExtraItems[0].ExtraItemID)
	assert.True(t, detail.TotalPrice.Equal(price("42.00")),
		"expected 42.00, got %s", detail.TotalPrice)
}

func TestAddItemClampsExtraQuantity(t *testing.T) {
	store := newFakeCartStore()
	seedDish(store, 1, "Moi Moi", "10.00")
	seedExtra(store, 2, "Boiled Egg", "1.00")
	svc := NewCartService(store)

	detail, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   1,
		ExtraItems: map[string]models.ExtraSelection{
			"2": {Quantity: 0},
		},
	})
	require.NoError(t, err)

	require.Len(t, detail.ExtraItems, 1)
	assert.Equal(t, 1, detail.ExtraItems[0].Quantity)
	assert.True(t, detail.TotalPrice.Equal(price("11.00")))
}

func TestAddItemTwiceUpdatesSameLine(t *testing.T) {
	store := newFakeCartStore()
	seedDish(store, 1, "Pounded Yam", "30.00")
	svc := NewCartService(store)

	first, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   1,
		Quantity: intPtr(1),
	})
	require.NoError(t, err)

	second, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   1,
		Quantity: intPtr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same dish in same cart must reuse the line item")
	assert.Equal(t, 3, second.Quantity)
	assert.True(t, second.TotalPrice.Equal(price("90.00")))

	stat, err := svc.GetCartStat(context.Background(), "cart-abc")
	require.NoError(t, err)
	assert.Equal(t, 3, stat.NumberOfItems)
}

func TestAddItemReplacesExtrasOnUpdate(t *testing.T) {
	store := newFakeCartStore()
	seedDish(store, 1, "Egusi Soup", "20.00")
	seedExtra(store, 5, "Extra Meat", "3.00")
	seedExtra(store, 6, "Extra Fish", "4.00")
	svc := NewCartService(store)

	_, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   1,
		ExtraItems: map[string]models.ExtraSelection{
			"5": {Quantity: 1},
		},
	})
	require.NoError(t, err)

	detail, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   1,
		ExtraItems: map[string]models.ExtraSelection{
			"6": {Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, detail.ExtraItems, 1)
	assert.Equal(t, 6, detail.ExtraItems[0].ExtraItemID)
	assert.True(t, detail.TotalPrice.Equal(price("24.00")))
}

func TestAddItemReturnsStoredExtraRowIDs(t *testing.T) {
	store := newFakeCartStore()
	seedDish(store, 1, "Ofada Rice", "15.00")
	seedExtra(store, 4, "Plantain", "2.50")
	svc := NewCartService(store)

	req := models.AddCartItemRequest{
		CartCode: "cart-abc",
		DishID:   1,
		ExtraItems: map[string]models.ExtraSelection{
			"4": {Quantity: 1},
		},
	}
	detail, err := svc.AddItem(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, detail.ExtraItems, 1)
	assert.NotZero(t, detail.ExtraItems[0].ID)

	snapshot, err := svc.GetCart(context.Background(), "cart-abc")
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	require.Len(t, snapshot.Items[0].ExtraItems, 1)
	assert.Equal(t, detail.ExtraItems[0].ID, snapshot.Items[0].ExtraItems[0].ID,
		"add_item and snapshot must serialize the same extra row id")

	again, err := svc.AddItem(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, again.ExtraItems, 1)
	assert.Equal(t, detail.ExtraItems[0].ID, again.ExtraItems[0].ID,
		"upsert must keep the existing row id")
}

func TestAddItemSetsOrderType(t *testing.T) {
	store := newFakeCartStore()
	seedDish(store, 1, "Meat Pie", "5.00")
	svc := NewCartService(store)

	detail, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode:    "cart-abc",
		DishID:      1,
		OrderOption: models.OrderTypePickup,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderTypePickup, detail.DeliveryOption)
	assert.Equal(t, models.OrderTypePickup, store.carts["cart-abc"].OrderType)
}

func TestAddItemIgnoresUnknownOrderType(t *testing.T) {
	store := newFakeCartStore()
	seedDish(store, 1, "Meat Pie", "5.00")
	svc := NewCartService(store)

	detail, err := svc.AddItem(context.Background(), models.AddCartItemRequest{
		CartCode:    "cart-abc",
		DishID:      1,
		OrderOption: "teleport",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderTypeDelivery, detail.DeliveryOption)
}

func TestGetCartStatUnknownCode(t *testing.T) {
	svc := NewCartService(newFakeCartStore())

	_, err := svc.GetCartStat(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestGetCartUnknownCode(t *testing.T) {
	svc := NewCartService(newFakeCartStore())

	_, err := svc.GetCart(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCartNotFound)
}
