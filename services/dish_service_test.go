package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"catering-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDishReader struct {
	dishes     []models.Dish
	categories []models.Category
	details    map[string]*models.DishDetail
	listCalls  int
}

func (f *fakeDishReader) ListAvailable(ctx context.Context) ([]models.Dish, error) {
	f.listCalls++
	return append([]models.Dish{}, f.dishes...), nil
}

func (f *fakeDishReader) FindBySlug(ctx context.Context, categorySlug, slug string) (*models.DishDetail, error) {
	detail, ok := f.details[categorySlug+"/"+slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return detail, nil
}

func (f *fakeDishReader) ListCategories(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category{}, f.categories...), nil
}

type memoryCache struct {
	entries map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]string{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *memoryCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	c.entries[key] = value
}

func sampleDishes(n int) []models.Dish {
	dishes := make([]models.Dish, 0, n)
	for i := 1; i <= n; i++ {
		dishes = append(dishes, models.Dish{
			ID:          i,
			Name:        fmt.Sprintf("Dish %d", i),
			Slug:        fmt.Sprintf("dish-%d", i),
			Price:       decimal.NewFromInt(int64(10 * i)),
			IsAvailable: true,
		})
	}
	return dishes
}

func TestGetFeaturedDishesReturnsThree(t *testing.T) {
	reader := &fakeDishReader{dishes: sampleDishes(6)}
	svc := NewDishService(reader, newMemoryCache())

	featured, err := svc.GetFeaturedDishes(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 3)
}

func TestGetFeaturedDishesNotEnough(t *testing.T) {
	reader := &fakeDishReader{dishes: sampleDishes(3)}
	svc := NewDishService(reader, newMemoryCache())

	_, err := svc.GetFeaturedDishes(context.Background())
	assert.ErrorIs(t, err, ErrNotEnoughDishes)
}

func TestGetFeaturedDishesUsesCache(t *testing.T) {
	reader := &fakeDishReader{dishes: sampleDishes(6)}
	svc := NewDishService(reader, newMemoryCache())

	first, err := svc.GetFeaturedDishes(context.Background())
	require.NoError(t, err)

	second, err := svc.GetFeaturedDishes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, reader.listCalls, "second call must be served from cache")
	assert.Equal(t, first, second)
}

func TestGetFeaturedDishesRecoversFromBadCache(t *testing.T) {
	reader := &fakeDishReader{dishes: sampleDishes(6)}
	cache := newMemoryCache()
	cache.entries["featured_dishes"] = "{not json"
	svc := NewDishService(reader, cache)

	featured, err := svc.GetFeaturedDishes(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 3)
}

func TestGetDishDetailNotFound(t *testing.T) {
	reader := &fakeDishReader{details: map[string]*models.DishDetail{}}
	svc := NewDishService(reader, newMemoryCache())

	_, err := svc.GetDishDetail(context.Background(), "soups", "missing")
	assert.ErrorIs(t, err, ErrDishNotFound)
}

func TestGetDishDetail(t *testing.T) {
	detail := &models.DishDetail{
		Dish:         models.Dish{ID: 1, Name: "Egusi Soup", Slug: "egusi-soup"},
		CategoryName: "Soups",
		CategorySlug: "soups",
	}
	reader := &fakeDishReader{details: map[string]*models.DishDetail{"soups/egusi-soup": detail}}
	svc := NewDishService(reader, newMemoryCache())

	got, err := svc.GetDishDetail(context.Background(), "soups", "egusi-soup")
	require.NoError(t, err)
	assert.Equal(t, "Egusi Soup", got.Name)
	assert.Equal(t, "soups", got.CategorySlug)
}
