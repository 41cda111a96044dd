package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"time"

	"catering-api/models"

	"github.com/jackc/pgx/v5"
)

const (
	featuredCacheKey = "featured_dishes"
	featuredCacheTTL = 5 * time.Minute
	featuredCount    = 3
)

type DishReader interface {
	ListAvailable(ctx context.Context) ([]models.Dish, error)
	FindBySlug(ctx context.Context, categorySlug, slug string) (*models.DishDetail, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type DishService struct {
	repo  DishReader
	cache Cache
}

func NewDishService(repo DishReader, cache Cache) *DishService {
	return &DishService{repo: repo, cache: cache}
}

func (s *DishService) ListAvailable(ctx context.Context) ([]models.Dish, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *DishService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *DishService) GetDishDetail(ctx context.Context, categorySlug, slug string) (*models.DishDetail, error) {
	detail, err := s.repo.FindBySlug(ctx, categorySlug, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return detail, nil
}

// GetFeaturedDishes returns a random sample of 3 available dishes,
// served from cache for 5 minutes. Fewer than 4 available dishes is not
// enough to feature. The cache is a pure optimization: any cache problem
// falls through to the database.
func (s *DishService) GetFeaturedDishes(ctx context.Context) ([]models.Dish, error) {
	if cached, ok := s.cache.Get(ctx, featuredCacheKey); ok {
		var dishes []models.Dish
		if err := json.Unmarshal([]byte(cached), &dishes); err == nil {
			return dishes, nil
		}
		log.Println("Discarding unreadable featured-dish cache entry")
	}

	available, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(available) <= featuredCount {
		return nil, ErrNotEnoughDishes
	}

	rand.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	featured := available[:featuredCount]

	if payload, err := json.Marshal(featured); err == nil {
		s.cache.Set(ctx, featuredCacheKey, string(payload), featuredCacheTTL)
	}
	return featured, nil
}
