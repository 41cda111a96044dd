package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"catering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type ReviewStore interface {
	ListByDish(ctx context.Context, dishID int) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
}

// DishResolver turns a dish slug into its ID so reviews can be
// addressed by slug on the public API.
type DishResolver interface {
	FindDishIDBySlug(ctx context.Context, slug string) (int, error)
}

type ReviewController struct {
	store  ReviewStore
	dishes DishResolver
}

func NewReviewController(store ReviewStore, dishes DishResolver) *ReviewController {
	return &ReviewController{store: store, dishes: dishes}
}

// GetDishReviews godoc
// @Summary List dish reviews
// @Description Get all reviews for a dish, newest first
// @Tags Reviews
// @Produce json
// @Param slug path string true "Dish slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /reviews/{slug}/ [get]
func (ctrl *ReviewController) GetDishReviews(c *gin.Context) {
	dishID, err := ctrl.dishes.FindDishIDBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Dish not found"})
			return
		}
		log.Printf("resolve dish slug: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to fetch reviews"})
		return
	}

	reviews, err := ctrl.store.ListByDish(c.Request.Context(), dishID)
	if err != nil {
		log.Printf("list reviews: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Reviews retrieved successfully",
		Data:    reviews,
	})
}

// CreateDishReview godoc
// @Summary Create review
// @Description Add a review for a dish; requires login
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param slug path string true "Dish slug"
// @Param request body models.CreateReviewRequest true "Review"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /reviews/{slug}/add/ [post]
func (ctrl *ReviewController) CreateDishReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	dishID, err := ctrl.dishes.FindDishIDBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Dish not found"})
			return
		}
		log.Printf("resolve dish slug: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create review"})
		return
	}

	accountIDValue, ok := c.Get("account_id")
	accountID, isInt := accountIDValue.(int)
	if !ok || !isInt {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Unauthorized"})
		return
	}

	review := models.Review{
		DishID:    dishID,
		AccountID: accountID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := ctrl.store.Create(c.Request.Context(), &review); err != nil {
		log.Printf("create review: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Review added successfully",
		Data:    review,
	})
}
