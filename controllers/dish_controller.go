package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"catering-api/config"
	"catering-api/libs"
	"catering-api/models"
	"catering-api/repositories"
	"catering-api/services"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type DishController struct {
	svc  *services.DishService
	repo *repositories.DishRepository
}

func NewDishController(svc *services.DishService, repo *repositories.DishRepository) *DishController {
	return &DishController{svc: svc, repo: repo}
}

// GetDishes godoc
// @Summary List dishes
// @Description Get all available dishes
// @Tags Dishes
// @Produce json
// @Success 200 {object} models.Response
// @Router /dishes/ [get]
func (ctrl *DishController) GetDishes(c *gin.Context) {
	dishes, err := ctrl.svc.ListAvailable(c.Request.Context())
	if err != nil {
		log.Printf("list dishes: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to fetch dishes"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Dishes retrieved successfully",
		Data:    dishes,
	})
}

// GetFeaturedDishes godoc
// @Summary Featured dishes
// @Description Get a random selection of available dishes, cached briefly
// @Tags Dishes
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /dishes/featured/ [get]
func (ctrl *DishController) GetFeaturedDishes(c *gin.Context) {
	dishes, err := ctrl.svc.GetFeaturedDishes(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotEnoughDishes) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Not enough dishes"})
			return
		}
		log.Printf("featured dishes: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to fetch featured dishes"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Featured dishes retrieved successfully",
		Data:    dishes,
	})
}

// GetDishDetail godoc
// @Summary Dish detail
// @Description Get one dish by category slug and dish slug, with its allowed extras
// @Tags Dishes
// @Produce json
// @Param category_slug path string true "Category slug"
// @Param slug path string true "Dish slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /dishes/{category_slug}/{slug}/ [get]
func (ctrl *DishController) GetDishDetail(c *gin.Context) {
	categorySlug := c.Param("category_slug")
	dishSlug := c.Param("slug")

	detail, err := ctrl.svc.GetDishDetail(c.Request.Context(), categorySlug, dishSlug)
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Dish not found"})
			return
		}
		log.Printf("dish detail: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to fetch dish"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Dish retrieved successfully",
		Data:    detail,
	})
}

// CreateDish godoc
// @Summary Create dish
// @Description Create a new dish with an optional image (admin only)
// @Tags Dishes
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Dish name"
// @Param description formData string true "Description"
// @Param price formData string true "Price"
// @Param category_id formData int true "Category ID"
// @Param is_available formData bool false "Availability"
// @Param allowed_extras formData []int false "Allowed extra category IDs"
// @Param image formData file false "Dish image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/dishes/ [post]
func (ctrl *DishController) CreateDish(c *gin.Context) {
	var req models.CreateDishRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid price"})
		return
	}

	dish := models.Dish{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Price:       price,
		CategoryID:  req.CategoryID,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		dish.IsAvailable = *req.IsAvailable
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := libs.UploadDishImage(c.Request.Context(), c, file, config.AppConfig.UploadDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Image upload failed", Error: err.Error()})
			return
		}
		dish.ImageURL = url
	}

	if err := ctrl.repo.Create(c.Request.Context(), &dish, req.AllowedExtraIDs); err != nil {
		log.Printf("create dish: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Failed to create dish", Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Dish created successfully",
		Data:    dish,
	})
}

// UpdateDish godoc
// @Summary Update dish
// @Description Update an existing dish (admin only)
// @Tags Dishes
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Dish ID"
// @Param name formData string false "Dish name"
// @Param description formData string false "Description"
// @Param price formData string false "Price"
// @Param category_id formData int false "Category ID"
// @Param is_available formData bool false "Availability"
// @Param allowed_extras formData []int false "Allowed extra category IDs"
// @Param image formData file false "Dish image"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/dishes/{id}/ [patch]
func (ctrl *DishController) UpdateDish(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid dish ID"})
		return
	}

	var req models.UpdateDishRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	dish, err := ctrl.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Dish not found"})
			return
		}
		log.Printf("find dish %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to fetch dish"})
		return
	}

	if req.Name != "" {
		dish.Name = req.Name
		dish.Slug = slug.Make(req.Name)
	}
	if req.Description != "" {
		dish.Description = req.Description
	}
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid price"})
			return
		}
		dish.Price = price
	}
	if req.CategoryID != 0 {
		dish.CategoryID = req.CategoryID
	}
	if req.IsAvailable != nil {
		dish.IsAvailable = *req.IsAvailable
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := libs.UploadDishImage(c.Request.Context(), c, file, config.AppConfig.UploadDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Image upload failed", Error: err.Error()})
			return
		}
		if delErr := libs.DeleteFromCloudinary(c.Request.Context(), dish.ImageURL, "dishes"); delErr != nil {
			log.Printf("delete old dish image: %v", delErr)
		}
		dish.ImageURL = url
	}

	if err := ctrl.repo.Update(c.Request.Context(), dish, req.AllowedExtraIDs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Dish not found"})
			return
		}
		log.Printf("update dish %d: %v", id, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Failed to update dish", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Dish updated successfully",
		Data:    dish,
	})
}

// DeleteDish godoc
// @Summary Delete dish
// @Description Delete a dish (admin only)
// @Tags Dishes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Dish ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/dishes/{id}/ [delete]
func (ctrl *DishController) DeleteDish(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid dish ID"})
		return
	}

	dish, err := ctrl.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Dish not found"})
			return
		}
		log.Printf("find dish %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to fetch dish"})
		return
	}

	if err := ctrl.repo.Delete(c.Request.Context(), id); err != nil {
		log.Printf("delete dish %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to delete dish"})
		return
	}

	if delErr := libs.DeleteFromCloudinary(c.Request.Context(), dish.ImageURL, "dishes"); delErr != nil {
		log.Printf("delete dish image: %v", delErr)
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Dish deleted successfully"})
}
