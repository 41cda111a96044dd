package controllers

import (
	"log"
	"net/http"

	"catering-api/models"
	"catering-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	svc *services.DishService
}

func NewCategoryController(svc *services.DishService) *CategoryController {
	return &CategoryController{svc: svc}
}

// GetAllCategories godoc
// @Summary List categories
// @Description Get all active dish categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories/ [get]
func (ctrl *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.svc.ListCategories(c.Request.Context())
	if err != nil {
		log.Printf("list categories: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}
