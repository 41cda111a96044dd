package controllers

import (
	"errors"
	"net/http"

	"catering-api/models"
	"catering-api/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{svc: svc}
}

// AddItem godoc
// @Summary Add a dish to a cart
// @Description Add or update a cart line item with optional priced extras; prices are computed server-side
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Add Item Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/add_item/ [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.svc.AddItem(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDishNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Dish not found"})
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "An unexpected error occurred",
				Error:   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Added to cart successfully",
		Data:    item,
	})
}

// GetCartStat godoc
// @Summary Get cart summary
// @Description Get the simplified cart view (id, code, total item count)
// @Tags Cart
// @Produce json
// @Param cart_code query string true "Cart code"
// @Success 200 {object} models.CartStat
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/get_cart_stat/ [get]
func (ctrl *CartController) GetCartStat(c *gin.Context) {
	cartCode := c.Query("cart_code")
	if cartCode == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Cart code not provided"})
		return
	}

	stat, err := ctrl.svc.GetCartStat(c.Request.Context(), cartCode)
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Cart not found"})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stat)
}

// GetCartItem godoc
// @Summary Get full cart
// @Description Get the cart with nested items and their extras
// @Tags Cart
// @Produce json
// @Param cart_code query string true "Cart code"
// @Success 200 {object} models.CartSnapshot
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/get_cart_item/ [get]
func (ctrl *CartController) GetCartItem(c *gin.Context) {
	cartCode := c.Query("cart_code")
	if cartCode == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Cart code not provided"})
		return
	}

	snapshot, err := ctrl.svc.GetCart(c.Request.Context(), cartCode)
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Cart not found"})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
