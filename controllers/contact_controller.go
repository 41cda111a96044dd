package controllers

import (
	"context"
	"log"
	"net/http"

	"catering-api/models"

	"github.com/gin-gonic/gin"
)

type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
}

type ContactController struct {
	store ContactStore
}

func NewContactController(store ContactStore) *ContactController {
	return &ContactController{store: store}
}

// CreateContact godoc
// @Summary Send contact message
// @Description Submit a message through the contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact message"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /contact/ [post]
func (ctrl *ContactController) CreateContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	contact := models.Contact{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Subject:     req.Subject,
		Message:     req.Message,
	}
	if err := ctrl.store.Create(c.Request.Context(), &contact); err != nil {
		log.Printf("create contact: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Message sent successfully",
		Data:    contact,
	})
}
