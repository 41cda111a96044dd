package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"catering-api/models"

	"github.com/gin-gonic/gin"
)

// BookingStore is the persistence surface the booking controller needs.
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
}

type BookingController struct {
	store BookingStore
}

func NewBookingController(store BookingStore) *BookingController {
	return &BookingController{store: store}
}

// CreateBooking godoc
// @Summary Create booking
// @Description Submit a catering booking request; login is optional
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body models.CreateBookingRequest true "Booking Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /bookings/create/ [post]
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid event date"})
		return
	}

	booking := models.Booking{
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		EventType:       req.EventType,
		EventDate:       eventDate,
		NumberOfGuests:  req.NumberOfGuests,
		VenueLocation:   req.VenueLocation,
		SpecialRequests: req.SpecialRequests,
		AdditionalInfo:  req.AdditionalInfo,
	}

	// Attach the account when a valid access token was presented.
	if id, ok := c.Get("account_id"); ok {
		if accountID, ok := id.(int); ok {
			booking.AccountID = &accountID
		}
	}

	if err := ctrl.store.Create(c.Request.Context(), &booking); err != nil {
		log.Printf("create booking: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Booking request submitted successfully",
		Data:    booking,
	})
}

// GetBookingChoices godoc
// @Summary Booking form choices
// @Description Get the accepted event types and guest count ranges
// @Tags Bookings
// @Produce json
// @Success 200 {object} models.Response
// @Router /bookings/get-booking-events/ [get]
func (ctrl *BookingController) GetBookingChoices(c *gin.Context) {
	events := make([]gin.H, 0, len(models.BookingEventTypes))
	for _, pair := range models.BookingEventTypes {
		events = append(events, gin.H{"value": pair[0], "label": pair[1]})
	}
	guests := make([]gin.H, 0, len(models.BookingGuestChoices))
	for _, pair := range models.BookingGuestChoices {
		guests = append(guests, gin.H{"value": pair[0], "label": pair[1]})
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Booking choices retrieved successfully",
		Data: gin.H{
			"event_types":   events,
			"guest_choices": guests,
		},
	})
}
