package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	created []models.Booking
}

func (f *fakeBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = len(f.created) + 1
	booking.DateSubmitted = time.Now()
	booking.IsPending = true
	f.created = append(f.created, *booking)
	return nil
}

func newBookingTestRouter(store *fakeBookingStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewBookingController(store)

	router := gin.New()
	router.POST("/bookings/create/", ctrl.CreateBooking)
	router.GET("/bookings/get-booking-events/", ctrl.GetBookingChoices)
	return router
}

func validBookingBody() string {
	return `{
		"full_name": "Ada Obi",
		"email": "ada@example.com",
		"phone_number": "08012345678",
		"event_type": "wedding",
		"event_date": "2026-10-15",
		"number_of_guests": "100-200",
		"venue_location": "12 Marina Road, Lagos"
	}`
}

func TestCreateBookingEndpoint(t *testing.T) {
	store := &fakeBookingStore{}
	router := newBookingTestRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/bookings/create/", strings.NewReader(validBookingBody()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, store.created, 1)
	assert.Equal(t, "wedding", store.created[0].EventType)
	assert.True(t, store.created[0].IsPending)
	assert.Nil(t, store.created[0].AccountID)
}

func TestCreateBookingRejectsUnknownEventType(t *testing.T) {
	router := newBookingTestRouter(&fakeBookingStore{})

	body := strings.Replace(validBookingBody(), "wedding", "barbecue", 1)
	req := httptest.NewRequest(http.MethodPost, "/bookings/create/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	router := newBookingTestRouter(&fakeBookingStore{})

	body := strings.Replace(validBookingBody(), "2026-10-15", "15/10/2026", 1)
	req := httptest.NewRequest(http.MethodPost, "/bookings/create/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingChoicesEndpoint(t *testing.T) {
	router := newBookingTestRouter(&fakeBookingStore{})

	req := httptest.NewRequest(http.MethodGet, "/bookings/get-booking-events/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			EventTypes   []map[string]string `json:"event_types"`
			GuestChoices []map[string]string `json:"guest_choices"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.EventTypes, len(models.BookingEventTypes))
	assert.Len(t, resp.Data.GuestChoices, len(models.BookingGuestChoices))
	assert.Equal(t, "wedding", resp.Data.EventTypes[0]["value"])
}
