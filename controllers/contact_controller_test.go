package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactStore struct {
	created []models.Contact
}

func (f *fakeContactStore) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = len(f.created) + 1
	f.created = append(f.created, *contact)
	return nil
}

func TestCreateContactEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &fakeContactStore{}
	router := gin.New()
	router.POST("/contact/", NewContactController(store).CreateContact)

	body := `{
		"name": "Ada Obi",
		"email": "ada@example.com",
		"phone_number": "08012345678",
		"subject": "Quote request",
		"message": "Do you cater for events outside Lagos?"
	}`
	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, store.created, 1)
	assert.Equal(t, "Quote request", store.created[0].Subject)
}

func TestCreateContactRequiresMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/contact/", NewContactController(&fakeContactStore{}).CreateContact)

	body := `{"name":"Ada Obi","email":"ada@example.com","phone_number":"08012345678"}`
	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
