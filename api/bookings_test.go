package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"manomangal/internal/domain"
	"manomangal/internal/middleware"
	"manomangal/internal/service/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Create(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func newBookingContext(t *testing.T, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	c.Request = httptest.NewRequest("POST", "/booking", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBookingHandler_Create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newBookingContext(t, createBookingRequest{
		EventType:     "Wedding Ceremony",
		EventDate:     "2026-11-20",
		TimeSlot:      "evening",
		GuestCount:    350,
		CustomerName:  "Asha Patil",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "+91 9876543210",
	})
	c.Set(middleware.ContextUserID, "user-1")

	created := &domain.Booking{
		ID:             "b1",
		UserID:         "user-1",
		EventDate:      time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		TimeSlot:       domain.TimeSlotEvening,
		GuestCount:     350,
		EstimatedPrice: 37500,
		Status:         domain.BookingStatusPending,
	}
	mockService.On("Create", c.Request.Context(), mock.MatchedBy(func(input booking.CreateBookingInput) bool {
		return input.UserID == "user-1" && input.TimeSlot == domain.TimeSlotEvening && input.GuestCount == 350
	})).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(37500), resp.EstimatedPrice)
	assert.Equal(t, domain.BookingStatusPending, resp.Status)
}

func TestBookingHandler_Create_ValidationError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newBookingContext(t, createBookingRequest{TimeSlot: "evening"})
	c.Set(middleware.ContextUserID, "user-1")

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("booking.CreateBookingInput")).
		Return(nil, domain.NewValidationError("Please select an event date"))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please select an event date")
}

func TestBookingHandler_Create_Unauthenticated(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newBookingContext(t, createBookingRequest{TimeSlot: "evening", EventDate: "2026-11-20"})

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("booking.CreateBookingInput")).
		Return(nil, booking.ErrAuthRequired)

	handler.create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingHandler_Create_BadDateFormat(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newBookingContext(t, createBookingRequest{EventDate: "20-11-2026"})
	c.Set(middleware.ContextUserID, "user-1")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingHandler_Estimate(t *testing.T) {
	handler := NewBookingHandler(&MockBookingUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/booking/estimate?time_slot=evening&guest_count=350", nil)

	handler.estimate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "37500")
}
