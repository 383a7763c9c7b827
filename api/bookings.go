package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"manomangal/internal/domain"
	"manomangal/internal/middleware"
	"manomangal/internal/pricing"
	"manomangal/internal/service/booking"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	EventType           string `json:"event_type"`
	EventDate           string `json:"event_date"`
	TimeSlot            string `json:"time_slot"`
	GuestCount          int    `json:"guest_count"`
	CustomerName        string `json:"customer_name"`
	CustomerEmail       string `json:"customer_email"`
	CustomerPhone       string `json:"customer_phone"`
	SpecialRequirements string `json:"special_requirements"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router gin.IRouter, auth gin.HandlerFunc) {
	router.POST("/booking", auth, h.create)
	router.GET("/booking/estimate", h.estimate)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var eventDate time.Time
	if req.EventDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be YYYY-MM-DD"})
			return
		}
		eventDate = parsed
	}

	created, err := h.service.Create(c.Request.Context(), booking.CreateBookingInput{
		UserID:              c.GetString(middleware.ContextUserID),
		EventType:           req.EventType,
		EventDate:           eventDate,
		TimeSlot:            domain.TimeSlot(req.TimeSlot),
		GuestCount:          req.GuestCount,
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg})
		case errors.Is(err, booking.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// estimate powers the live price preview on the booking form with the same
// rule the submission path uses.
func (h *BookingHandler) estimate(c *gin.Context) {
	guestCount, err := strconv.Atoi(c.DefaultQuery("guest_count", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guest_count"})
		return
	}
	slot := domain.TimeSlot(c.Query("time_slot"))

	c.JSON(http.StatusOK, gin.H{
		"time_slot":       slot,
		"guest_count":     guestCount,
		"estimated_price": pricing.Estimate(slot, guestCount),
	})
}
