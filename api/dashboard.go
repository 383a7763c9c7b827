package api

import (
	"errors"
	"net/http"

	"manomangal/internal/domain"
	"manomangal/internal/service/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service dashboard.DashboardUseCase
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func NewDashboardHandler(service dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Register(router gin.IRouter, guards ...gin.HandlerFunc) {
	group := router.Group("/dashboard", guards...)
	group.GET("", h.overview)
	group.PATCH("/bookings/:id/status", h.setBookingStatus)
	group.PATCH("/inquiries/:id/status", h.setInquiryStatus)
}

type bookingView struct {
	domain.Booking
	StatusBadge string `json:"status_badge"`
}

type overviewResponse struct {
	Stats        dashboard.Stats         `json:"stats"`
	Bookings     []bookingView           `json:"bookings"`
	NewInquiries []domain.ContactInquiry `json:"new_inquiries"`
}

func (h *DashboardHandler) overview(c *gin.Context) {
	h.renderOverview(c)
}

func (h *DashboardHandler) setBookingStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.service.SetBookingStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status)); err != nil {
		h.renderMutationError(c, err, dashboard.ErrBookingNotPending)
		return
	}

	// no optimistic patch: the mutation is followed by a full re-read
	h.renderOverview(c)
}

func (h *DashboardHandler) setInquiryStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.service.SetInquiryStatus(c.Request.Context(), c.Param("id"), domain.InquiryStatus(req.Status)); err != nil {
		h.renderMutationError(c, err, dashboard.ErrInquiryNotNew)
		return
	}

	h.renderOverview(c)
}

func (h *DashboardHandler) renderOverview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bookings := make([]bookingView, 0, len(overview.Bookings))
	for _, b := range overview.Bookings {
		bookings = append(bookings, bookingView{Booking: b, StatusBadge: b.Status.Badge()})
	}

	c.JSON(http.StatusOK, overviewResponse{
		Stats:        overview.Stats,
		Bookings:     bookings,
		NewInquiries: overview.NewInquiries,
	})
}

func (h *DashboardHandler) renderMutationError(c *gin.Context, err, terminalErr error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg})
	case errors.Is(err, terminalErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
