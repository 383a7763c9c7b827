package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"manomangal/internal/auth"
	"manomangal/internal/domain"
	"manomangal/internal/middleware"
	"manomangal/internal/service/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) Overview(ctx context.Context) (*dashboard.Overview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Overview), args.Error(1)
}

func (m *MockDashboardUseCase) SetBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockDashboardUseCase) SetInquiryStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.ContactInquiry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactInquiry), args.Error(1)
}

func newDashboardRouter(service dashboard.DashboardUseCase, tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewDashboardHandler(service).Register(router, middleware.Auth(tokens), middleware.RequireRole(domain.RoleOwner))
	return router
}

func sampleOverview() *dashboard.Overview {
	return &dashboard.Overview{
		Stats: dashboard.Stats{TotalBookings: 2, PendingBookings: 1, ConfirmedBookings: 1, TotalRevenue: 37500},
		Bookings: []domain.Booking{
			{ID: "b1", Status: domain.BookingStatusConfirmed, EstimatedPrice: 37500},
			{ID: "b2", Status: domain.BookingStatusPending, EstimatedPrice: 50000},
		},
		NewInquiries: []domain.ContactInquiry{{ID: "q1", Status: domain.InquiryStatusNew}},
	}
}

func TestDashboardHandler_Overview_Owner(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	router := newDashboardRouter(mockService, tokens)

	mockService.On("Overview", mock.Anything).Return(sampleOverview(), nil).Once()

	token, _ := tokens.Generate("owner-1", "owner@example.com", domain.RoleOwner)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_revenue":37500`)
	assert.Contains(t, w.Body.String(), `"status_badge":"success"`)
	assert.Contains(t, w.Body.String(), `"status_badge":"warning"`)
}

func TestDashboardHandler_Overview_NonOwnerForbidden(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	router := newDashboardRouter(mockService, tokens)

	token, _ := tokens.Generate("user-1", "user@example.com", domain.RoleCustomer)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertNotCalled(t, "Overview", mock.Anything)
}

func TestDashboardHandler_Overview_NoToken(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	router := newDashboardRouter(mockService, tokens)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardHandler_SetBookingStatus_ReloadsOverview(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	router := newDashboardRouter(mockService, tokens)

	confirmed := &domain.Booking{ID: "b2", Status: domain.BookingStatusConfirmed}
	mockService.On("SetBookingStatus", mock.Anything, "b2", domain.BookingStatusConfirmed).Return(confirmed, nil).Once()
	mockService.On("Overview", mock.Anything).Return(sampleOverview(), nil).Once()

	token, _ := tokens.Generate("owner-1", "owner@example.com", domain.RoleOwner)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/dashboard/bookings/b2/status", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestDashboardHandler_SetBookingStatus_TerminalConflict(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	router := newDashboardRouter(mockService, tokens)

	mockService.On("SetBookingStatus", mock.Anything, "b1", domain.BookingStatusCancelled).
		Return(nil, dashboard.ErrBookingNotPending).Once()

	token, _ := tokens.Generate("owner-1", "owner@example.com", domain.RoleOwner)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/dashboard/bookings/b1/status", strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertNotCalled(t, "Overview", mock.Anything)
}

func TestDashboardHandler_SetInquiryStatus(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	router := newDashboardRouter(mockService, tokens)

	contacted := &domain.ContactInquiry{ID: "q1", Status: domain.InquiryStatusContacted}
	mockService.On("SetInquiryStatus", mock.Anything, "q1", domain.InquiryStatusContacted).Return(contacted, nil).Once()
	mockService.On("Overview", mock.Anything).Return(sampleOverview(), nil).Once()

	token, _ := tokens.Generate("owner-1", "owner@example.com", domain.RoleOwner)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/dashboard/inquiries/q1/status", strings.NewReader(`{"status":"contacted"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
