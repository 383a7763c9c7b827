package dashboard

import (
	"context"
	"errors"

	"manomangal/internal/domain"
	"manomangal/internal/repository"
)

var (
	ErrBookingNotPending = errors.New("booking is not pending")
	ErrInquiryNotNew     = errors.New("inquiry is not new")
)

type DashboardUseCase interface {
	Overview(ctx context.Context) (*Overview, error)
	SetBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	SetInquiryStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.ContactInquiry, error)
}

type Stats struct {
	TotalBookings     int   `json:"total_bookings"`
	PendingBookings   int   `json:"pending_bookings"`
	ConfirmedBookings int   `json:"confirmed_bookings"`
	TotalRevenue      int64 `json:"total_revenue"`
}

type Overview struct {
	Stats        Stats                   `json:"stats"`
	Bookings     []domain.Booking        `json:"bookings"`
	NewInquiries []domain.ContactInquiry `json:"new_inquiries"`
}

type DashboardService struct {
	bookings  repository.BookingRepository
	inquiries repository.InquiryRepository
}

func NewDashboardService(bookings repository.BookingRepository, inquiries repository.InquiryRepository) *DashboardService {
	return &DashboardService{bookings: bookings, inquiries: inquiries}
}

// Overview fetches all bookings newest-first plus the unhandled inquiries
// and aggregates the counters in memory. At this venue's volume a full
// fetch per render is fine; revisit with server-side aggregates if the
// table ever grows past a few thousand rows.
func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	inquiries, err := s.inquiries.ListByStatus(ctx, domain.InquiryStatusNew)
	if err != nil {
		return nil, err
	}

	stats := Stats{TotalBookings: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingStatusPending:
			stats.PendingBookings++
		case domain.BookingStatusConfirmed:
			stats.ConfirmedBookings++
			// only confirmed bookings count toward revenue
			stats.TotalRevenue += b.EstimatedPrice
		}
	}

	return &Overview{Stats: stats, Bookings: bookings, NewInquiries: inquiries}, nil
}

// SetBookingStatus moves a pending booking to confirmed or cancelled.
// Both target states are terminal.
func (s *DashboardService) SetBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if status != domain.BookingStatusConfirmed && status != domain.BookingStatusCancelled {
		return nil, domain.NewValidationError("status must be confirmed or cancelled")
	}

	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.BookingStatusPending {
		return nil, ErrBookingNotPending
	}

	return s.bookings.UpdateStatus(ctx, id, status)
}

// SetInquiryStatus marks a new inquiry as contacted.
func (s *DashboardService) SetInquiryStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.ContactInquiry, error) {
	if status != domain.InquiryStatusContacted {
		return nil, domain.NewValidationError("status must be contacted")
	}

	current, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.InquiryStatusNew {
		return nil, ErrInquiryNotNew
	}

	return s.inquiries.UpdateStatus(ctx, id, status)
}

var _ DashboardUseCase = (*DashboardService)(nil)
