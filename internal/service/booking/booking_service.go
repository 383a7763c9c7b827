package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"manomangal/internal/domain"
	"manomangal/internal/kafka"
	"manomangal/internal/pricing"
	"manomangal/internal/repository"

	"github.com/google/uuid"
)

// ErrAuthRequired means the submission had no authenticated requester.
// Handlers answer 401 and the client redirects to the login page.
var ErrAuthRequired = errors.New("authentication required")

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	UserID              string
	EventType           string
	EventDate           time.Time
	TimeSlot            domain.TimeSlot
	GuestCount          int
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	SpecialRequirements string
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, bookingTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create validates the submission, recomputes the price server-side and
// persists the booking as pending. Any price the client previewed is
// ignored; the stored amount always comes from the pricing rule.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.UserID == "" {
		return nil, ErrAuthRequired
	}
	if err := validate(input); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:                  uuid.NewString(),
		UserID:              input.UserID,
		EventType:           input.EventType,
		EventDate:           input.EventDate,
		TimeSlot:            input.TimeSlot,
		GuestCount:          input.GuestCount,
		CustomerName:        input.CustomerName,
		CustomerEmail:       input.CustomerEmail,
		CustomerPhone:       input.CustomerPhone,
		SpecialRequirements: input.SpecialRequirements,
		EstimatedPrice:      pricing.Estimate(input.TimeSlot, input.GuestCount),
		Status:              domain.BookingStatusPending,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("failed to publish booking_created event for booking %s: %v", booking.ID, err)
	}
	return booking, nil
}

func validate(input CreateBookingInput) error {
	if input.EventDate.IsZero() {
		return domain.NewValidationError("Please select an event date")
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if input.EventDate.Before(today) {
		return domain.NewValidationError("Event date cannot be in the past")
	}
	if !input.TimeSlot.Valid() {
		return domain.NewValidationError("Please select a time slot")
	}
	if input.GuestCount < 1 || input.GuestCount > 800 {
		return domain.NewValidationError("Guest count must be between 1 and 800")
	}
	if input.EventType == "" {
		return domain.NewValidationError("Please select an event type")
	}
	if input.CustomerName == "" || input.CustomerEmail == "" || input.CustomerPhone == "" {
		return domain.NewValidationError("Name, email and phone are required")
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:                eventType,
		BookingID:           booking.ID,
		CustomerName:        booking.CustomerName,
		CustomerEmail:       booking.CustomerEmail,
		CustomerPhone:       booking.CustomerPhone,
		EventType:           booking.EventType,
		EventDate:           booking.EventDate.Format("2006-01-02"),
		TimeSlot:            string(booking.TimeSlot),
		GuestCount:          booking.GuestCount,
		EstimatedPrice:      booking.EstimatedPrice,
		SpecialRequirements: booking.SpecialRequirements,
		Status:              string(booking.Status),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
