package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"manomangal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		UserID:        "user-1",
		EventType:     "Wedding Ceremony",
		EventDate:     time.Now().UTC().AddDate(0, 1, 0),
		TimeSlot:      domain.TimeSlotEvening,
		GuestCount:    350,
		CustomerName:  "Asha Patil",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "+91 9876543210",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo, mockProducer, "booking_events", WithNotificationsTopic("booking_notifications"))

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "booking_events", mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "booking_notifications", mock.Anything, mock.Anything).Return(nil).Once()

	booking, err := service.Create(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	// evening base 35000 plus 50 guests over the threshold at 50 each
	assert.Equal(t, int64(37500), booking.EstimatedPrice)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_Create_Unauthenticated(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo, nil, "")

	input := validInput()
	input.UserID = ""

	_, err := service.Create(context.Background(), input)

	assert.ErrorIs(t, err, ErrAuthRequired)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Create_MissingDate(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo, nil, "")

	input := validInput()
	input.EventDate = time.Time{}

	_, err := service.Create(context.Background(), input)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please select an event date", vErr.Msg)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Create_PastDate(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo, nil, "")

	input := validInput()
	input.EventDate = time.Now().UTC().AddDate(0, 0, -2)

	_, err := service.Create(context.Background(), input)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Create_GuestCountBounds(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo, nil, "")

	for _, count := range []int{0, -5, 801} {
		input := validInput()
		input.GuestCount = count

		_, err := service.Create(context.Background(), input)

		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr, "guest count %d should be rejected", count)
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Create_RepoErrorSurfaced(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo, nil, "")

	ctx := context.Background()
	dbErr := errors.New(`duplicate key value violates unique constraint "bookings_pkey"`)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(dbErr).Once()

	_, err := service.Create(ctx, validInput())

	// datastore errors reach the caller verbatim
	assert.Equal(t, dbErr, err)
}

func TestBookingService_Create_PublishFailureDoesNotFailBooking(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo, mockProducer, "booking_events")

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "booking_events", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	booking, err := service.Create(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}
