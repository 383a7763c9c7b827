package repository

import (
	"context"

	"manomangal/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, user_id, event_type, event_date, time_slot, guest_count, customer_name, customer_email, customer_phone, special_requirements, estimated_price, status, created_at`

func (r *PGBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings (id, user_id, event_type, event_date, time_slot, guest_count, customer_name, customer_email, customer_phone, special_requirements, estimated_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at`,
		b.ID, b.UserID, b.EventType, b.EventDate, b.TimeSlot, b.GuestCount, b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.SpecialRequirements, b.EstimatedPrice, b.Status).
		Scan(&b.CreatedAt)
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.EventType, &b.EventDate, &b.TimeSlot, &b.GuestCount, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.SpecialRequirements, &b.EstimatedPrice, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.EventType, &b.EventDate, &b.TimeSlot, &b.GuestCount, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.SpecialRequirements, &b.EstimatedPrice, &b.Status, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateStatus changes the status only. The estimated price is immutable
// history and is never recomputed here.
func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1 WHERE id=$2 RETURNING `+bookingColumns, status, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.EventType, &b.EventDate, &b.TimeSlot, &b.GuestCount, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.SpecialRequirements, &b.EstimatedPrice, &b.Status, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
