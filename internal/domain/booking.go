package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the three booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Badge maps a status to its dashboard presentation. Unrecognized values
// fall back to the pending badge.
func (s BookingStatus) Badge() string {
	switch s {
	case BookingStatusConfirmed:
		return "success"
	case BookingStatusCancelled:
		return "danger"
	default:
		return "warning"
	}
}

type TimeSlot string

const (
	TimeSlotMorning TimeSlot = "morning"
	TimeSlotEvening TimeSlot = "evening"
	TimeSlotFullDay TimeSlot = "fullday"
)

func (t TimeSlot) Valid() bool {
	switch t {
	case TimeSlotMorning, TimeSlotEvening, TimeSlotFullDay:
		return true
	}
	return false
}

type Booking struct {
	ID                  string        `json:"id"`
	UserID              string        `json:"user_id"`
	EventType           string        `json:"event_type"`
	EventDate           time.Time     `json:"event_date"`
	TimeSlot            TimeSlot      `json:"time_slot"`
	GuestCount          int           `json:"guest_count"`
	CustomerName        string        `json:"customer_name"`
	CustomerEmail       string        `json:"customer_email"`
	CustomerPhone       string        `json:"customer_phone"`
	SpecialRequirements string        `json:"special_requirements,omitempty"`
	EstimatedPrice      int64         `json:"estimated_price"`
	Status              BookingStatus `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
}
