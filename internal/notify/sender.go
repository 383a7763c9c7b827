package notify

import (
	"context"
	"log"

	"manomangal/internal/kafka"
)

// Sender logs prepared notification artifacts for a booking event. Actual
// delivery (sending the email, opening the WhatsApp link) stays with the
// venue owner; there is no retry and no delivery guarantee here.
type Sender struct {
	formatter *Formatter
}

func NewSender(formatter *Formatter) *Sender {
	return &Sender{formatter: formatter}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	result := s.formatter.Format(BookingPayload{
		CustomerName:        event.CustomerName,
		CustomerEmail:       event.CustomerEmail,
		CustomerPhone:       event.CustomerPhone,
		EventType:           event.EventType,
		EventDate:           event.EventDate,
		TimeSlot:            event.TimeSlot,
		GuestCount:          event.GuestCount,
		EstimatedPrice:      event.EstimatedPrice,
		SpecialRequirements: event.SpecialRequirements,
	})

	log.Printf("notification ready for booking %s (%s): %s", event.BookingID, event.Type, result.WhatsAppURL)
	return nil
}
