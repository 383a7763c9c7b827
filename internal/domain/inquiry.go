package domain

import "time"

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
)

func (s InquiryStatus) Valid() bool {
	return s == InquiryStatusNew || s == InquiryStatusContacted
}

// ContactInquiry is a contact-form submission, distinct from a booking.
type ContactInquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
