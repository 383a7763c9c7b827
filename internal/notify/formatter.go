// Package notify prepares booking notification artifacts. It formats a
// WhatsApp summary with a wa.me deep link and an HTML email preview; it
// never delivers anything itself.
package notify

import (
	"fmt"
	"net/url"
	"strings"
)

// BookingPayload carries the booking fields a notification is built from.
// Field names match the bookings table columns.
type BookingPayload struct {
	CustomerName        string `json:"customer_name"`
	CustomerEmail       string `json:"customer_email"`
	CustomerPhone       string `json:"customer_phone"`
	EventType           string `json:"event_type"`
	EventDate           string `json:"event_date"`
	TimeSlot            string `json:"time_slot"`
	GuestCount          int    `json:"guest_count"`
	EstimatedPrice      int64  `json:"estimated_price"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
}

// Result is returned to the caller, which is responsible for dispatch.
type Result struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	WhatsAppURL  string `json:"whatsappUrl"`
	EmailPreview string `json:"emailPreview"`
}

type Formatter struct {
	ownerWhatsApp string
}

func NewFormatter(ownerWhatsApp string) *Formatter {
	return &Formatter{ownerWhatsApp: ownerWhatsApp}
}

func (f *Formatter) Format(b BookingPayload) Result {
	text := f.whatsAppText(b)
	return Result{
		Success:      true,
		Message:      "Notification prepared successfully",
		WhatsAppURL:  fmt.Sprintf("https://wa.me/%s?text=%s", f.ownerWhatsApp, url.QueryEscape(text)),
		EmailPreview: f.emailHTML(b),
	}
}

func (f *Formatter) whatsAppText(b BookingPayload) string {
	var sb strings.Builder
	sb.WriteString("🎉 *New Booking Request* 🎉\n\n")
	sb.WriteString("📋 *Customer Details:*\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "Email: %s\n", b.CustomerEmail)
	fmt.Fprintf(&sb, "Phone: %s\n\n", b.CustomerPhone)
	sb.WriteString("📅 *Event Details:*\n")
	fmt.Fprintf(&sb, "Type: %s\n", b.EventType)
	fmt.Fprintf(&sb, "Date: %s\n", b.EventDate)
	fmt.Fprintf(&sb, "Time: %s\n", b.TimeSlot)
	fmt.Fprintf(&sb, "Guests: %d\n\n", b.GuestCount)
	fmt.Fprintf(&sb, "💰 *Estimated Price:* ₹%s\n", FormatAmount(b.EstimatedPrice))
	if b.SpecialRequirements != "" {
		fmt.Fprintf(&sb, "\n📝 *Special Requirements:*\n%s\n", b.SpecialRequirements)
	}
	sb.WriteString("\nPlease contact the customer to confirm the booking.")
	return sb.String()
}

func (f *Formatter) emailHTML(b BookingPayload) string {
	requirements := ""
	if b.SpecialRequirements != "" {
		requirements = fmt.Sprintf(`
      <div class="section">
        <h3>Special Requirements</h3>
        <p>%s</p>
      </div>`, b.SpecialRequirements)
	}

	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h2 style="color: #d42f48;">New Booking Request</h2>
      <div class="section">
        <h3>Customer Details</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
      </div>
      <div class="section">
        <h3>Event Details</h3>
        <p><strong>Event Type:</strong> %s</p>
        <p><strong>Date:</strong> %s</p>
        <p><strong>Time Slot:</strong> %s</p>
        <p><strong>Guest Count:</strong> %d</p>
      </div>
      <div class="section">
        <h3>Estimated Price</h3>
        <p style="font-size: 24px; font-weight: bold; color: #166534;">₹%s</p>
      </div>%s
      <p style="color: #666; font-size: 14px;">
        Please contact the customer to confirm the booking and finalize the details.
      </p>
    </div>
  </body>
</html>`,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.EventType, b.EventDate, b.TimeSlot, b.GuestCount,
		FormatAmount(b.EstimatedPrice), requirements)
}

// FormatAmount renders a whole-unit amount with thousands separators,
// e.g. 37500 -> "37,500".
func FormatAmount(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	neg := false
	if strings.HasPrefix(digits, "-") {
		neg = true
		digits = digits[1:]
	}

	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
