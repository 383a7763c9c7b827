package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePayload() BookingPayload {
	return BookingPayload{
		CustomerName:   "Asha Patil",
		CustomerEmail:  "asha@example.com",
		CustomerPhone:  "+91 9876543210",
		EventType:      "Wedding Ceremony",
		EventDate:      "2026-11-20",
		TimeSlot:       "evening",
		GuestCount:     350,
		EstimatedPrice: 37500,
	}
}

func TestFormatter_Format(t *testing.T) {
	f := NewFormatter("919359525834")
	result := f.Format(samplePayload())

	assert.True(t, result.Success)
	assert.Equal(t, "Notification prepared successfully", result.Message)
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/919359525834?text="))
	// the deep link must encode the summary text
	assert.Contains(t, result.WhatsAppURL, "Asha+Patil")
	assert.Contains(t, result.EmailPreview, "Wedding Ceremony")
	assert.Contains(t, result.EmailPreview, "₹37,500")
}

func TestFormatter_SpecialRequirementsOptional(t *testing.T) {
	f := NewFormatter("919359525834")

	without := f.Format(samplePayload())
	assert.NotContains(t, without.EmailPreview, "Special Requirements")

	p := samplePayload()
	p.SpecialRequirements = "Vegetarian catering only"
	with := f.Format(p)
	assert.Contains(t, with.EmailPreview, "Vegetarian catering only")
	assert.Contains(t, with.WhatsAppURL, "Vegetarian")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "500", FormatAmount(500))
	assert.Equal(t, "37,500", FormatAmount(37500))
	assert.Equal(t, "1,250,000", FormatAmount(1250000))
}
