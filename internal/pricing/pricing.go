// Package pricing computes the estimated price quoted at booking time.
// The same rule runs on the preview endpoint and on submission so the
// stored price can never drift from what the customer saw.
package pricing

import "manomangal/internal/domain"

const (
	surchargeThreshold = 300
	surchargePerGuest  = 50
)

var basePrice = map[domain.TimeSlot]int64{
	domain.TimeSlotMorning: 25000,
	domain.TimeSlotEvening: 35000,
	domain.TimeSlotFullDay: 50000,
}

// Estimate returns the price for a slot and guest count. An unrecognized
// slot yields 0, meaning no slot has been selected yet.
func Estimate(slot domain.TimeSlot, guestCount int) int64 {
	base, ok := basePrice[slot]
	if !ok {
		return 0
	}
	if guestCount > surchargeThreshold {
		base += int64(guestCount-surchargeThreshold) * surchargePerGuest
	}
	return base
}
