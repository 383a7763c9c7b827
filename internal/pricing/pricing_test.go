package pricing

import (
	"testing"

	"manomangal/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_BasePrices(t *testing.T) {
	assert.Equal(t, int64(25000), Estimate(domain.TimeSlotMorning, 100))
	assert.Equal(t, int64(35000), Estimate(domain.TimeSlotEvening, 100))
	assert.Equal(t, int64(50000), Estimate(domain.TimeSlotFullDay, 100))
}

func TestEstimate_NoSurchargeAtThreshold(t *testing.T) {
	assert.Equal(t, int64(25000), Estimate(domain.TimeSlotMorning, 300))
}

func TestEstimate_SurchargeAboveThreshold(t *testing.T) {
	// 35000 + (350-300)*50
	assert.Equal(t, int64(37500), Estimate(domain.TimeSlotEvening, 350))
	// one guest over the threshold
	assert.Equal(t, int64(25050), Estimate(domain.TimeSlotMorning, 301))
	// maximum capacity
	assert.Equal(t, int64(75000), Estimate(domain.TimeSlotFullDay, 800))
}

func TestEstimate_UnknownSlot(t *testing.T) {
	assert.Equal(t, int64(0), Estimate("", 500))
	assert.Equal(t, int64(0), Estimate("afternoon", 100))
}
