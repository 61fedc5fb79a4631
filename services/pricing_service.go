package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/samirrathod1410/playarena-gameon-hub/models"
)

// Peak hours run 17:00 (inclusive) to 22:00 (exclusive).
const (
	peakHourStart = 17
	peakHourEnd   = 22
)

var (
	multiplierOne     = decimal.NewFromInt(1)
	peakMultiplier    = decimal.NewFromInt(2)
	weekendMultiplier = decimal.RequireFromString("1.25")
)

// CalculatePrice computes the chargeable amount for a slot. Peak and weekend
// multipliers are independent and multiplicative. The total is rounded
// half-up to the nearest whole rupee (amounts are never negative, so
// decimal's half-away-from-zero rounding is exactly half-up here). The
// function is pure; identical inputs always produce the identical breakdown.
func CalculatePrice(basePrice int64, slotStart string, date time.Time) (models.PriceBreakdown, error) {
	startMin, err := ParseClock(slotStart)
	if err != nil {
		return models.PriceBreakdown{}, err
	}
	hour := startMin / 60

	peak := multiplierOne
	if hour >= peakHourStart && hour < peakHourEnd {
		peak = peakMultiplier
	}

	weekend := multiplierOne
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		weekend = weekendMultiplier
	}

	total := decimal.NewFromInt(basePrice).Mul(peak).Mul(weekend).Round(0)

	return models.PriceBreakdown{
		Base:              basePrice,
		PeakMultiplier:    peak.InexactFloat64(),
		WeekendMultiplier: weekend.InexactFloat64(),
		Total:             total.IntPart(),
	}, nil
}
