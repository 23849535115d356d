package service

import (
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
)

// ComputeTotal prices a stay at nightlyRate per night. Nights are whole
// calendar days between check-in and check-out, so a back-to-back turnover
// day is never billed twice. Pure: no rounding beyond minor units, no state.
func ComputeTotal(nightlyRate domain.Money, checkin, checkout time.Time) (domain.Money, error) {
	nights := NightsBetween(checkin, checkout)
	if nights <= 0 {
		return 0, domain.ErrInvalidDateRange
	}
	return nightlyRate.Times(nights), nil
}

// NightsBetween counts whole days between the two dates, ignoring any
// time-of-day component.
func NightsBetween(checkin, checkout time.Time) int {
	return int(dayOf(checkout).Sub(dayOf(checkin)) / (24 * time.Hour))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
