package service

import (
	"testing"
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		rate     domain.Money
		checkin  time.Time
		checkout time.Time
		want     domain.Money
	}{
		{
			name:     "five nights",
			rate:     100000,
			checkin:  date(2025, time.November, 10),
			checkout: date(2025, time.November, 15),
			want:     500000,
		},
		{
			name:     "single night",
			rate:     2550,
			checkin:  date(2025, time.March, 1),
			checkout: date(2025, time.March, 2),
			want:     2550,
		},
		{
			name:     "month boundary",
			rate:     7500,
			checkin:  date(2025, time.January, 30),
			checkout: date(2025, time.February, 2),
			want:     22500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := ComputeTotal(tt.rate, tt.checkin, tt.checkout)

			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestComputeTotal_IgnoresTimeOfDay(t *testing.T) {
	checkin := time.Date(2025, time.June, 1, 15, 0, 0, 0, time.UTC)
	checkout := time.Date(2025, time.June, 3, 11, 0, 0, 0, time.UTC)

	total, err := ComputeTotal(10000, checkin, checkout)

	require.NoError(t, err)
	assert.Equal(t, domain.Money(20000), total)
}

func TestComputeTotal_InvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		checkin  time.Time
		checkout time.Time
	}{
		{
			name:     "checkout equals checkin",
			checkin:  date(2025, time.May, 10),
			checkout: date(2025, time.May, 10),
		},
		{
			name:     "checkout before checkin",
			checkin:  date(2025, time.May, 10),
			checkout: date(2025, time.May, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTotal(10000, tt.checkin, tt.checkout)

			assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		})
	}
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 5, NightsBetween(date(2025, time.November, 10), date(2025, time.November, 15)))
	assert.Equal(t, 0, NightsBetween(date(2025, time.November, 10), date(2025, time.November, 10)))
	assert.Equal(t, -2, NightsBetween(date(2025, time.November, 10), date(2025, time.November, 8)))
}
