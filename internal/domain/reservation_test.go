package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{name: "pending to confirmed", from: ReservationStatusPending, to: ReservationStatusConfirmed, want: true},
		{name: "pending to cancelled", from: ReservationStatusPending, to: ReservationStatusCancelled, want: true},
		{name: "pending to completed", from: ReservationStatusPending, to: ReservationStatusCompleted, want: false},
		{name: "confirmed to completed", from: ReservationStatusConfirmed, to: ReservationStatusCompleted, want: true},
		{name: "confirmed to cancelled", from: ReservationStatusConfirmed, to: ReservationStatusCancelled, want: true},
		{name: "confirmed to pending", from: ReservationStatusConfirmed, to: ReservationStatusPending, want: false},
		{name: "cancelled is terminal", from: ReservationStatusCancelled, to: ReservationStatusConfirmed, want: false},
		{name: "completed is terminal", from: ReservationStatusCompleted, to: ReservationStatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRangesOverlap(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.November, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name                 string
		aIn, aOut, bIn, bOut int
		want                 bool
	}{
		{name: "identical ranges", aIn: 10, aOut: 15, bIn: 10, bOut: 15, want: true},
		{name: "partial overlap at start", aIn: 10, aOut: 15, bIn: 8, bOut: 12, want: true},
		{name: "partial overlap at end", aIn: 10, aOut: 15, bIn: 13, bOut: 18, want: true},
		{name: "nested range", aIn: 10, aOut: 15, bIn: 11, bOut: 13, want: true},
		{name: "enclosing range", aIn: 10, aOut: 15, bIn: 8, bOut: 20, want: true},
		{name: "single shared night", aIn: 10, aOut: 15, bIn: 14, bOut: 16, want: true},
		{name: "back-to-back after", aIn: 10, aOut: 15, bIn: 15, bOut: 20, want: false},
		{name: "back-to-back before", aIn: 10, aOut: 15, bIn: 5, bOut: 10, want: false},
		{name: "disjoint after", aIn: 10, aOut: 15, bIn: 16, bOut: 20, want: false},
		{name: "disjoint before", aIn: 10, aOut: 15, bIn: 1, bOut: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(day(tt.aIn), day(tt.aOut), day(tt.bIn), day(tt.bOut))
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			assert.Equal(t, tt.want, RangesOverlap(day(tt.bIn), day(tt.bOut), day(tt.aIn), day(tt.aOut)))
		})
	}
}

func TestReservation_Overlaps(t *testing.T) {
	r := &Reservation{
		Checkin:  time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC),
		Checkout: time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC),
	}

	nextIn := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
	nextOut := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)

	assert.False(t, r.Overlaps(nextIn, nextOut)) // new stay starts on checkout day
	assert.True(t, r.Overlaps(nextIn.AddDate(0, 0, -1), nextOut))
}

func TestReservationStatus_IsTerminal(t *testing.T) {
	assert.False(t, ReservationStatusPending.IsTerminal())
	assert.False(t, ReservationStatusConfirmed.IsTerminal())
	assert.True(t, ReservationStatusCancelled.IsTerminal())
	assert.True(t, ReservationStatusCompleted.IsTerminal())
}
