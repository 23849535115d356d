package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// ActiveStatuses are the states a reservation can still move out of.
var ActiveStatuses = []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed}

// BlockingStatuses are the states that claim the lodging's dates.
// Cancelled reservations never block.
var BlockingStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCompleted,
}

// transitions is the single source of truth for the reservation state
// machine: pending -> confirmed -> completed, with cancellation as a side
// branch out of either non-terminal state.
var transitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusCancelled},
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ReservationStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// RangesOverlap reports whether the half-open stay ranges [aIn, aOut) and
// [bIn, bOut) share at least one night. Touching ranges, where one checkout
// equals the other checkin, do not overlap. The repository availability
// queries and the reservations_no_overlap constraint encode this same
// predicate in SQL.
func RangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

type Reservation struct {
	ID                 string            `json:"id"`
	LodgingID          string            `json:"lodging_id"`
	GuestID            string            `json:"guest_id"`
	Checkin            time.Time         `json:"checkin"`
	Checkout           time.Time         `json:"checkout"`
	Guests             int               `json:"guests"`
	TotalPrice         Money             `json:"total_price"`
	Status             ReservationStatus `json:"status"`
	CancelledAt        *time.Time        `json:"cancelled_at,omitempty"`
	CancellationReason *string           `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// Overlaps reports whether the reservation's stay shares a night with the
// half-open range [checkin, checkout).
func (r *Reservation) Overlaps(checkin, checkout time.Time) bool {
	return RangesOverlap(r.Checkin, r.Checkout, checkin, checkout)
}

type CreateReservationInput struct {
	GuestID   string
	LodgingID string
	Checkin   time.Time
	Checkout  time.Time
	Guests    int
}
