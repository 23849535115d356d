package service

import "time"

// DefaultMinCancelNotice is how far ahead of check-in a guest may still
// cancel on their own.
const DefaultMinCancelNotice = 48 * time.Hour

// CanCancel reports whether a cancellation requested at now leaves at least
// minNotice before check-in. Exactly minNotice is allowed.
func CanCancel(checkin, now time.Time, minNotice time.Duration) bool {
	return checkin.Sub(now) >= minNotice
}

// BookingPolicy carries the deployment-level booking rules.
type BookingPolicy struct {
	// RequirePayment controls the state a new reservation starts in:
	// pending when a payment step is expected, confirmed otherwise.
	RequirePayment bool
	// MinCancelNotice is the guest-facing cancellation window. Admin
	// cancellations bypass it.
	MinCancelNotice time.Duration
}
