package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrLodgingNotFound     = errors.New("lodging not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPaymentNotFound     = errors.New("payment not found")
)

var (
	ErrForbidden = errors.New("requestor has no rights over this resource")
)

var (
	ErrInvalidDateRange = errors.New("invalid or past date range")
	ErrCapacityExceeded = errors.New("guest count exceeds lodging capacity")
	ErrDateOverlap      = errors.New("dates overlap an existing reservation")
)

var (
	ErrReservationNotCancellable = errors.New("reservation is not cancellable in its current state")
	ErrReservationNotPayable     = errors.New("reservation is not payable in its current state")
	ErrCancellationWindow        = errors.New("too close to check-in to cancel")
	ErrPaymentWindowClosed       = errors.New("payment must be made before check-in")
)

var (
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	ErrAmountMismatch    = errors.New("amount does not match the reservation total")
	ErrDuplicatePayment  = errors.New("reservation already has a payment")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
