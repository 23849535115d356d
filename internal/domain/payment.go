package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCash     PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodTransfer, PaymentMethodCash:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected
}

// Payment settles exactly one reservation. The reservation reference and
// amount are immutable once recorded; only the status may be overridden.
type Payment struct {
	ID            string        `json:"id"`
	ReservationID string        `json:"reservation_id"`
	PayerID       string        `json:"payer_id"`
	Amount        Money         `json:"amount"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type PayInput struct {
	PayerID       string
	ReservationID string
	Method        PaymentMethod
	Amount        Money
}
