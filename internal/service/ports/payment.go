package ports

import (
	"context"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
)

type PaymentRepo interface {
	// Create inserts the payment and, in the same transaction, moves a
	// pending reservation to confirmed.
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetByReservation(ctx context.Context, reservationID string) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error
	RevenueByHost(ctx context.Context, hostID string) (domain.Money, error)
}
