package ports

import (
	"context"
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	IsAvailable(ctx context.Context, lodgingID string, checkin, checkout time.Time) (bool, error)
	Cancel(ctx context.Context, id, reason string, at time.Time) error
	CompleteExpired(ctx context.Context, before time.Time) ([]*domain.Reservation, error)
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error)
	ListByLodging(ctx context.Context, lodgingID string) ([]*domain.Reservation, error)
	ListByHost(ctx context.Context, hostID string) ([]*domain.Reservation, error)
}
