package ports

import (
	"context"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
)

// ReservationNotifier is fire-and-forget: delivery failures never affect the
// transactional outcome of the operation that triggered them.
type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, user *domain.User, lodging *domain.Lodging, r *domain.Reservation)
	NotifyReservationConfirmed(ctx context.Context, user *domain.User, lodging *domain.Lodging, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, user *domain.User, lodging *domain.Lodging, r *domain.Reservation)
	NotifyPaymentReceived(ctx context.Context, user *domain.User, lodging *domain.Lodging, r *domain.Reservation, p *domain.Payment)
}
