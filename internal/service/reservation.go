package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	"github.com/Soloquie/Alojapp-sub002/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	lodgingRepo     ports.LodgingRepo
	userRepo        ports.UserRepo
	notifier        ports.ReservationNotifier
	policy          BookingPolicy
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	lodgingRepo ports.LodgingRepo,
	userRepo ports.UserRepo,
	notifier ports.ReservationNotifier,
	policy BookingPolicy,
	logger logger.Logger,
) *ReservationService {
	if policy.MinCancelNotice == 0 {
		policy.MinCancelNotice = DefaultMinCancelNotice
	}
	return &ReservationService{
		reservationRepo: reservationRepo,
		lodgingRepo:     lodgingRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		policy:          policy,
		logger:          logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	lodging, err := s.lodgingRepo.GetByID(ctx, input.LodgingID)
	if err != nil {
		return nil, fmt.Errorf("check lodging: %w", err)
	}
	if !lodging.Active {
		return nil, domain.ErrLodgingNotFound
	}

	guest, err := s.userRepo.GetByID(ctx, input.GuestID)
	if err != nil {
		return nil, fmt.Errorf("check guest: %w", err)
	}

	now := time.Now().UTC()
	checkin := dayOf(input.Checkin)
	checkout := dayOf(input.Checkout)
	if !checkin.After(dayOf(now)) {
		return nil, domain.ErrInvalidDateRange
	}

	if input.Guests <= 0 {
		return nil, fmt.Errorf("%w: guests must be positive", domain.ErrValidation)
	}
	if input.Guests > lodging.Capacity {
		return nil, domain.ErrCapacityExceeded
	}

	total, err := ComputeTotal(lodging.NightlyRate, checkin, checkout)
	if err != nil {
		return nil, err
	}

	// Advisory pre-check; the insert below re-runs it atomically so two
	// concurrent creations cannot both pass.
	available, err := s.reservationRepo.IsAvailable(ctx, lodging.ID, checkin, checkout)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !available {
		return nil, domain.ErrDateOverlap
	}

	status := domain.ReservationStatusConfirmed
	if s.policy.RequirePayment {
		status = domain.ReservationStatusPending
	}

	reservation := &domain.Reservation{
		ID:         uuid.New().String(),
		LodgingID:  lodging.ID,
		GuestID:    guest.ID,
		Checkin:    checkin,
		Checkout:   checkout,
		Guests:     input.Guests,
		TotalPrice: total,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("lodging_id", lodging.ID),
		logger.String("guest_id", guest.ID),
		logger.String("status", string(status)),
		logger.Int64("total_price", int64(total)),
	)

	if status == domain.ReservationStatusConfirmed {
		go s.notifier.NotifyReservationConfirmed(context.WithoutCancel(ctx), guest, lodging, reservation)
	} else {
		go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), guest, lodging, reservation)
	}

	return reservation, nil
}

func (s *ReservationService) Cancel(ctx context.Context, requestorID, reservationID, reason string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	requestor, err := s.userRepo.GetByID(ctx, requestorID)
	if err != nil {
		return nil, fmt.Errorf("check requestor: %w", err)
	}
	override := requestor.IsAdmin
	if !override && requestor.ID != reservation.GuestID {
		return nil, domain.ErrForbidden
	}

	// The terminal-state check applies to everyone, override or not.
	if !reservation.Status.CanTransitionTo(domain.ReservationStatusCancelled) {
		return nil, domain.ErrReservationNotCancellable
	}

	now := time.Now().UTC()
	if !override && !CanCancel(reservation.Checkin, now, s.policy.MinCancelNotice) {
		return nil, domain.ErrCancellationWindow
	}

	if err = s.reservationRepo.Cancel(ctx, reservation.ID, reason, now); err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	reservation.Status = domain.ReservationStatusCancelled
	reservation.CancelledAt = &now
	reservation.CancellationReason = &reason
	reservation.UpdatedAt = now

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", reservation.ID),
		logger.String("requestor_id", requestorID),
		logger.String("reason", reason),
	)

	s.notifyCancelled(context.WithoutCancel(ctx), reservation)

	return reservation, nil
}

// CompleteExpired moves every confirmed reservation whose stay has ended
// into the terminal completed state. Safe to call repeatedly.
func (s *ReservationService) CompleteExpired(ctx context.Context) ([]*domain.Reservation, error) {
	today := dayOf(time.Now().UTC())

	completed, err := s.reservationRepo.CompleteExpired(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("complete expired: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("finished stays completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

// CheckAvailability answers whether the lodging is free for the half-open
// range [checkin, checkout).
func (s *ReservationService) CheckAvailability(ctx context.Context, lodgingID string, checkin, checkout time.Time) (bool, error) {
	if _, err := s.lodgingRepo.GetByID(ctx, lodgingID); err != nil {
		return false, fmt.Errorf("check lodging: %w", err)
	}

	checkin = dayOf(checkin)
	checkout = dayOf(checkout)
	if !checkin.Before(checkout) {
		return false, domain.ErrInvalidDateRange
	}

	return s.reservationRepo.IsAvailable(ctx, lodgingID, checkin, checkout)
}

func (s *ReservationService) ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByGuest(ctx, guestID)
}

func (s *ReservationService) ListByLodging(ctx context.Context, lodgingID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByLodging(ctx, lodgingID)
}

func (s *ReservationService) ListByHost(ctx context.Context, hostID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByHost(ctx, hostID)
}

func (s *ReservationService) notifyCancelled(ctx context.Context, reservation *domain.Reservation) {
	guest, err := s.userRepo.GetByID(ctx, reservation.GuestID)
	if err != nil {
		s.logger.Error("failed to get guest for cancel notification",
			logger.String("guest_id", reservation.GuestID),
			logger.String("error", err.Error()),
		)
		return
	}

	lodging, err := s.lodgingRepo.GetByID(ctx, reservation.LodgingID)
	if err != nil {
		s.logger.Error("failed to get lodging for cancel notification",
			logger.String("lodging_id", reservation.LodgingID),
			logger.String("error", err.Error()),
		)
		return
	}

	go s.notifier.NotifyReservationCancelled(ctx, guest, lodging, reservation)
}
