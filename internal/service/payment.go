package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	"github.com/Soloquie/Alojapp-sub002/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	paymentRepo     ports.PaymentRepo
	reservationRepo ports.ReservationRepo
	lodgingRepo     ports.LodgingRepo
	userRepo        ports.UserRepo
	notifier        ports.ReservationNotifier
	logger          logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	reservationRepo ports.ReservationRepo,
	lodgingRepo ports.LodgingRepo,
	userRepo ports.UserRepo,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		lodgingRepo:     lodgingRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Pay settles a reservation in full, exactly once. Settlement is synchronous:
// the payment is recorded as approved and a pending reservation is confirmed
// in the same transaction.
func (s *PaymentService) Pay(ctx context.Context, input domain.PayInput) (*domain.Payment, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, input.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if input.PayerID != reservation.GuestID {
		return nil, domain.ErrForbidden
	}

	if reservation.Status.IsTerminal() {
		return nil, domain.ErrReservationNotPayable
	}

	if !time.Now().UTC().Before(reservation.Checkin) {
		return nil, domain.ErrPaymentWindowClosed
	}

	if !input.Method.Valid() {
		return nil, domain.ErrUnsupportedMethod
	}

	if input.Amount != reservation.TotalPrice {
		return nil, domain.ErrAmountMismatch
	}

	if _, err = s.paymentRepo.GetByReservation(ctx, reservation.ID); err == nil {
		return nil, domain.ErrDuplicatePayment
	} else if !errors.Is(err, domain.ErrPaymentNotFound) {
		return nil, fmt.Errorf("check existing payment: %w", err)
	}

	payment := &domain.Payment{
		ID:            uuid.New().String(),
		ReservationID: reservation.ID,
		PayerID:       input.PayerID,
		Amount:        input.Amount,
		Method:        input.Method,
		Status:        domain.PaymentStatusApproved,
		CreatedAt:     time.Now().UTC(),
	}
	if err = s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if reservation.Status == domain.ReservationStatusPending {
		reservation.Status = domain.ReservationStatusConfirmed
	}

	s.logger.Info("payment recorded",
		logger.String("payment_id", payment.ID),
		logger.String("reservation_id", reservation.ID),
		logger.String("payer_id", input.PayerID),
		logger.String("method", string(input.Method)),
		logger.Int64("amount", int64(input.Amount)),
	)

	s.notifyPaid(context.WithoutCancel(ctx), reservation, payment)

	return payment, nil
}

// UpdateStatus is an administrative override: it flips a payment between
// approved and rejected without revalidating the amount or the reservation.
func (s *PaymentService) UpdateStatus(ctx context.Context, requestorID, paymentID string, status domain.PaymentStatus) error {
	requestor, err := s.userRepo.GetByID(ctx, requestorID)
	if err != nil {
		return fmt.Errorf("check requestor: %w", err)
	}
	if !requestor.IsAdmin {
		return domain.ErrForbidden
	}

	if !status.Valid() {
		return fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, status)
	}

	if err = s.paymentRepo.UpdateStatus(ctx, paymentID, status); err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}

	s.logger.Info("payment status overridden",
		logger.String("payment_id", paymentID),
		logger.String("requestor_id", requestorID),
		logger.String("status", string(status)),
	)

	return nil
}

func (s *PaymentService) RevenueByHost(ctx context.Context, hostID string) (domain.Money, error) {
	if _, err := s.userRepo.GetByID(ctx, hostID); err != nil {
		return 0, fmt.Errorf("check host: %w", err)
	}
	return s.paymentRepo.RevenueByHost(ctx, hostID)
}

func (s *PaymentService) notifyPaid(ctx context.Context, reservation *domain.Reservation, payment *domain.Payment) {
	guest, err := s.userRepo.GetByID(ctx, reservation.GuestID)
	if err != nil {
		s.logger.Error("failed to get guest for payment notification",
			logger.String("guest_id", reservation.GuestID),
			logger.String("error", err.Error()),
		)
		return
	}

	lodging, err := s.lodgingRepo.GetByID(ctx, reservation.LodgingID)
	if err != nil {
		s.logger.Error("failed to get lodging for payment notification",
			logger.String("lodging_id", reservation.LodgingID),
			logger.String("error", err.Error()),
		)
		return
	}

	go s.notifier.NotifyPaymentReceived(ctx, guest, lodging, reservation, payment)
}
