package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	"github.com/Soloquie/Alojapp-sub002/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func payableReservation() *domain.Reservation {
	checkin, checkout := futureStay(5)
	return &domain.Reservation{
		ID:         "r1",
		LodgingID:  "l1",
		GuestID:    "u1",
		Checkin:    checkin,
		Checkout:   checkout,
		TotalPrice: 500000,
		Status:     domain.ReservationStatusPending,
	}
}

func TestPaymentService_Pay_Success(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	reservation := payableReservation()
	guest := &domain.User{ID: "u1", Username: "alice"}
	lodging := testLodging()

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil)
	paymentRepo.EXPECT().GetByReservation(mock.Anything, "r1").Return(nil, domain.ErrPaymentNotFound)
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(guest, nil)
	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(lodging, nil)
	notifier.EXPECT().NotifyPaymentReceived(mock.Anything, guest, lodging, reservation, mock.Anything).Return()

	payment, err := svc.Pay(context.Background(), domain.PayInput{
		PayerID:       "u1",
		ReservationID: "r1",
		Method:        domain.PaymentMethodCard,
		Amount:        500000,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusApproved, payment.Status)
	assert.Equal(t, domain.Money(500000), payment.Amount)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, domain.ReservationStatusConfirmed, reservation.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_Pay_ReservationNotFound(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.Pay(context.Background(), domain.PayInput{
		PayerID:       "u1",
		ReservationID: "missing",
		Method:        domain.PaymentMethodCard,
		Amount:        100,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestPaymentService_Pay_Forbidden(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(payableReservation(), nil)

	_, err := svc.Pay(context.Background(), domain.PayInput{
		PayerID:       "someone-else",
		ReservationID: "r1",
		Method:        domain.PaymentMethodCard,
		Amount:        500000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPaymentService_Pay_TerminalReservation(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	tests := []struct {
		name   string
		status domain.ReservationStatus
	}{
		{name: "cancelled", status: domain.ReservationStatusCancelled},
		{name: "completed", status: domain.ReservationStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := payableReservation()
			reservation.Status = tt.status
			reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil).Once()

			_, err := svc.Pay(context.Background(), domain.PayInput{
				PayerID:       "u1",
				ReservationID: "r1",
				Method:        domain.PaymentMethodCard,
				Amount:        500000,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrReservationNotPayable)
		})
	}
}

func TestPaymentService_Pay_WindowClosed(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	reservation := payableReservation()
	reservation.Checkin = time.Now().UTC().Add(-time.Hour) // stay already started
	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil)

	_, err := svc.Pay(context.Background(), domain.PayInput{
		PayerID:       "u1",
		ReservationID: "r1",
		Method:        domain.PaymentMethodCard,
		Amount:        500000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentWindowClosed)
}

func TestPaymentService_Pay_UnsupportedMethod(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(payableReservation(), nil)

	_, err := svc.Pay(context.Background(), domain.PayInput{
		PayerID:       "u1",
		ReservationID: "r1",
		Method:        "cheque",
		Amount:        500000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMethod)
}

func TestPaymentService_Pay_AmountMismatch(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(payableReservation(), nil)

	tests := []struct {
		name   string
		amount domain.Money
	}{
		{name: "underpayment", amount: 499999},
		{name: "overpayment", amount: 500001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Pay(context.Background(), domain.PayInput{
				PayerID:       "u1",
				ReservationID: "r1",
				Method:        domain.PaymentMethodTransfer,
				Amount:        tt.amount,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrAmountMismatch)
		})
	}
}

func TestPaymentService_Pay_Duplicate(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(payableReservation(), nil)
	paymentRepo.EXPECT().GetByReservation(mock.Anything, "r1").Return(&domain.Payment{ID: "p1"}, nil)

	_, err := svc.Pay(context.Background(), domain.PayInput{
		PayerID:       "u1",
		ReservationID: "r1",
		Method:        domain.PaymentMethodCard,
		Amount:        500000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicatePayment)
}

func TestPaymentService_Pay_DuplicateOnInsert(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(payableReservation(), nil)
	paymentRepo.EXPECT().GetByReservation(mock.Anything, "r1").Return(nil, domain.ErrPaymentNotFound)
	// Lost the race against a concurrent payer; the unique constraint caught it.
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicatePayment)

	_, err := svc.Pay(context.Background(), domain.PayInput{
		PayerID:       "u1",
		ReservationID: "r1",
		Method:        domain.PaymentMethodCard,
		Amount:        500000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicatePayment)
}

func TestPaymentService_Pay_CancelledOnInsert(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(payableReservation(), nil)
	paymentRepo.EXPECT().GetByReservation(mock.Anything, "r1").Return(nil, domain.ErrPaymentNotFound)
	// A cancel committed between the state check and the insert; the locked
	// status check inside the insert transaction rejects the payment.
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrReservationNotPayable)

	_, err := svc.Pay(context.Background(), domain.PayInput{
		PayerID:       "u1",
		ReservationID: "r1",
		Method:        domain.PaymentMethodCard,
		Amount:        500000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotPayable)
}

func TestPaymentService_UpdateStatus_AdminOnly(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	err := svc.UpdateStatus(context.Background(), "u1", "p1", domain.PaymentStatusRejected)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPaymentService_UpdateStatus_Success(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "admin").Return(&domain.User{ID: "admin", IsAdmin: true}, nil)
	paymentRepo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.PaymentStatusRejected).Return(nil)

	err := svc.UpdateStatus(context.Background(), "admin", "p1", domain.PaymentStatusRejected)

	require.NoError(t, err)
}

func TestPaymentService_UpdateStatus_InvalidStatus(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "admin").Return(&domain.User{ID: "admin", IsAdmin: true}, nil)

	err := svc.UpdateStatus(context.Background(), "admin", "p1", "refunded")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_RevenueByHost(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "h1").Return(&domain.User{ID: "h1"}, nil)
	paymentRepo.EXPECT().RevenueByHost(mock.Anything, "h1").Return(domain.Money(750000), nil)

	revenue, err := svc.RevenueByHost(context.Background(), "h1")

	require.NoError(t, err)
	assert.Equal(t, domain.Money(750000), revenue)
}

func TestPaymentService_RevenueByHost_HostNotFound(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.RevenueByHost(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPaymentService_Pay_ExistingCheckError(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, reservationRepo, lodgingRepo, userRepo, notifier, log)

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(payableReservation(), nil)
	paymentRepo.EXPECT().GetByReservation(mock.Anything, "r1").Return(nil, errors.New("db error"))

	_, err := svc.Pay(context.Background(), domain.PayInput{
		PayerID:       "u1",
		ReservationID: "r1",
		Method:        domain.PaymentMethodCard,
		Amount:        500000,
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicatePayment)
}
