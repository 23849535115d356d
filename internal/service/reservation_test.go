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
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testLodging() *domain.Lodging {
	return &domain.Lodging{
		ID:          "l1",
		HostID:      "h1",
		Name:        "Sea View Apartment",
		NightlyRate: 100000,
		Capacity:    4,
		Active:      true,
	}
}

func futureStay(nights int) (time.Time, time.Time) {
	checkin := time.Now().UTC().AddDate(0, 0, 30)
	return checkin, checkin.AddDate(0, 0, nights)
}

func TestReservationService_Create_RequiresPayment(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{RequirePayment: true}, log)

	lodging := testLodging()
	guest := &domain.User{ID: "u1", Username: "alice"}
	checkin, checkout := futureStay(5)

	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(lodging, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(guest, nil)
	reservationRepo.EXPECT().IsAvailable(mock.Anything, "l1", mock.Anything, mock.Anything).Return(true, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, guest, lodging, mock.Anything).Return()

	reservation, err := svc.Create(context.Background(), domain.CreateReservationInput{
		LodgingID: "l1",
		GuestID:   "u1",
		Checkin:   checkin,
		Checkout:  checkout,
		Guests:    2,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, reservation.Status)
	assert.Equal(t, domain.Money(500000), reservation.TotalPrice)
	assert.Equal(t, "l1", reservation.LodgingID)
	assert.Equal(t, "u1", reservation.GuestID)
	assert.NotEmpty(t, reservation.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_NoPaymentRequired(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{RequirePayment: false}, log)

	lodging := testLodging()
	guest := &domain.User{ID: "u1", Username: "alice"}
	checkin, checkout := futureStay(3)

	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(lodging, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(guest, nil)
	reservationRepo.EXPECT().IsAvailable(mock.Anything, "l1", mock.Anything, mock.Anything).Return(true, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, guest, lodging, mock.Anything).Return()

	reservation, err := svc.Create(context.Background(), domain.CreateReservationInput{
		LodgingID: "l1",
		GuestID:   "u1",
		Checkin:   checkin,
		Checkout:  checkout,
		Guests:    2,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, reservation.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Create_LodgingNotFound(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	lodgingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrLodgingNotFound)

	checkin, checkout := futureStay(2)
	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		LodgingID: "missing",
		GuestID:   "u1",
		Checkin:   checkin,
		Checkout:  checkout,
		Guests:    1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLodgingNotFound)
}

func TestReservationService_Create_InactiveLodging(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	lodging := testLodging()
	lodging.Active = false
	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(lodging, nil)

	checkin, checkout := futureStay(2)
	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		LodgingID: "l1",
		GuestID:   "u1",
		Checkin:   checkin,
		Checkout:  checkout,
		Guests:    1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLodgingNotFound)
}

func TestReservationService_Create_PastCheckin(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(testLodging(), nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	tests := []struct {
		name    string
		checkin time.Time
	}{
		{name: "checkin today", checkin: time.Now().UTC()},
		{name: "checkin in the past", checkin: time.Now().UTC().AddDate(0, 0, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), domain.CreateReservationInput{
				LodgingID: "l1",
				GuestID:   "u1",
				Checkin:   tt.checkin,
				Checkout:  tt.checkin.AddDate(0, 0, 2),
				Guests:    1,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		})
	}
}

func TestReservationService_Create_InvalidRange(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(testLodging(), nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	checkin, _ := futureStay(1)
	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		LodgingID: "l1",
		GuestID:   "u1",
		Checkin:   checkin,
		Checkout:  checkin, // zero nights
		Guests:    1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestReservationService_Create_CapacityExceeded(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(testLodging(), nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	checkin, checkout := futureStay(2)
	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		LodgingID: "l1",
		GuestID:   "u1",
		Checkin:   checkin,
		Checkout:  checkout,
		Guests:    5, // capacity is 4
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestReservationService_Create_DateOverlap(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(testLodging(), nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	reservationRepo.EXPECT().IsAvailable(mock.Anything, "l1", mock.Anything, mock.Anything).Return(false, nil)

	checkin, checkout := futureStay(3)
	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		LodgingID: "l1",
		GuestID:   "u1",
		Checkin:   checkin,
		Checkout:  checkout,
		Guests:    2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDateOverlap)
}

func TestReservationService_Create_OverlapOnInsert(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(testLodging(), nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	reservationRepo.EXPECT().IsAvailable(mock.Anything, "l1", mock.Anything, mock.Anything).Return(true, nil)
	// Lost the race: a concurrent creation took the range between check and insert.
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDateOverlap)

	checkin, checkout := futureStay(3)
	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		LodgingID: "l1",
		GuestID:   "u1",
		Checkin:   checkin,
		Checkout:  checkout,
		Guests:    2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDateOverlap)
}

func TestReservationService_Cancel_ByGuest(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{MinCancelNotice: 48 * time.Hour}, log)

	checkin, checkout := futureStay(4)
	reservation := &domain.Reservation{
		ID:        "r1",
		LodgingID: "l1",
		GuestID:   "u1",
		Checkin:   checkin,
		Checkout:  checkout,
		Status:    domain.ReservationStatusConfirmed,
	}
	guest := &domain.User{ID: "u1", Username: "alice"}
	lodging := testLodging()

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(guest, nil)
	reservationRepo.EXPECT().Cancel(mock.Anything, "r1", "change of plans", mock.Anything).Return(nil)
	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(lodging, nil)
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, guest, lodging, mock.Anything).Return()

	cancelled, err := svc.Cancel(context.Background(), "u1", "r1", "change of plans")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, "change of plans", *cancelled.CancellationReason)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Cancel_Forbidden(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	checkin, checkout := futureStay(4)
	reservation := &domain.Reservation{
		ID:      "r1",
		GuestID: "u1",
		Checkin: checkin, Checkout: checkout,
		Status: domain.ReservationStatusConfirmed,
	}

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)

	_, err := svc.Cancel(context.Background(), "u2", "r1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Cancel_Terminal(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	tests := []struct {
		name   string
		status domain.ReservationStatus
	}{
		{name: "already cancelled", status: domain.ReservationStatusCancelled},
		{name: "already completed", status: domain.ReservationStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := &domain.Reservation{ID: "r1", GuestID: "u1", Status: tt.status}

			reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil).Once()
			userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil).Once()

			_, err := svc.Cancel(context.Background(), "u1", "r1", "")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrReservationNotCancellable)
		})
	}
}

func TestReservationService_Cancel_InsideWindow(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{MinCancelNotice: 48 * time.Hour}, log)

	reservation := &domain.Reservation{
		ID:      "r1",
		GuestID: "u1",
		Checkin: time.Now().UTC().Add(12 * time.Hour), // tomorrow, inside the window
		Status:  domain.ReservationStatusConfirmed,
	}

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Cancel(context.Background(), "u1", "r1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancellationWindow)
}

func TestReservationService_Cancel_AdminOverridesWindow(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{MinCancelNotice: 48 * time.Hour}, log)

	reservation := &domain.Reservation{
		ID:        "r1",
		LodgingID: "l1",
		GuestID:   "u1",
		Checkin:   time.Now().UTC().Add(12 * time.Hour),
		Status:    domain.ReservationStatusConfirmed,
	}
	admin := &domain.User{ID: "admin", IsAdmin: true}
	guest := &domain.User{ID: "u1"}
	lodging := testLodging()

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "admin").Return(admin, nil)
	reservationRepo.EXPECT().Cancel(mock.Anything, "r1", "host request", mock.Anything).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(guest, nil)
	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(lodging, nil)
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, guest, lodging, mock.Anything).Return()

	cancelled, err := svc.Cancel(context.Background(), "admin", "r1", "host request")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, cancelled.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_AdminCannotReviveTerminal(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	reservation := &domain.Reservation{ID: "r1", GuestID: "u1", Status: domain.ReservationStatusCompleted}

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "admin").Return(&domain.User{ID: "admin", IsAdmin: true}, nil)

	_, err := svc.Cancel(context.Background(), "admin", "r1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotCancellable)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.Cancel(context.Background(), "u1", "missing", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_CompleteExpired_Success(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	completed := []*domain.Reservation{
		{ID: "r1", Status: domain.ReservationStatusCompleted},
		{ID: "r2", Status: domain.ReservationStatusCompleted},
	}
	reservationRepo.EXPECT().CompleteExpired(mock.Anything, mock.Anything).Return(completed, nil)

	result, err := svc.CompleteExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestReservationService_CompleteExpired_RepoError(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	reservationRepo.EXPECT().CompleteExpired(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.CompleteExpired(context.Background())

	require.Error(t, err)
}

func TestReservationService_CheckAvailability(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(testLodging(), nil)
	reservationRepo.EXPECT().IsAvailable(mock.Anything, "l1", mock.Anything, mock.Anything).Return(true, nil)

	checkin, checkout := futureStay(2)
	available, err := svc.CheckAvailability(context.Background(), "l1", checkin, checkout)

	require.NoError(t, err)
	assert.True(t, available)
}

func TestReservationService_CheckAvailability_InvalidRange(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	lodgingRepo := mocks.NewMockLodgingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)
	log := newTestLogger(t)

	svc := NewReservationService(reservationRepo, lodgingRepo, userRepo, notifier, BookingPolicy{}, log)

	lodgingRepo.EXPECT().GetByID(mock.Anything, "l1").Return(testLodging(), nil)

	checkin, _ := futureStay(2)
	_, err := svc.CheckAvailability(context.Background(), "l1", checkin, checkin)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}
