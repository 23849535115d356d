package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	"github.com/Soloquie/Alojapp-sub002/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, requestorID, reservationID, reason string) (*domain.Reservation, error)
	CheckAvailability(ctx context.Context, lodgingID string, checkin, checkout time.Time) (bool, error)
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error)
	ListByLodging(ctx context.Context, lodgingID string) ([]*domain.Reservation, error)
	ListByHost(ctx context.Context, hostID string) ([]*domain.Reservation, error)
}

type PaymentSvc interface {
	Pay(ctx context.Context, input domain.PayInput) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, requestorID, paymentID string, status domain.PaymentStatus) error
	RevenueByHost(ctx context.Context, hostID string) (domain.Money, error)
}

type LodgingSvc interface {
	Create(ctx context.Context, input domain.CreateLodgingInput) (*domain.Lodging, error)
	GetByID(ctx context.Context, id string) (*domain.Lodging, error)
	List(ctx context.Context) ([]*domain.Lodging, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	reservationService ReservationSvc
	paymentService     PaymentSvc
	lodgingService     LodgingSvc
	userService        UserSvc
}

func NewHandler(
	reservationService ReservationSvc,
	paymentService PaymentSvc,
	lodgingService LodgingSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		reservationService: reservationService,
		paymentService:     paymentService,
		lodgingService:     lodgingService,
		userService:        userService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkin, err := time.Parse(dto.DateLayout, req.Checkin)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid checkin format, expected YYYY-MM-DD"})
		return
	}
	checkout, err := time.Parse(dto.DateLayout, req.Checkout)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid checkout format, expected YYYY-MM-DD"})
		return
	}

	input := domain.CreateReservationInput{
		GuestID:   req.GuestID,
		LodgingID: req.LodgingID,
		Checkin:   checkin,
		Checkout:  checkout,
		Guests:    req.Guests,
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.Cancel(c.Request.Context(), req.RequestorID, id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) PayReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.PayInput{
		PayerID:       req.PayerID,
		ReservationID: id,
		Method:        domain.PaymentMethod(req.Method),
		Amount:        domain.Money(req.Amount),
	}

	payment, err := h.paymentService.Pay(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// Lodgings

func (h *Handler) CreateLodging(c *ginext.Context) {
	var req dto.CreateLodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateLodgingInput{
		HostID:      req.HostID,
		Name:        req.Name,
		NightlyRate: domain.Money(req.NightlyRate),
		Capacity:    req.Capacity,
		Active:      req.Active,
	}

	lodging, err := h.lodgingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLodgingResponse(lodging))
}

func (h *Handler) GetLodging(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid lodging id"})
		return
	}

	lodging, err := h.lodgingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLodgingResponse(lodging))
}

func (h *Handler) ListLodgings(c *ginext.Context) {
	lodgings, err := h.lodgingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.LodgingResponse, 0, len(lodgings))
	for _, l := range lodgings {
		resp = append(resp, dto.ToLodgingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetLodgingReservations(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid lodging id"})
		return
	}

	reservations, err := h.reservationService.ListByLodging(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func (h *Handler) GetLodgingAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid lodging id"})
		return
	}

	checkin, err := time.Parse(dto.DateLayout, c.Query("checkin"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid checkin format, expected YYYY-MM-DD"})
		return
	}
	checkout, err := time.Parse(dto.DateLayout, c.Query("checkout"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid checkout format, expected YYYY-MM-DD"})
		return
	}

	available, err := h.reservationService.CheckAvailability(c.Request.Context(), id, checkin, checkout)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		LodgingID: id,
		Checkin:   checkin.Format(dto.DateLayout),
		Checkout:  checkout.Format(dto.DateLayout),
		Available: available,
	})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		IsAdmin:        req.IsAdmin,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	reservations, err := h.reservationService.ListByGuest(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

// Hosts (reporting reads)

func (h *Handler) GetHostReservations(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid host id"})
		return
	}

	reservations, err := h.reservationService.ListByHost(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func (h *Handler) GetHostRevenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid host id"})
		return
	}

	revenue, err := h.paymentService.RevenueByHost(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HostRevenueResponse{
		HostID:  id,
		Revenue: int64(revenue),
	})
}

// Payments

func (h *Handler) UpdatePaymentStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.paymentService.UpdateStatus(
		c.Request.Context(), req.RequestorID, id, domain.PaymentStatus(req.Status),
	); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func toReservationResponses(reservations []*domain.Reservation) []dto.ReservationResponse {
	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrLodgingNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDateOverlap),
		errors.Is(err, domain.ErrDuplicatePayment),
		errors.Is(err, domain.ErrReservationNotCancellable),
		errors.Is(err, domain.ErrReservationNotPayable),
		errors.Is(err, domain.ErrCancellationWindow),
		errors.Is(err, domain.ErrPaymentWindowClosed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrUnsupportedMethod),
		errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
