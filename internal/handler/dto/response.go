package dto

import (
	"time"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
)

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	IsAdmin        bool   `json:"is_admin"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type LodgingResponse struct {
	ID          string `json:"id"`
	HostID      string `json:"host_id"`
	Name        string `json:"name"`
	NightlyRate int64  `json:"nightly_rate"`
	Capacity    int    `json:"capacity"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
}

type ReservationResponse struct {
	ID                 string  `json:"id"`
	LodgingID          string  `json:"lodging_id"`
	GuestID            string  `json:"guest_id"`
	Checkin            string  `json:"checkin"`
	Checkout           string  `json:"checkout"`
	Guests             int     `json:"guests"`
	TotalPrice         int64   `json:"total_price"`
	Status             string  `json:"status"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

type PaymentResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	PayerID       string `json:"payer_id"`
	Amount        int64  `json:"amount"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type AvailabilityResponse struct {
	LodgingID string `json:"lodging_id"`
	Checkin   string `json:"checkin"`
	Checkout  string `json:"checkout"`
	Available bool   `json:"available"`
}

type HostRevenueResponse struct {
	HostID  string `json:"host_id"`
	Revenue int64  `json:"revenue"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		IsAdmin:        u.IsAdmin,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToLodgingResponse(l *domain.Lodging) LodgingResponse {
	return LodgingResponse{
		ID:          l.ID,
		HostID:      l.HostID,
		Name:        l.Name,
		NightlyRate: int64(l.NightlyRate),
		Capacity:    l.Capacity,
		Active:      l.Active,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:                 r.ID,
		LodgingID:          r.LodgingID,
		GuestID:            r.GuestID,
		Checkin:            r.Checkin.Format(DateLayout),
		Checkout:           r.Checkout.Format(DateLayout),
		Guests:             r.Guests,
		TotalPrice:         int64(r.TotalPrice),
		Status:             string(r.Status),
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
	}
	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}
	return resp
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		PayerID:       p.PayerID,
		Amount:        int64(p.Amount),
		Method:        string(p.Method),
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
