package dto

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	IsAdmin        bool   `json:"is_admin"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateLodgingRequest struct {
	HostID      string `json:"host_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
	NightlyRate int64  `json:"nightly_rate" binding:"required,gt=0"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	Active      *bool  `json:"active"`
}

type CreateReservationRequest struct {
	GuestID   string `json:"guest_id" binding:"required,uuid"`
	LodgingID string `json:"lodging_id" binding:"required,uuid"`
	Checkin   string `json:"checkin" binding:"required"`
	Checkout  string `json:"checkout" binding:"required"`
	Guests    int    `json:"guests" binding:"required,gt=0"`
}

type CancelReservationRequest struct {
	RequestorID string `json:"requestor_id" binding:"required,uuid"`
	Reason      string `json:"reason"`
}

type PayRequest struct {
	PayerID string `json:"payer_id" binding:"required,uuid"`
	Method  string `json:"method" binding:"required"`
	Amount  int64  `json:"amount" binding:"required,gt=0"`
}

type UpdatePaymentStatusRequest struct {
	RequestorID string `json:"requestor_id" binding:"required,uuid"`
	Status      string `json:"status" binding:"required"`
}
