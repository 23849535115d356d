package domain

import "time"

type Lodging struct {
	ID          string    `json:"id"`
	HostID      string    `json:"host_id"`
	Name        string    `json:"name"`
	NightlyRate Money     `json:"nightly_rate"`
	Capacity    int       `json:"capacity"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateLodgingInput struct {
	HostID      string
	Name        string
	NightlyRate Money
	Capacity    int
	Active      *bool
}
