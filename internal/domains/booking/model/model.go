package model

import (
	"strings"
	"time"

	"zenstay/shared/failure"
	"zenstay/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldGuestName    = "guest_name"
	FieldGuestEmail   = "guest_email"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTotalPrice   = "total_price"
	FieldStatus       = "status"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// ParseStatus normalizes a requested status transition. Only terminal-ward
// transitions are accepted; PENDING is assigned at creation and never
// requested.
func ParseStatus(raw string) (string, error) {
	status := strings.ToUpper(strings.TrimSpace(raw))

	switch status {
	case StatusApproved, StatusRejected, StatusCancelled:
		return status, nil
	default:
		return "", failure.BadRequestFromString("invalid booking status: " + raw) //nolint:wrapcheck
	}
}

type Booking struct {
	ID           string    `db:"id"`
	RoomID       string    `db:"room_id"`
	GuestName    string    `db:"guest_name"`
	GuestEmail   string    `db:"guest_email"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	TotalPrice   float64   `db:"total_price"`
	Status       string    `db:"status"`
	model.Metadata
}

// Nights returns the whole-day difference between check-in and check-out.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
