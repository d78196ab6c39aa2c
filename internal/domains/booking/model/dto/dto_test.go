package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"zenstay/internal/domains/booking/model"
	"zenstay/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:       "room-id",
		GuestName:    "Jane Guest",
		GuestEmail:   "jane@example.com",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
	}

	booking, err := req.ToModel("test-user")

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "room-id", booking.RoomID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), booking.CheckInDate)
	assert.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), booking.CheckOutDate)
	assert.Equal(t, 3, booking.Nights())
	assert.Equal(t, "test-user", booking.CreatedBy)
	assert.Equal(t, "test-user", booking.ModifiedBy)
}

func TestCreateBookingRequest_ToModelInvalidDate(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateBookingRequest
	}{
		{
			name: "malformed check-in",
			req: dto.CreateBookingRequest{
				RoomID:       "room-id",
				GuestName:    "Jane Guest",
				GuestEmail:   "jane@example.com",
				CheckInDate:  "01/09/2026",
				CheckOutDate: "2026-09-04",
			},
		},
		{
			name: "malformed check-out",
			req: dto.CreateBookingRequest{
				RoomID:       "room-id",
				GuestName:    "Jane Guest",
				GuestEmail:   "jane@example.com",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "tomorrow",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToModel("test-user")

			assert.Error(t, err)
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:           "booking-id",
		RoomID:       "room-id",
		GuestName:    "Jane Guest",
		GuestEmail:   "jane@example.com",
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		TotalPrice:   300,
		Status:       model.StatusApproved,
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, "booking-id", res.ID)
	assert.Equal(t, "2026-09-01", res.CheckInDate)
	assert.Equal(t, "2026-09-04", res.CheckOutDate)
	assert.Equal(t, float64(300), res.TotalPrice)
	assert.Equal(t, model.StatusApproved, res.Status)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "booking-1", Status: model.StatusPending},
		{ID: "booking-2", Status: model.StatusApproved},
	}

	res := dto.GetBookingsResponse{}
	res.FromModels(models, 12, 10)

	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, "booking-1", res.Bookings[0].ID)
}
