package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"zenstay/internal/domains/booking/model"
	"zenstay/shared/failure"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "approved upper", raw: "APPROVED", want: model.StatusApproved},
		{name: "approved lower", raw: "approved", want: model.StatusApproved},
		{name: "rejected mixed case", raw: "Rejected", want: model.StatusRejected},
		{name: "cancelled with whitespace", raw: "  cancelled ", want: model.StatusCancelled},
		{name: "pending is not requestable", raw: "PENDING", wantErr: true},
		{name: "unknown status", raw: "DONE", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseStatus(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBooking_Nights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three nights",
			checkIn:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "month boundary",
			checkIn:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{
				CheckInDate:  tt.checkIn,
				CheckOutDate: tt.checkOut,
			}

			assert.Equal(t, tt.want, booking.Nights())
		})
	}
}
