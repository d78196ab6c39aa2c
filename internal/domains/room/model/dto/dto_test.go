package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zenstay/internal/domains/room/model"
	"zenstay/internal/domains/room/model/dto"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestCreateRoomRequest_ToModel(t *testing.T) {
	tests := []struct {
		name          string
		available     *bool
		wantAvailable bool
	}{
		{
			name:          "available defaults to true",
			available:     nil,
			wantAvailable: true,
		},
		{
			name:          "explicit available false",
			available:     boolPtr(false),
			wantAvailable: false,
		},
		{
			name:          "explicit available true",
			available:     boolPtr(true),
			wantAvailable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateRoomRequest{
				RoomNumber:    "101",
				RoomType:      "Deluxe Room",
				PricePerNight: 3500,
				Capacity:      2,
				Available:     tt.available,
				Rating:        4.5,
				Amenities:     []string{"WiFi", "TV"},
			}

			room := req.ToModel("test-user")

			assert.NotEmpty(t, room.ID)
			assert.Equal(t, "101", room.RoomNumber)
			assert.Equal(t, tt.wantAvailable, room.Available)
			assert.Equal(t, "test-user", room.CreatedBy)
			assert.Equal(t, "test-user", room.ModifiedBy)
			assert.Len(t, room.Amenities, 2)
		})
	}
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	models := []model.Room{
		{ID: "room-1", RoomNumber: "101", Available: true},
		{ID: "room-2", RoomNumber: "102", Available: false},
	}

	res := dto.GetRoomsResponse{}
	res.FromModels(models, 6, 4)

	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 6, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, "101", res.Rooms[0].RoomNumber)
	assert.False(t, res.Rooms[1].Available)
}
