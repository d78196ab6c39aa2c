package dto

import (
	"zenstay/internal/domains/room/model"
	"zenstay/shared"
	gDto "zenstay/shared/dto"
	gModel "zenstay/shared/model"
	"zenstay/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	RoomNumber    string   `json:"room_number"     validate:"required,max=20"`
	RoomType      string   `json:"room_type"       validate:"required,max=100"`
	PricePerNight float64  `json:"price_per_night" validate:"required,gte=0"`
	Capacity      int      `json:"capacity"        validate:"required,min=1"`
	Available     *bool    `json:"available"       validate:"omitempty"`
	Rating        float64  `json:"rating"          validate:"omitempty,gte=0,lte=5"`
	Amenities     []string `json:"amenities"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    c.RoomNumber,
		RoomType:      c.RoomType,
		PricePerNight: c.PricePerNight,
		Capacity:      c.Capacity,
		Available:     available,
		Rating:        c.Rating,
		Amenities:     pq.StringArray(c.Amenities),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    string         `db:"room_number"     json:"room_number"     validate:"omitempty,max=20"`
	RoomType      string         `db:"room_type"       json:"room_type"       validate:"omitempty,max=100"`
	PricePerNight *float64       `db:"price_per_night" json:"price_per_night" validate:"omitempty,gte=0"`
	Capacity      *int           `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	Available     *bool          `db:"available"       json:"available"       validate:"omitempty"`
	Rating        *float64       `db:"rating"          json:"rating"          validate:"omitempty,gte=0,lte=5"`
	Amenities     pq.StringArray `db:"amenities"       json:"amenities"       validate:"omitempty"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	RoomNumber    string   `json:"room_number"`
	RoomType      string   `json:"room_type"`
	PricePerNight float64  `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	Available     bool     `json:"available"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.PricePerNight = model.PricePerNight
	r.Capacity = model.Capacity
	r.Available = model.Available
	r.Rating = model.Rating
	r.Amenities = model.Amenities
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
