package model

import (
	"zenstay/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldRoomType      = "room_type"
	FieldPricePerNight = "price_per_night"
	FieldCapacity      = "capacity"
	FieldAvailable     = "available"
	FieldRating        = "rating"
	FieldAmenities     = "amenities"
)

type Room struct {
	ID            string         `db:"id"`
	RoomNumber    string         `db:"room_number"`
	RoomType      string         `db:"room_type"`
	PricePerNight float64        `db:"price_per_night"`
	Capacity      int            `db:"capacity"`
	Available     bool           `db:"available"`
	Rating        float64        `db:"rating"`
	Amenities     pq.StringArray `db:"amenities"`
	model.Metadata
}
