package helper

import (
	"context"
	"fmt"

	"zenstay/internal/domains/room/model"
	"zenstay/internal/domains/room/repository"
	gDto "zenstay/shared/dto"
	gModel "zenstay/shared/model"
	"zenstay/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const seedUser = "system"

// Seeder fills the room catalog with sample data on first startup.
type Seeder struct {
	rooms repository.Room
}

func NewSeeder(rooms repository.Room) *Seeder {
	return &Seeder{
		rooms: rooms,
	}
}

// Run inserts the sample room catalog when the rooms table is empty.
// Existing data is never touched, so repeated startups are safe.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.rooms.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("failed to count rooms before seeding: %w", err)
	}

	if count > 0 {
		log.Info().Int("rooms", count).Msg("Rooms already present, skipping seed")

		return nil
	}

	if err := s.rooms.InsertBulk(ctx, sampleRooms()); err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	log.Info().Msg("Sample rooms with ratings and amenities initialized successfully")

	return nil
}

func sampleRooms() []model.Room {
	now := timezone.Now()
	metadata := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  seedUser,
		ModifiedBy: seedUser,
	}

	return []model.Room{
		{
			ID:            uuid.NewString(),
			RoomNumber:    "101",
			RoomType:      "Deluxe Room",
			PricePerNight: 3500,
			Capacity:      2,
			Available:     true,
			Rating:        4.5,
			Amenities:     pq.StringArray{"WiFi", "AC", "TV", "Room Service"},
			Metadata:      metadata,
		},
		{
			ID:            uuid.NewString(),
			RoomNumber:    "102",
			RoomType:      "Premium Suite",
			PricePerNight: 5500,
			Capacity:      4,
			Available:     true,
			Rating:        4.7,
			Amenities:     pq.StringArray{"WiFi", "AC", "TV", "Mini Bar", "Balcony"},
			Metadata:      metadata,
		},
		{
			ID:            uuid.NewString(),
			RoomNumber:    "201",
			RoomType:      "Executive Room",
			PricePerNight: 4200,
			Capacity:      3,
			Available:     true,
			Rating:        4.3,
			Amenities:     pq.StringArray{"WiFi", "AC", "TV", "Work Desk"},
			Metadata:      metadata,
		},
		{
			ID:            uuid.NewString(),
			RoomNumber:    "202",
			RoomType:      "Royal Suite",
			PricePerNight: 8500,
			Capacity:      4,
			Available:     true,
			Rating:        4.9,
			Amenities:     pq.StringArray{"WiFi", "AC", "TV", "Jacuzzi", "Butler Service"},
			Metadata:      metadata,
		},
		{
			ID:            uuid.NewString(),
			RoomNumber:    "301",
			RoomType:      "Business Room",
			PricePerNight: 4800,
			Capacity:      2,
			Available:     true,
			Rating:        4.4,
			Amenities:     pq.StringArray{"WiFi", "AC", "TV", "Conference Setup"},
			Metadata:      metadata,
		},
		{
			ID:            uuid.NewString(),
			RoomNumber:    "302",
			RoomType:      "Family Suite",
			PricePerNight: 6200,
			Capacity:      6,
			Available:     true,
			Rating:        4.6,
			Amenities:     pq.StringArray{"WiFi", "AC", "TV", "Kitchen", "Kids Area"},
			Metadata:      metadata,
		},
	}
}
