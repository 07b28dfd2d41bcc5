package models

import (
	"time"

	"gorm.io/gorm"
)

// Room types offered by the hotel.
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
)

type Room struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	RoomNumber    string  `gorm:"column:room_number;uniqueIndex;size:50" json:"room_number"`
	RoomType      string  `gorm:"column:room_type;size:50" json:"room_type"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	Capacity      int     `json:"capacity"`

	// IsAvailable is false exactly when one confirmed booking holds the
	// room. Only the reservation service flips it, always in the same
	// transaction that writes the booking row.
	IsAvailable bool `gorm:"column:is_available;default:true" json:"is_available"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
