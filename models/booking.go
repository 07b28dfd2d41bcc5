package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking lifecycle. Status moves confirmed -> cancelled one way only;
// payment moves pending -> paid one way only. Bookings are never deleted.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

type Booking struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ReferenceCode string         `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	RoomID        uint           `gorm:"column:room_id;index" json:"room_id"`
	GuestID       uint           `gorm:"column:guest_id;index" json:"guest_id"`
	CheckInDate   datatypes.Date `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate  datatypes.Date `gorm:"column:check_out_date" json:"check_out_date"`

	// TotalAmount is frozen at creation: nights x the room's price per
	// night as of booking time. Later price changes do not touch it.
	TotalAmount float64 `gorm:"column:total_amount" json:"total_amount"`

	Status        string `gorm:"size:32;index" json:"status"`
	PaymentStatus string `gorm:"column:payment_status;size:32" json:"payment_status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Room  Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Guest User `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
}
