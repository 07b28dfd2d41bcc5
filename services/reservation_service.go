package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ujama-Surur/SmartStay/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// ReservationService is the sole writer of the coupled room-availability
// and booking-lifecycle state. Every mutation runs inside one
// transaction so a room flag can never get out of step with its booking.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// Nights returns the whole-day difference between check-in and
// check-out, the sole pricing unit.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// ParseStayDates parses date-only check-in/check-out strings and
// enforces check-out strictly after check-in.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad check_in_date %q", ErrInvalidDateRange, checkIn)
	}
	co, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad check_out_date %q", ErrInvalidDateRange, checkOut)
	}
	if !co.After(ci) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return ci, co, nil
}

// CreateBooking reserves a room for a guest. The room row is locked for
// the duration of the transaction, so of two concurrent calls on the
// same room exactly one wins; the loser observes is_available=false and
// gets ErrRoomUnavailable.
func (s *ReservationService) CreateBooking(roomID, guestID uint, checkIn, checkOut string) (*models.Booking, error) {
	ci, co, err := ParseStayDates(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomUnavailable
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}
		if !room.IsAvailable {
			return ErrRoomUnavailable
		}

		nights := Nights(ci, co)
		booking = models.Booking{
			ReferenceCode: uuid.NewString(),
			RoomID:        room.ID,
			GuestID:       guestID,
			CheckInDate:   datatypes.Date(ci),
			CheckOutDate:  datatypes.Date(co),
			TotalAmount:   float64(nights) * room.PricePerNight,
			Status:        models.BookingStatusConfirmed,
			PaymentStatus: models.PaymentStatusPending,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Update("is_available", false).Error; err != nil {
			return fmt.Errorf("failed to update room availability: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels a confirmed booking owned by guestID and frees
// its room. A booking that is missing, not owned, or already cancelled
// is left untouched and reported as found=false; repeating the call is
// a no-op.
func (s *ReservationService) CancelBooking(bookingID, guestID uint) (bool, error) {
	found := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND guest_id = ? AND status = ?",
				bookingID, guestID, models.BookingStatusConfirmed).
			First(&booking).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		if err := tx.Model(&booking).
			Update("status", models.BookingStatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel booking %d: %w", bookingID, err)
		}

		// One room holds at most one active booking, so the flag can be
		// raised unconditionally.
		if err := tx.Model(&models.Room{}).
			Where("id = ?", booking.RoomID).
			Update("is_available", true).Error; err != nil {
			return fmt.Errorf("failed to release room %d: %w", booking.RoomID, err)
		}
		found = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// ProcessPayment marks a booking as paid. Paying an already-paid
// booking is a no-op; paying a cancelled booking is rejected with
// ErrBookingCancelled.
func (s *ReservationService) ProcessPayment(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}
		if booking.Status == models.BookingStatusCancelled {
			return ErrBookingCancelled
		}
		if booking.PaymentStatus == models.PaymentStatusPaid {
			return nil
		}
		if err := tx.Model(&booking).
			Update("payment_status", models.PaymentStatusPaid).Error; err != nil {
			return fmt.Errorf("failed to record payment for booking %d: %w", bookingID, err)
		}
		booking.PaymentStatus = models.PaymentStatusPaid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListMyBookings returns a guest's bookings with their rooms, newest first.
func (s *ReservationService) ListMyBookings(guestID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.
		Preload("Room").
		Where("guest_id = ?", guestID).
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings for guest %d: %w", guestID, err)
	}
	return bookings, nil
}

// ListAllBookings returns every booking with guest and room details,
// newest first.
func (s *ReservationService) ListAllBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.
		Preload("Guest").
		Preload("Room").
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
