package services

import (
	"fmt"
	"time"

	"github.com/Ujama-Surur/SmartStay/models"

	"gorm.io/gorm"
)

// DashboardService serves the per-role dashboard counters. Pure
// aggregate reads, no invariants.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type AdminStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalRooms     int64 `json:"total_rooms"`
	AvailableRooms int64 `json:"available_rooms"`
	TotalBookings  int64 `json:"total_bookings"`
	ActiveBookings int64 `json:"active_bookings"`
}

type ReceptionistStats struct {
	TodayCheckins  int64 `json:"today_checkins"`
	TodayCheckouts int64 `json:"today_checkouts"`
	AvailableRooms int64 `json:"available_rooms"`
}

type GuestStats struct {
	LoyaltyPoints  int   `json:"loyalty_points"`
	ActiveBookings int64 `json:"active_bookings"`
}

func (s *DashboardService) AdminStats() (*AdminStats, error) {
	var stats AdminStats
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, s.DB.Model(&models.User{})},
		{&stats.TotalRooms, s.DB.Model(&models.Room{})},
		{&stats.AvailableRooms, s.DB.Model(&models.Room{}).Where("is_available = ?", true)},
		{&stats.TotalBookings, s.DB.Model(&models.Booking{})},
		{&stats.ActiveBookings, s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusConfirmed)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to load admin stats: %w", err)
		}
	}
	return &stats, nil
}

func (s *DashboardService) ReceptionistStats() (*ReceptionistStats, error) {
	today := time.Now().Format(dateLayout)

	var stats ReceptionistStats
	if err := s.DB.Model(&models.Booking{}).
		Where("check_in_date = ?", today).
		Count(&stats.TodayCheckins).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's check-ins: %w", err)
	}
	if err := s.DB.Model(&models.Booking{}).
		Where("check_out_date = ?", today).
		Count(&stats.TodayCheckouts).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's check-outs: %w", err)
	}
	if err := s.DB.Model(&models.Room{}).
		Where("is_available = ?", true).
		Count(&stats.AvailableRooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count available rooms: %w", err)
	}
	return &stats, nil
}

func (s *DashboardService) GuestStats(guestID uint) (*GuestStats, error) {
	var user models.User
	if err := s.DB.First(&user, guestID).Error; err != nil {
		return nil, fmt.Errorf("failed to load guest %d: %w", guestID, err)
	}

	var stats GuestStats
	stats.LoyaltyPoints = user.LoyaltyPoints
	if err := s.DB.Model(&models.Booking{}).
		Where("guest_id = ? AND status = ?", guestID, models.BookingStatusConfirmed).
		Count(&stats.ActiveBookings).Error; err != nil {
		return nil, fmt.Errorf("failed to count active bookings: %w", err)
	}
	return &stats, nil
}
