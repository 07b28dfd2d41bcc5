package services

import (
	"fmt"
	"strings"

	"github.com/Ujama-Surur/SmartStay/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// ListRooms returns all rooms ordered by room number.
func (s *RoomService) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// CreateRoom adds a room to inventory. New rooms start available.
func (s *RoomService) CreateRoom(room models.Room) (*models.Room, error) {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	room.IsAvailable = true
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}
