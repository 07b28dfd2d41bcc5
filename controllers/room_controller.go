package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ujama-Surur/SmartStay/models"
	"github.com/Ujama-Surur/SmartStay/services"
	"github.com/Ujama-Surur/SmartStay/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

type createRoomPayload struct {
	RoomNumber    string  `json:"room_number" binding:"required"`
	RoomType      string  `json:"room_type" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
	Capacity      int     `json:"capacity" binding:"required,gt=0"`
}

// ListRooms handles GET /api/rooms, ordered by room number.
func (rc *RoomController) ListRooms(c *gin.Context) {
	rooms, err := rc.Rooms.ListRooms()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// CreateRoom handles POST /api/rooms.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload")
		return
	}

	room, err := rc.Rooms.CreateRoom(models.Room{
		RoomNumber:    payload.RoomNumber,
		RoomType:      payload.RoomType,
		PricePerNight: payload.PricePerNight,
		Capacity:      payload.Capacity,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateRecord) {
			utils.JSONError(c, http.StatusConflict,
				fmt.Sprintf("room number %q already exists", payload.RoomNumber))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, room)
}
