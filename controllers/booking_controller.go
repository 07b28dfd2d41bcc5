package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Ujama-Surur/SmartStay/middleware"
	"github.com/Ujama-Surur/SmartStay/services"
	"github.com/Ujama-Surur/SmartStay/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Reservations *services.ReservationService
}

func NewBookingController(reservations *services.ReservationService) *BookingController {
	return &BookingController{Reservations: reservations}
}

type createBookingPayload struct {
	RoomID       uint   `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// CreateBooking handles POST /api/bookings. The guest id comes from the
// token, never from the payload.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room_id, check_in_date and check_out_date required")
		return
	}

	guestID := middleware.CurrentUserID(c)
	booking, err := bc.Reservations.CreateBooking(payload.RoomID, guestID, payload.CheckInDate, payload.CheckOutDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDateRange):
			utils.JSONError(c, http.StatusBadRequest, "check-out date must be after check-in date")
		case errors.Is(err, services.ErrRoomUnavailable):
			utils.JSONError(c, http.StatusConflict, "room not available")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// CancelBooking handles POST /api/bookings/:id/cancel. A booking that
// is missing, not owned by the caller, or already cancelled leaves all
// state untouched; the response says so without failing.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	found, err := bc.Reservations.CancelBooking(bookingID, middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking")
		return
	}
	if !found {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": false, "message": "no matching booking"})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": true, "message": "booking cancelled successfully"})
}

// ProcessPayment handles POST /api/bookings/:id/payment.
func (bc *BookingController) ProcessPayment(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := bc.Reservations.ProcessPayment(bookingID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, services.ErrBookingCancelled):
			utils.JSONError(c, http.StatusConflict, "cannot pay a cancelled booking")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to process payment")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusOK, booking)
}

// ListMyBookings handles GET /api/bookings/my.
func (bc *BookingController) ListMyBookings(c *gin.Context) {
	bookings, err := bc.Reservations.ListMyBookings(middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// ListAllBookings handles GET /api/bookings.
func (bc *BookingController) ListAllBookings(c *gin.Context) {
	bookings, err := bc.Reservations.ListAllBookings()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
