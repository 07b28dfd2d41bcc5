package controllers

import (
	"errors"
	"net/http"

	"github.com/Ujama-Surur/SmartStay/services"
	"github.com/Ujama-Surur/SmartStay/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Users *services.UserService
}

func NewStaffController(users *services.UserService) *StaffController {
	return &StaffController{Users: users}
}

type addStaffPayload struct {
	Username string  `json:"username" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role" binding:"required"`
	Position string  `json:"position"`
	Salary   float64 `json:"salary"`
}

// ListStaff handles GET /api/staff.
func (sc *StaffController) ListStaff(c *gin.Context) {
	staff, err := sc.Users.ListStaff()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list staff")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

// AddStaff handles POST /api/staff. Only staff and receptionist
// accounts can be created here.
func (sc *StaffController) AddStaff(c *gin.Context) {
	var payload addStaffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff payload")
		return
	}

	user, err := sc.Users.AddStaff(
		payload.Username, payload.Email, payload.Password,
		payload.Role, payload.Position, payload.Salary,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			utils.JSONError(c, http.StatusBadRequest, "role must be staff or receptionist")
		case errors.Is(err, services.ErrDuplicateRecord):
			utils.JSONError(c, http.StatusConflict, "username or email already taken")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to add staff member")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}

// DeleteStaff handles DELETE /api/staff/:id. Admin and guest accounts
// are not deletable through this route.
func (sc *StaffController) DeleteStaff(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := sc.Users.DeleteStaff(userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "no such staff member")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete staff member")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "staff member deleted successfully"})
}
