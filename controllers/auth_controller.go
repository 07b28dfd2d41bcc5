package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Ujama-Surur/SmartStay/middleware"
	"github.com/Ujama-Surur/SmartStay/models"
	"github.com/Ujama-Surur/SmartStay/services"
	"github.com/Ujama-Surur/SmartStay/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerPayload struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := ac.Users.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := middleware.CreateToken(user.ID, user.Role, 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":    token,
		"user":     user,
		"greeting": user.Greeting(),
	})
}

// Register handles POST /api/auth/register. Self-service registration
// always creates a guest account.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid registration payload")
		return
	}

	user, err := ac.Users.RegisterGuest(payload.Username, payload.Email, payload.Password, payload.Phone)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateRecord) {
			utils.JSONError(c, http.StatusConflict, "username or email already taken")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}

// ListRoles handles GET /api/roles: the static role table with each
// role's permission set and display title.
func (ac *AuthController) ListRoles(c *gin.Context) {
	roles := []string{models.RoleAdmin, models.RoleReceptionist, models.RoleGuest, models.RoleStaff}
	out := make([]gin.H, 0, len(roles))
	for _, role := range roles {
		out = append(out, gin.H{
			"role":        role,
			"title":       models.RoleTitle(role),
			"permissions": models.PermissionsFor(role),
		})
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}
