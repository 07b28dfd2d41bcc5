package controllers

import (
	"net/http"

	"github.com/Ujama-Surur/SmartStay/middleware"
	"github.com/Ujama-Surur/SmartStay/services"
	"github.com/Ujama-Surur/SmartStay/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Stats *services.DashboardService
}

func NewDashboardController(stats *services.DashboardService) *DashboardController {
	return &DashboardController{Stats: stats}
}

// AdminDashboard handles GET /api/dashboard/admin.
func (dc *DashboardController) AdminDashboard(c *gin.Context) {
	stats, err := dc.Stats.AdminStats()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// ReceptionistDashboard handles GET /api/dashboard/receptionist.
func (dc *DashboardController) ReceptionistDashboard(c *gin.Context) {
	stats, err := dc.Stats.ReceptionistStats()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// GuestDashboard handles GET /api/dashboard/guest.
func (dc *DashboardController) GuestDashboard(c *gin.Context) {
	stats, err := dc.Stats.GuestStats(middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
