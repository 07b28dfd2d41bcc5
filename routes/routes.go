package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Ujama-Surur/SmartStay/controllers"
	"github.com/Ujama-Surur/SmartStay/middleware"
	"github.com/Ujama-Surur/SmartStay/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the route tree. Mutating
// routes sit behind the permission gate; dashboards behind role checks.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	sc *controllers.StaffController,
	dc *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/register", ac.Register)
		}

		authed := api.Group("")
		authed.Use(middleware.Authenticated())
		{
			authed.GET("/roles", ac.ListRoles)

			rooms := authed.Group("/rooms")
			{
				rooms.GET("", rc.ListRooms)
				rooms.POST("", middleware.RequirePermission(models.PermManageRooms), rc.CreateRoom)
			}

			bookings := authed.Group("/bookings")
			{
				bookings.GET("", middleware.RequirePermission(models.PermManageBookings), bc.ListAllBookings)
				bookings.POST("", middleware.RequirePermission(models.PermBookRoom), bc.CreateBooking)
				bookings.GET("/my", middleware.RequirePermission(models.PermViewOwnBookings), bc.ListMyBookings)
				bookings.POST("/:id/cancel", middleware.RequirePermission(models.PermCancelBooking), bc.CancelBooking)
				bookings.POST("/:id/payment", middleware.RequirePermission(models.PermManageBookings), bc.ProcessPayment)
			}

			staff := authed.Group("/staff")
			staff.Use(middleware.RequirePermission(models.PermManageStaff))
			{
				staff.GET("", sc.ListStaff)
				staff.POST("", sc.AddStaff)
				staff.DELETE("/:id", sc.DeleteStaff)
			}

			dashboard := authed.Group("/dashboard")
			{
				dashboard.GET("/admin", middleware.RequireRole(models.RoleAdmin), dc.AdminDashboard)
				dashboard.GET("/receptionist", middleware.RequireRole(models.RoleReceptionist), dc.ReceptionistDashboard)
				dashboard.GET("/guest", middleware.RequireRole(models.RoleGuest), dc.GuestDashboard)
			}
		}
	}

	return r
}
