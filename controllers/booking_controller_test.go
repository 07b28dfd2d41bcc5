package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ujama-Surur/SmartStay/middleware"
	"github.com/Ujama-Surur/SmartStay/models"
	"github.com/Ujama-Surur/SmartStay/services"
)

func newMockedRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm over sqlmock: %v", err)
	}

	bc := NewBookingController(services.NewReservationService(db))
	r := gin.New()
	authed := r.Group("/api", middleware.Authenticated())
	authed.POST("/bookings", middleware.RequirePermission(models.PermBookRoom), bc.CreateBooking)
	authed.POST("/bookings/:id/cancel", middleware.RequirePermission(models.PermCancelBooking), bc.CancelBooking)
	return r, mock
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func guestToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.CreateToken(4, models.RoleGuest, time.Hour)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	return token
}

func TestCreateBookingRejectsBadDateRange(t *testing.T) {
	r, mock := newMockedRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", guestToken(t),
		`{"room_id":1,"check_in_date":"2024-06-04","check_out_date":"2024-06-01"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no SQL should run for an invalid date range: %v", err)
	}
}

func TestCreateBookingReportsRoomUnavailable(t *testing.T) {
	r, mock := newMockedRouter(t)

	taken := sqlmock.NewRows([]string{"id", "room_number", "room_type", "price_per_night", "capacity", "is_available"}).
		AddRow(1, "101", models.RoomTypeSingle, 50000.0, 1, false)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms` WHERE (.+)FOR UPDATE").WillReturnRows(taken)
	mock.ExpectRollback()

	w := doJSON(t, r, http.MethodPost, "/api/bookings", guestToken(t),
		`{"room_id":1,"check_in_date":"2024-06-01","check_out_date":"2024-06-04"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestCreateBookingRequiresBookRoomPermission(t *testing.T) {
	r, _ := newMockedRouter(t)

	staffToken, err := middleware.CreateToken(3, models.RoleStaff, time.Hour)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	w := doJSON(t, r, http.MethodPost, "/api/bookings", staffToken,
		`{"room_id":1,"check_in_date":"2024-06-01","check_out_date":"2024-06-04"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestCancelBookingNoMatchIsReportedNotFailed(t *testing.T) {
	r, mock := newMockedRouter(t)

	empty := sqlmock.NewRows([]string{"id", "room_id", "guest_id", "status", "payment_status", "total_amount"})
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings` WHERE (.+)FOR UPDATE").WillReturnRows(empty)
	mock.ExpectCommit()

	w := doJSON(t, r, http.MethodPost, "/api/bookings/99/cancel", guestToken(t), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for no-op cancel", w.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Cancelled bool   `json:"cancelled"`
			Message   string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Data.Cancelled {
		t.Fatalf("expected success with cancelled=false, got %+v", resp)
	}
	if resp.Data.Message != "no matching booking" {
		t.Fatalf("message = %q, want %q", resp.Data.Message, "no matching booking")
	}
}

func TestCancelBookingRejectsNonNumericID(t *testing.T) {
	r, mock := newMockedRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/abc/cancel", guestToken(t), "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no SQL should run for a bad id: %v", err)
	}
}
