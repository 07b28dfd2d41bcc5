package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ujama-Surur/SmartStay/models"
)

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticated()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c), "role": c.GetString(ContextRole)})
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken(4, models.RoleGuest, time.Hour)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.UserID != 4 || claims.Role != models.RoleGuest {
		t.Fatalf("claims = %+v, want user 4 / guest", claims)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := CreateToken(4, models.RoleGuest, -time.Minute)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestAuthenticatedRequiresBearerToken(t *testing.T) {
	r := protectedRouter()

	if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status = %d, want 401", w.Code)
	}
	if w := doGet(r, "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", w.Code)
	}

	token, _ := CreateToken(4, models.RoleGuest, time.Hour)
	if w := doGet(r, token); w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", w.Code)
	}
}

func TestRequirePermissionGatesByRole(t *testing.T) {
	r := protectedRouter(RequirePermission(models.PermManageStaff))

	guestToken, _ := CreateToken(4, models.RoleGuest, time.Hour)
	if w := doGet(r, guestToken); w.Code != http.StatusForbidden {
		t.Fatalf("guest on manage_staff: status = %d, want 403", w.Code)
	}

	adminToken, _ := CreateToken(1, models.RoleAdmin, time.Hour)
	if w := doGet(r, adminToken); w.Code != http.StatusOK {
		t.Fatalf("admin on manage_staff: status = %d, want 200", w.Code)
	}
}

func TestRequireRoleMatchesExactRole(t *testing.T) {
	r := protectedRouter(RequireRole(models.RoleReceptionist))

	staffToken, _ := CreateToken(3, models.RoleStaff, time.Hour)
	if w := doGet(r, staffToken); w.Code != http.StatusForbidden {
		t.Fatalf("staff on receptionist route: status = %d, want 403", w.Code)
	}

	recepToken, _ := CreateToken(2, models.RoleReceptionist, time.Hour)
	if w := doGet(r, recepToken); w.Code != http.StatusOK {
		t.Fatalf("receptionist on receptionist route: status = %d, want 200", w.Code)
	}
}
