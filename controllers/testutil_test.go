package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/homehero/booking-app/db"
	"github.com/homehero/booking-app/middleware"
	"github.com/homehero/booking-app/models"
	"github.com/homehero/booking-app/routes"
)

var testDBCounter int64

// newTestApp wires the full route tree against a fresh in-memory SQLite
// database. Redis stays nil, so the feed publish and the token denylist are
// no-ops, which is exactly the degraded mode the handlers support.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test_secret")

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = gdb.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.StaffMember{},
		&models.Profile{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.DB = gdb

	app := fiber.New()
	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupStaffRoutes(app)
	routes.SetupProfileRoutes(app)
	routes.SetupNotificationRoutes(app)
	routes.SetupAnalyticsRoutes(app)
	return app
}

func createUser(t *testing.T, name, email, role string) models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    email,
		Password: "$2a$10$0000000000000000000000000000000000000000000000000000.", // not used
		Role:     role,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(middleware.JWTSecret())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
