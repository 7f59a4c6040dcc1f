package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/homehero/booking-app/db"
	"github.com/homehero/booking-app/models"
)

func TestCreateBookingStampsOwner(t *testing.T) {
	app := newTestApp(t)
	user := createUser(t, "Alice", "alice@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "POST", "/bookings", tokenFor(t, user), map[string]interface{}{
		"serviceName":  "House Cleaning",
		"customerName": "Alice",
		"email":        "alice@example.com",
		"date":         "2024-02-20",
		"time":         "09:00",
		"userId":       999,                    // must be ignored
		"status":       "completed",            // must be ignored
		"createdAt":    "2030-01-01T00:00:00Z", // must be ignored
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var booking models.Booking
	decodeBody(t, resp, &booking)
	if booking.UserID != user.ID {
		t.Fatalf("expected userId %d, got %d", user.ID, booking.UserID)
	}
	if booking.Status != models.StatusPending {
		t.Fatalf("expected status pending, got %s", booking.Status)
	}
	if booking.Reference == "" {
		t.Fatalf("expected a booking reference")
	}
	// The creation time is server-stamped, not the forged future value.
	if d := time.Since(booking.CreatedAt); d < 0 || d > time.Minute {
		t.Fatalf("expected a server-stamped createdAt, got %s", booking.CreatedAt)
	}

	// The admin notification is written in the same transaction.
	var notifications []models.Notification
	if err := db.DB.Where("user_id = ?", models.AdminChannel).Find(&notifications).Error; err != nil {
		t.Fatalf("fetch notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 admin notification, got %d", len(notifications))
	}
	n := notifications[0]
	if n.Type != models.NotificationNewBooking {
		t.Fatalf("expected type new_booking, got %s", n.Type)
	}
	if n.BookingID != booking.ID {
		t.Fatalf("expected bookingId %d, got %d", booking.ID, n.BookingID)
	}
	if n.Read {
		t.Fatalf("expected notification to start unread")
	}
}

func TestCreateBookingRequiresServiceAndSlot(t *testing.T) {
	app := newTestApp(t)
	user := createUser(t, "Alice", "alice@example.com", models.RoleCustomer)

	resp := doJSON(t, app, "POST", "/bookings", tokenFor(t, user), map[string]interface{}{
		"date": "2024-02-20",
		"time": "09:00",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without service, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/bookings", tokenFor(t, user), map[string]interface{}{
		"serviceName": "House Cleaning",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without date/time, got %d", resp.StatusCode)
	}
}

func TestCreateBookingCanonicalizesServiceName(t *testing.T) {
	app := newTestApp(t)
	user := createUser(t, "Alice", "alice@example.com", models.RoleCustomer)

	service := models.Service{Title: "House Cleaning", Category: "Cleaning"}
	if err := db.DB.Create(&service).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}

	resp := doJSON(t, app, "POST", "/bookings", tokenFor(t, user), map[string]interface{}{
		"serviceId":   service.ID,
		"serviceName": "whatever the client typed",
		"date":        "2024-02-20",
		"time":        "09:00",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var booking models.Booking
	decodeBody(t, resp, &booking)
	if booking.ServiceName != "House Cleaning" {
		t.Fatalf("expected canonical service name, got %q", booking.ServiceName)
	}

	resp = doJSON(t, app, "POST", "/bookings", tokenFor(t, user), map[string]interface{}{
		"serviceId": 9999,
		"date":      "2024-02-20",
		"time":      "09:00",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown service id, got %d", resp.StatusCode)
	}
}

func TestGetBookingsFiltersByOwner(t *testing.T) {
	app := newTestApp(t)
	alice := createUser(t, "Alice", "alice@example.com", models.RoleCustomer)
	bob := createUser(t, "Bob", "bob@example.com", models.RoleCustomer)
	admin := createUser(t, "Root", "admin@example.com", models.RoleAdmin)

	base := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	seed := []models.Booking{
		{UserID: alice.ID, ServiceName: "Plumbing Repair", Date: "2024-02-20", Time: "09:00", CreatedAt: base},
		{UserID: alice.ID, ServiceName: "Lawn Care", Date: "2024-02-21", Time: "10:00", CreatedAt: base.Add(time.Hour)},
		{UserID: bob.ID, ServiceName: "Pest Control", Date: "2024-02-22", Time: "11:00", CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range seed {
		if err := db.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}

	resp := doJSON(t, app, "GET", "/bookings", tokenFor(t, alice), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var mine []models.Booking
	decodeBody(t, resp, &mine)
	if len(mine) != 2 {
		t.Fatalf("expected 2 bookings for alice, got %d", len(mine))
	}
	for _, b := range mine {
		if b.UserID != alice.ID {
			t.Fatalf("got booking for user %d in alice's list", b.UserID)
		}
	}
	if !mine[0].CreatedAt.After(mine[1].CreatedAt) {
		t.Fatalf("expected createdAt descending order")
	}

	resp = doJSON(t, app, "GET", "/bookings", tokenFor(t, admin), nil)
	var all []models.Booking
	decodeBody(t, resp, &all)
	if len(all) != 3 {
		t.Fatalf("expected 3 bookings for admin, got %d", len(all))
	}
	if all[0].ServiceName != "Pest Control" {
		t.Fatalf("expected newest booking first, got %q", all[0].ServiceName)
	}
}

func TestGetBookingOwnership(t *testing.T) {
	app := newTestApp(t)
	alice := createUser(t, "Alice", "alice@example.com", models.RoleCustomer)
	bob := createUser(t, "Bob", "bob@example.com", models.RoleCustomer)
	admin := createUser(t, "Root", "admin@example.com", models.RoleAdmin)

	booking := models.Booking{UserID: alice.ID, ServiceName: "HVAC Service", Date: "2024-03-01", Time: "14:00"}
	if err := db.DB.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	if resp := doJSON(t, app, "GET", "/bookings/1", tokenFor(t, bob), nil); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", resp.StatusCode)
	}
	if resp := doJSON(t, app, "GET", "/bookings/1", tokenFor(t, alice), nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", resp.StatusCode)
	}
	if resp := doJSON(t, app, "GET", "/bookings/1", tokenFor(t, admin), nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.StatusCode)
	}
	if resp := doJSON(t, app, "GET", "/bookings/42", tokenFor(t, admin), nil); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing booking, got %d", resp.StatusCode)
	}
}

func TestUpdateBookingStatusNotifiesOwnerOnce(t *testing.T) {
	app := newTestApp(t)
	alice := createUser(t, "Alice", "alice@example.com", models.RoleCustomer)
	admin := createUser(t, "Root", "admin@example.com", models.RoleAdmin)

	booking := models.Booking{UserID: alice.ID, ServiceName: "House Cleaning", Date: "2024-02-20", Time: "09:00", Status: models.StatusPending}
	if err := db.DB.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	resp := doJSON(t, app, "PATCH", "/bookings/1/status", tokenFor(t, admin), map[string]string{
		"status": "confirmed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var updated models.Booking
	decodeBody(t, resp, &updated)
	if updated.Status != models.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", updated.Status)
	}

	var count int64
	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", models.UserChannel(alice.ID), models.NotificationStatusUpdate).
		Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 status notification, got %d", count)
	}

	// Re-submitting the same status must not write another notification.
	resp = doJSON(t, app, "PATCH", "/bookings/1/status", tokenFor(t, admin), map[string]string{
		"status": "confirmed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on no-op status, got %d", resp.StatusCode)
	}
	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", models.UserChannel(alice.ID), models.NotificationStatusUpdate).
		Count(&count)
	if count != 1 {
		t.Fatalf("expected still 1 status notification after no-op, got %d", count)
	}
}

func TestUpdateBookingStatusGuards(t *testing.T) {
	app := newTestApp(t)
	alice := createUser(t, "Alice", "alice@example.com", models.RoleCustomer)
	admin := createUser(t, "Root", "admin@example.com", models.RoleAdmin)

	booking := models.Booking{UserID: alice.ID, ServiceName: "Lawn Care", Date: "2024-02-20", Time: "09:00"}
	if err := db.DB.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	resp := doJSON(t, app, "PATCH", "/bookings/1/status", tokenFor(t, alice), map[string]string{
		"status": "confirmed",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "PATCH", "/bookings/1/status", tokenFor(t, admin), map[string]string{
		"status": "rescheduled",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", resp.StatusCode)
	}
}

func TestDeleteBooking(t *testing.T) {
	app := newTestApp(t)
	alice := createUser(t, "Alice", "alice@example.com", models.RoleCustomer)
	admin := createUser(t, "Root", "admin@example.com", models.RoleAdmin)

	booking := models.Booking{UserID: alice.ID, ServiceName: "Pest Control", Date: "2024-02-20", Time: "09:00"}
	if err := db.DB.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	if resp := doJSON(t, app, "DELETE", "/bookings/1", tokenFor(t, alice), nil); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin delete, got %d", resp.StatusCode)
	}
	if resp := doJSON(t, app, "DELETE", "/bookings/1", tokenFor(t, admin), nil); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if resp := doJSON(t, app, "GET", "/bookings/1", tokenFor(t, admin), nil); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestBookingsRequireAuth(t *testing.T) {
	app := newTestApp(t)
	if resp := doJSON(t, app, "GET", "/bookings", "", nil); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}
