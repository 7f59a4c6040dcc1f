package controllers

import (
	"log"

	"github.com/gofiber/contrib/websocket"

	"github.com/homehero/booking-app/models"
	"github.com/homehero/booking-app/redis"
)

// NotificationFeedHandler streams the caller's notification list over a
// websocket. On every event published to the caller's Redis channel the
// server re-reads the list and pushes it wholesale; the client replaces its
// local state rather than merging. Requires Protected() to have run before
// the upgrade so locals carry userID and role.
func NotificationFeedHandler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		defer conn.Close()

		userID, ok := conn.Locals("userID").(uint)
		if !ok {
			conn.WriteJSON(map[string]string{"error": "User ID not found in context"})
			return
		}
		channel := models.UserChannel(userID)
		if role, _ := conn.Locals("role").(string); role == models.RoleAdmin {
			channel = models.AdminChannel
		}

		// Initial snapshot so the client renders without waiting for an event.
		if err := pushNotifications(conn, channel); err != nil {
			return
		}

		if redis.Client == nil {
			// No pub/sub available: hold the socket open so the client can
			// fall back to polling the REST endpoint, and return on close.
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}

		sub := redis.Client.Subscribe(redis.Ctx, redis.FeedChannel(channel))
		defer sub.Close()

		// The read loop only exists to notice the client going away.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		events := sub.Channel()
		for {
			select {
			case <-closed:
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				if err := pushNotifications(conn, channel); err != nil {
					return
				}
			}
		}
	}
}

func pushNotifications(conn *websocket.Conn, channel string) error {
	notifications, err := ListNotifications(channel)
	if err != nil {
		log.Printf("Feed query failed for %s: %v", channel, err)
		return err
	}
	return conn.WriteJSON(notifications)
}
