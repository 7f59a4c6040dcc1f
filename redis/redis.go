package redis

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// Init connects to Redis. The notification feed and the logout denylist
// degrade gracefully when Redis is unavailable, so a failed connection is a
// warning, not a crash.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("Warning: REDIS_ADDR not set, notification feed and token denylist disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}

// FeedChannel returns the pub/sub channel for a notification channel id
// ("admin" or a numeric user id).
func FeedChannel(channel string) string {
	return "notifications:" + channel
}

// PublishNotificationEvent nudges live feed subscribers for the channel to
// reload their unread list. Best-effort: no-op without Redis.
func PublishNotificationEvent(channel string) {
	if Client == nil {
		return
	}
	if err := Client.Publish(Ctx, FeedChannel(channel), "refresh").Err(); err != nil {
		log.Printf("Failed to publish notification event for %s: %v", channel, err)
	}
}

// DenylistToken records a logged-out token until its natural expiry.
func DenylistToken(token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, "denylist:"+token, "1", ttl).Err()
}

// IsTokenDenylisted reports whether a token was invalidated by logout.
func IsTokenDenylisted(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, "denylist:"+token).Result()
	if err != nil {
		log.Printf("Failed to check token denylist: %v", err)
		return false
	}
	return n > 0
}
