package middleware

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "kinetic:idempotency:"

// IdempotencyMiddleware replays the cached response of a mutating request
// whose X-Correlation-ID was already seen within ttl. Keys are scoped to the
// device id set by VerifyDeviceToken. A nil client disables it.
func IdempotencyMiddleware(redisClient *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil {
			return c.Next()
		}

		// Only apply to mutating methods
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPatch, fiber.MethodPut, fiber.MethodDelete:
		default:
			return c.Next()
		}

		correlationID := c.Get("X-Correlation-ID")
		if correlationID == "" {
			return c.Next()
		}

		deviceID, _ := c.Locals(DeviceIDKey).(string)
		key := fmt.Sprintf("%s%s:%s %s %s", idempotencyKeyPrefix, deviceID, c.Method(), c.Path(), correlationID)
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		cached, err := redisClient.Get(ctx, key).Bytes()
		if err == nil && len(cached) > 0 {
			c.Set("X-Idempotent-Replay", "true")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(cached)
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Cache successful responses (2xx status codes)
		statusCode := c.Response().StatusCode()
		if statusCode >= 200 && statusCode < 300 {
			body := c.Response().Body()
			if len(body) > 0 {
				if err := redisClient.Set(ctx, key, body, ttl).Err(); err != nil {
					log.Printf("Warning: failed to cache idempotent response: %v", err)
				}
			}
		}

		return nil
	}
}
