package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mansoorceksport/kinetic/internal/domain"
)

// DeviceIDKey is the fiber.Locals key holding the authenticated device id
const DeviceIDKey = "device_id"

// VerifyDeviceToken validates an HS256 bearer token and stores its device id.
// An empty secret disables the check.
func VerifyDeviceToken(jwtSecret string) fiber.Handler {
	if jwtSecret == "" {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization token",
			})
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.ParseWithClaims(tokenString, &domain.DeviceClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		claims, ok := token.Claims.(*domain.DeviceClaims)
		if !ok || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token claims",
			})
		}

		deviceID := claims.DeviceID
		if deviceID == "" {
			deviceID = claims.Subject
		}
		c.Locals(DeviceIDKey, deviceID)

		return c.Next()
	}
}

// IssueDeviceToken signs claims for deviceID with the shared secret
func IssueDeviceToken(jwtSecret, deviceID string, claims jwt.RegisteredClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &domain.DeviceClaims{
		DeviceID:         deviceID,
		RegisteredClaims: claims,
	})
	return token.SignedString([]byte(jwtSecret))
}
