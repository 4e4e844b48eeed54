package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// DeviceClaims identify the device a bearer token was issued to.
// KINETIC has no user accounts; the token only gates the API.
type DeviceClaims struct {
	DeviceID string `json:"device_id"`
	jwt.RegisteredClaims
}
