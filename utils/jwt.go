package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the access token lifetime.
const TokenTTL = 30 * 24 * time.Hour

func GenerateJWT(secret string, userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}
