package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default secret for local development; main overrides it from JWT_SECRET.
var jwtSecret = []byte("dev-only-secret")

func SetJWTSecret(secret []byte) {
	jwtSecret = secret
}

func GenerateToken(userID uint, username, role string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret)
}

func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, _ := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
			return claims, nil
		}
	}
	return nil, errors.New("invalid token")
}
