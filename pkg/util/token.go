// Unsubscribe token generation/validation

package util

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UnsubscribeClaims defines what goes inside the unsubscribe token
type UnsubscribeClaims struct {
	SubscriberID string `json:"subscriber_id"`
	Email        string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateUnsubscribeToken generates a signed token embedded in daily emails
func GenerateUnsubscribeToken(subscriberID, email string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := UnsubscribeClaims{
		SubscriberID: subscriberID,
		Email:        email,
		RegisteredClaims: jwt.RegisteredClaims{
			// long-lived: the link sits in a subscriber's inbox
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(90 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "dualink-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateUnsubscribeToken validates and parses an unsubscribe token
func ValidateUnsubscribeToken(tokenStr string) (*UnsubscribeClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &UnsubscribeClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*UnsubscribeClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}
