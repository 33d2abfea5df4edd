package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what login embeds in a session token: the database id
// and the Twilio client identity of the account. Handlers behind the auth
// middleware trust Identity without a second lookup.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID   uint   `json:"id"`
	Identity string `json:"identity"`
}

const sessionTTL = 7 * 24 * time.Hour

func GenerateJWT(userID uint, identity string, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		UserID:   userID,
		Identity: identity,
	})
	return token.SignedString(secret)
}

func ParseJWT(tokenString string, secret []byte) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
