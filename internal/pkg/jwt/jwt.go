package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/eventschedule/eventschedule-backend/internal/config"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

type InvalidTokenError struct {
	reason string
}

func (e *InvalidTokenError) Error() string {
	return "invalid token: " + e.reason
}

type claims struct {
	jwt.RegisteredClaims
	ID int64 `json:"id"`
}

func (m *Manager) CreateToken(id int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.JwtTTL())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		ID: id,
	})

	signed, err := token.SignedString([]byte(config.Secret()))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (m *Manager) GetIdFromToken(token string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &InvalidTokenError{reason: fmt.Sprintf("unexpected signing method %v", t.Header["alg"])}
		}
		return []byte(config.Secret()), nil
	})
	if err != nil {
		return 0, &InvalidTokenError{reason: err.Error()}
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return 0, &InvalidTokenError{reason: "malformed claims"}
	}

	return c.ID, nil
}
