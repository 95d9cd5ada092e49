// Package authtoken выпускает и проверяет JWT токены доступа.
// Токен несет тройку {userId, businessId, role}; сервис не хранит сессий.
package authtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается при невалидном или просроченном токене
	ErrInvalidToken = errors.New("authtoken: invalid or expired token")

	// ErrUnexpectedSigningMethod возвращается при неожиданном алгоритме подписи
	ErrUnexpectedSigningMethod = errors.New("authtoken: unexpected signing method")
)

// Claims полезная нагрузка токена
type Claims struct {
	UserID     int64  `json:"userId"`
	BusinessID int64  `json:"businessId"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager создает менеджер токенов с заданным секретом и временем жизни
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue выпускает подписанный токен для пользователя
func (m *Manager) Issue(userID, businessID int64, role string, now time.Time) (string, error) {
	claims := Claims{
		UserID:     userID,
		BusinessID: businessID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("authtoken: failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify проверяет подпись и срок действия токена и возвращает claims
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSigningMethod, t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
