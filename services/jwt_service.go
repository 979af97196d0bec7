package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"

	"github.com/golang-jwt/jwt/v4"
)

// InterfaceJWTService defines the session token service interface
type InterfaceJWTService interface {
	GenerateToken(userID uint, userType models.UserType, phoneNumber string) (string, error)
	ParseToken(tokenString string) (*SessionClaims, error)
}

// SessionClaims is the signed payload carried by a session token
type SessionClaims struct {
	UserID      uint            `json:"user_id"`
	UserType    models.UserType `json:"user_type"`
	PhoneNumber string          `json:"phone_number"`
	jwt.RegisteredClaims
}

// JWTService issues and validates signed session tokens
type JWTService struct {
	secretKey string
	issuer    string
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "smarthome-backend",
	}
}

// GenerateToken generates a signed session token with a 7-day validity window
func (s *JWTService) GenerateToken(userID uint, userType models.UserType, phoneNumber string) (string, error) {
	now := time.Now()

	claims := &SessionClaims{
		UserID:      userID,
		UserType:    userType,
		PhoneNumber: phoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ParseToken validates a session token and returns its claims
func (s *JWTService) ParseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
