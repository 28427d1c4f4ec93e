package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	uservo "helpdesk/internal/domain/user/valueobjects"
)

// Claims carries the authenticated user's identity inside the session token.
type Claims struct {
	UserID uint        `json:"id"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Role   uservo.Role `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret   []byte
	expHours int
}

func NewJWTService(secret string, expHours int) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		expHours: expHours,
	}
}

// Generate signs a session token for the given user identity.
func (s *JWTService) Generate(userID uint, email, name string, role uservo.Role) (string, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.expHours) * time.Hour)

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ExpHours returns the token lifetime in hours.
func (s *JWTService) ExpHours() int {
	return s.expHours
}
