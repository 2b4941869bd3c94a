package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

type JWTService struct {
	secretKey  string
	expiration time.Duration
}

func NewJWTService(secretKey string, expiration time.Duration) *JWTService {
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &JWTService{
		secretKey:  secretKey,
		expiration: expiration,
	}
}

// TokenClaims isi token yang dibutuhkan middleware.
type TokenClaims struct {
	UserID       uint
	Email        string
	TokenVersion int
}

func (s *JWTService) Expiration() time.Duration {
	return s.expiration
}

// GenerateToken creates a new JWT token for the user
func (s *JWTService) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":           fmt.Sprint(user.ID),
		"user_id":       user.ID,
		"email":         user.Email,
		"token_version": user.TokenVersion,
		"exp":           now.Add(s.expiration).Unix(),
		"iat":           now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken validates the JWT token and returns the claims
func (s *JWTService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, errors.New("invalid user id claim")
	}

	version, ok := claims["token_version"].(float64)
	if !ok {
		return nil, errors.New("token version missing")
	}

	email, _ := claims["email"].(string)

	return &TokenClaims{
		UserID:       uint(userID),
		Email:        email,
		TokenVersion: int(version),
	}, nil
}
