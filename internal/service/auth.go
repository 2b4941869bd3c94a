package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService login, logout dan verifikasi token berbasis cookie.
type AuthService struct {
	users UserStore
	jwt   *JWTService
}

func NewAuthService(users UserStore, jwt *JWTService) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Login memverifikasi kredensial dan menerbitkan access token.
func (s *AuthService) Login(ctx context.Context, req *dto.UserLoginRequest) (*model.User, string, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "Login")
	email := normalizeEmail(req.Email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.LogAuth(email, "login", false)
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", mapError(ctx, err, "User not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		logger.LogAuth(email, "login", false)
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.LogAuth(email, "login", true)
	return user, token, nil
}

// Register membuat akun baru. Email yang sudah dipakai ditolak dengan 400.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "Register")
	email := normalizeEmail(req.Email)

	taken, err := s.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, mapError(ctx, err, "User not found")
	}
	if taken {
		return nil, apperrors.NewBadRequest("Email already in use")
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Password:     hashed,
		TokenVersion: 1,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewBadRequest("Email already in use")
		}
		return nil, mapError(ctx, err, "User not found")
	}

	logger.LogAuth(email, "register", true)
	return user, nil
}

// Logout menaikkan token_version sehingga semua token lama ditolak.
func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "Logout")

	if err := s.users.IncrementTokenVersion(ctx, userID); err != nil {
		return mapError(ctx, err, "User not found")
	}
	logger.InfoWithContext(ctx, "User logged out").Uint("user_id", userID).Log()
	return nil
}

// Authenticate memvalidasi token dan memastikan versinya masih berlaku.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidToken, err)
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, mapError(ctx, err, "User not found")
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, apperrors.WrapError(apperrors.ErrInvalidToken, errors.New("token version mismatch"))
	}
	return user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userNotFound(userID)
		}
		return nil, mapError(ctx, err, "User not found")
	}
	return user, nil
}

func (s *AuthService) TokenTTL() int {
	return int(s.jwt.Expiration().Seconds())
}
