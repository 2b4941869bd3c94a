package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserStore interface {
	CrudStore[model.User]
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	IncrementTokenVersion(ctx context.Context, id uint) error
}

type UserService struct {
	resource[model.User]
	repoUser UserStore
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{
		resource: newResource[model.User](repo, "user", "User not found"),
		repoUser: repo,
	}
}

func userNotFound(id uint) error {
	return apperrors.NewNotFound(fmt.Sprintf("User with ID \"%d\" not found", id))
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repoUser.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userNotFound(id)
	}
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateUser")
	email := normalizeEmail(req.Email)

	logger.InfoWithContext(ctx, "Creating user").String("email", email).Log()

	taken, err := s.repoUser.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	if taken {
		logger.WarnWithContext(ctx, "Email already registered").String("email", email).Log()
		return nil, apperrors.NewConflict("User with this email already exists.")
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
	if err := s.repoUser.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict("User with this email already exists.")
		}
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "User created").Uint("user_id", user.ID).Log()
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*model.User, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateUser")

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			taken, err := s.repoUser.EmailTaken(ctx, email, id)
			if err != nil {
				return nil, s.mapError(ctx, err)
			}
			if taken {
				return nil, apperrors.NewConflict(fmt.Sprintf("Email %q is already in use.", email))
			}
			user.Email = email
		}
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		user.Password = hashed
		// password baru mencabut sesi lama
		user.TokenVersion++
	}

	if err := s.repoUser.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userNotFound(id)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict(fmt.Sprintf("Email %q is already in use.", user.Email))
		}
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "User updated").Uint("user_id", id).Log()
	return user, nil
}

// Delete menolak bila actor menghapus akunnya sendiri.
func (s *UserService) Delete(ctx context.Context, id, actorID uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteUser")

	if id == actorID {
		logger.WarnWithContext(ctx, "User attempted self deletion").Uint("user_id", id).Log()
		return apperrors.ErrSelfDeletion
	}

	if err := s.repoUser.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userNotFound(id)
		}
		return s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "User deleted").Uint("user_id", id).Log()
	return nil
}
