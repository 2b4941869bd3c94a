package handler

import (
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/session"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService   *service.AuthService
	sessions      *session.Manager
	allowRegister bool
}

func NewAuthHandler(authService *service.AuthService, sessions *session.Manager, allowRegister bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessions:      sessions,
		allowRegister: allowRegister,
	}
}

// Login memverifikasi kredensial lalu menyimpan token di cookie HttpOnly.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := requestContext(c, "Login")

	var req dto.UserLoginRequest
	if !bindBody(c, ctx, &req) {
		return
	}

	logger.InfoWithContext(ctx, "User login attempt").
		String("email", req.Email).
		Log()

	user, token, err := h.authService.Login(ctx, &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	if err := h.sessions.Set(c.Writer, token); err != nil {
		respondError(c, ctx, apperrors.WrapError(apperrors.ErrInternal, err))
		return
	}

	logger.InfoWithContext(ctx, "User logged in successfully").
		Uint("user_id", user.ID).
		Log()

	respondData(c, http.StatusOK, "Login successful", user)
}

// Logout mencabut semua token user dan menghapus cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := requestContext(c, "Logout")

	userID := actorID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	if err := h.authService.Logout(ctx, userID); err != nil {
		respondError(c, ctx, err)
		return
	}
	h.sessions.Clear(c.Writer)

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Logout successful"))
}

func (h *AuthHandler) Profile(c *gin.Context) {
	ctx := requestContext(c, "Profile")

	user, err := h.authService.Profile(ctx, actorID(c))
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Profile fetched successfully", user)
}

// Register hanya aktif bila AUTH_ALLOW_REGISTER=true.
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := requestContext(c, "Register")

	if !h.allowRegister {
		c.JSON(http.StatusNotFound, constants.BuildErrorResponse("Registration is disabled", nil))
		return
	}

	var req dto.RegisterRequest
	if !bindBody(c, ctx, &req) {
		return
	}

	user, err := h.authService.Register(ctx, &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusCreated, "Registration successful", user)
}
