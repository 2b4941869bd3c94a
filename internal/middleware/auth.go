package middleware

import (
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	authService *service.AuthService
	sessions    *session.Manager
}

func NewAuthMiddleware(authService *service.AuthService, sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		sessions:    sessions,
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
}

// RequireAuth membaca token dari cookie sesi, memvalidasi token beserta
// token_version, lalu menaruh user di context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := m.sessions.Read(c.Request)
		if err != nil {
			logger.GetLogger().Warn("Missing or invalid session cookie",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Bool("tampered", session.IsDecodeError(err)),
			)
			if session.IsDecodeError(err) {
				m.sessions.Clear(c.Writer)
			}
			unauthorized(c)
			return
		}

		user, err := m.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.GetLogger().Warn("Token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err),
			)
			unauthorized(c)
			return
		}

		c.Set(constants.GinKeyUserID, user.ID)
		c.Set(constants.GinKeyUserEmail, user.Email)
		c.Request = c.Request.WithContext(ctxutil.WithUserID(c.Request.Context(), user.ID))

		logger.GetLogger().Debug("User authenticated successfully",
			zap.Uint("user_id", user.ID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)

		c.Next()
	}
}
