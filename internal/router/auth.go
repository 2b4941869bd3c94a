package router

import "github.com/gin-gonic/gin"

func (r *Router) authRoutes(version *gin.RouterGroup, loginLimit gin.HandlerFunc) {
	auth := version.Group("/auth")
	{
		auth.POST("/login", loginLimit, r.h.Auth.Login)
		auth.POST("/register", loginLimit, r.h.Auth.Register)

		protected := auth.Group("")
		protected.Use(r.authMw.RequireAuth())
		{
			protected.POST("/logout", r.h.Auth.Logout)
			protected.GET("/profile", r.h.Auth.Profile)
		}
	}
}
