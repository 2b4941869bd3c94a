package router

import (
	"net/http"
	"time"

	"github.com/Payphone-Digital/landing-cms/config"
	"github.com/Payphone-Digital/landing-cms/internal/handler"
	"github.com/Payphone-Digital/landing-cms/internal/middleware"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers semua handler HTTP yang dirakit di main.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	News         *handler.NewsHandler
	NewsCategory *handler.NewsCategoryHandler
	Tag          *handler.TagHandler
	Announcement *handler.DocumentHandler[model.Announcement]
	Regulation   *handler.DocumentHandler[model.Regulation]
	Gallery      *handler.GalleryHandler
	Hero         *handler.HeroHandler
	Structure    *handler.StructureHandler
	Roles        *handler.RolesResponsibilitiesHandler
	Contact      *handler.ContactHandler
	Upload       *handler.UploadHandler
	Cache        *handler.CacheHandler
	Health       *handler.HealthHandler

	Faq               handler.Resource
	History           handler.Resource
	ServiceItem       handler.Resource
	ServiceIcon       gin.HandlerFunc
	StatisticCategory handler.Resource
	Statistic         handler.Resource
	SocialMedia       handler.Resource
	SocialMediaPost   handler.Resource
	DirectorProfile   handler.Resource
	Contacts          handler.Resource
	ActivityLogs      gin.HandlerFunc
}

type Router struct {
	h        Handlers
	authMw   *middleware.AuthMiddleware
	cache    *service.CacheService
	recorder middleware.ActivityRecorder
	Config   *config.Config
}

func NewRouter(
	handlers Handlers,
	authMw *middleware.AuthMiddleware,
	cache *service.CacheService,
	recorder middleware.ActivityRecorder,
	config *config.Config,
) *Router {
	return &Router{
		h:        handlers,
		authMw:   authMw,
		cache:    cache,
		recorder: recorder,
		Config:   config,
	}
}

// SetupRoutes uploadRoot direktori yang disajikan di /uploads; kosong bila
// storage bukan local.
func (r *Router) SetupRoutes(uploadRoot string) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = 16 << 20

	router.Use(middleware.RequestContext())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestResponseMiddleware())
	router.Use(middleware.SecurityLoggingMiddleware())
	router.Use(middleware.CORS(r.Config.CORS.AllowedOrigins))

	if uploadRoot != "" {
		router.StaticFS("/uploads", gin.Dir(uploadRoot, false))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	api := router.Group("/api")
	{
		api.GET("/health", r.h.Health.HealthCheck)

		v1 := api.Group("/v1")
		{
			rl := r.Config.RateLimit
			v1.Use(middleware.RateLimit(rl.Request, time.Duration(rl.Duration)*time.Second))

			r.publicRoutes(v1)
			r.authRoutes(v1, middleware.RateLimit(rl.LoginRequest, time.Duration(rl.LoginDuration)*time.Second))

			admin := v1.Group("")
			admin.Use(r.authMw.RequireAuth())
			admin.Use(middleware.AuditTrail(r.recorder))
			admin.Use(middleware.InvalidatePublicCache(r.cache))
			r.adminRoutes(admin)
		}
	}

	return router
}

// crud mendaftarkan lima route standar; handler nil dilewati.
func crud(rg *gin.RouterGroup, res handler.Resource) {
	if res.Create != nil {
		rg.POST("", res.Create)
	}
	if res.List != nil {
		rg.GET("", res.List)
	}
	if res.Get != nil {
		rg.GET("/:id", res.Get)
	}
	if res.Update != nil {
		rg.PUT("/:id", res.Update)
	}
	if res.Delete != nil {
		rg.DELETE("/:id", res.Delete)
	}
}

// readOnly salinan Resource tanpa handler mutasi, untuk mirror publik.
func readOnly(res handler.Resource) handler.Resource {
	return handler.Resource{List: res.List, Get: res.Get}
}
