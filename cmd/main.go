package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	configs "github.com/Payphone-Digital/landing-cms/config"
	"github.com/Payphone-Digital/landing-cms/internal/handler"
	"github.com/Payphone-Digital/landing-cms/internal/middleware"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/internal/repository"
	"github.com/Payphone-Digital/landing-cms/internal/router"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/Payphone-Digital/landing-cms/pkg/cache"
	"github.com/Payphone-Digital/landing-cms/pkg/database"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/redis"
	"github.com/Payphone-Digital/landing-cms/pkg/session"
	"github.com/Payphone-Digital/landing-cms/pkg/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
	)

	if !config.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.RegisterValidators(); err != nil {
		logger.GetLogger().Fatal("Failed to register validators", zap.Error(err))
	}

	db, err := database.NewPostgresDB(config)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.SetupJoinTables(db); err != nil {
		logger.GetLogger().Fatal("Failed to setup join tables", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	if err := database.EnsureSearchIndexes(db, logger.GetLogger()); err != nil {
		// index trigram hanya optimasi pencarian
		logger.GetLogger().Warn("Search indexes not created", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	if config.Seed.Enabled {
		if err := database.Seed(db, config.Seed); err != nil {
			logger.GetLogger().Error("Failed to seed database", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Cache publik: redis bila aktif, memory bila tidak atau redis gagal
	var (
		cacheStore  cache.Store
		redisPinger handler.Pinger
	)
	if config.Redis.Enabled {
		redisClient, err := redis.NewClient(config)
		if err != nil {
			logger.GetLogger().Warn("Redis unavailable, falling back to memory cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheStore = redisClient
			redisPinger = redisClient
		}
	}
	if cacheStore == nil {
		mem := cache.NewMemory(time.Minute)
		defer mem.Close()
		cacheStore = mem
	}
	cacheService := service.NewCacheService(cacheStore, config.Redis.CacheTTL)

	fileStorage, err := storage.New(ctx, config.Storage)
	if err != nil {
		logger.GetLogger().Fatal("Failed to initialize storage", zap.Error(err), zap.String("driver", config.Storage.Driver))
	}
	var uploadRoot string
	if local, ok := fileStorage.(*storage.Local); ok {
		uploadRoot = local.Root()
	}

	sessions, err := session.NewManager(config.Cookie, config.JWT.ExpirationTime)
	if err != nil {
		logger.GetLogger().Fatal("Failed to initialize session cookie", zap.Error(err))
	}

	// Repositories
	tx := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	newsCategoryRepo := repository.NewNewsCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	statisticCategoryRepo := repository.NewStatisticCategoryRepository(db)

	// Services
	jwtService := service.NewJWTService(config.JWT.Secret, config.JWT.ExpirationTime)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	newsService := service.NewNewsService(newsRepo, newsCategoryRepo, tagRepo, tx, fileStorage)
	serviceItemService := service.NewServiceItemService(repository.NewServiceItemRepository(db), fileStorage)
	contactService := service.NewContactService(repository.NewContactRepository(db), tx)
	activityLogService := service.NewActivityLogService(repository.NewActivityLogRepository(db))

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService, sessions, config.App.AllowRegister),
		User:         handler.NewUserHandler(userService),
		News:         handler.NewNewsHandler(newsService),
		NewsCategory: handler.NewNewsCategoryHandler(service.NewNewsCategoryService(newsCategoryRepo)),
		Tag:          handler.NewTagHandler(service.NewTagService(tagRepo, tx)),
		Announcement: handler.NewDocumentHandler[model.Announcement](
			service.NewAnnouncementService(repository.NewAnnouncementRepository(db), fileStorage), "Announcement"),
		Regulation: handler.NewDocumentHandler[model.Regulation](
			service.NewRegulationService(repository.NewRegulationRepository(db), fileStorage), "Regulation"),
		Gallery:   handler.NewGalleryHandler(service.NewGalleryService(repository.NewGalleryRepository(db), tx, fileStorage)),
		Hero:      handler.NewHeroHandler(service.NewHeroService(repository.NewHeroRepository(db), fileStorage)),
		Structure: handler.NewStructureHandler(service.NewStructureService(repository.NewStructureRepository(db), fileStorage)),
		Roles:     handler.NewRolesResponsibilitiesHandler(service.NewRolesResponsibilitiesService(repository.NewRolesResponsibilitiesRepository(db))),
		Contact:   handler.NewContactHandler(contactService),
		Upload:    handler.NewUploadHandler(service.NewUploadService(fileStorage)),
		Cache:     handler.NewCacheHandler(cacheService),
		Health:    handler.NewHealthHandler(db, redisPinger, fileStorage),

		Faq:               handler.NewFaqResource(service.NewFaqService(repository.NewFaqRepository(db))),
		History:           handler.NewHistoryResource(service.NewHistoryService(repository.NewHistoryRepository(db))),
		ServiceItem:       handler.NewServiceItemResource(serviceItemService),
		ServiceIcon:       handler.ServiceIconHandler(serviceItemService),
		StatisticCategory: handler.NewStatisticCategoryResource(service.NewStatisticCategoryService(statisticCategoryRepo)),
		Statistic:         handler.NewStatisticResource(service.NewStatisticService(repository.NewStatisticRepository(db), statisticCategoryRepo)),
		SocialMedia:       handler.NewSocialMediaResource(service.NewSocialMediaService(repository.NewSocialMediaRepository(db))),
		SocialMediaPost:   handler.NewSocialMediaPostResource(service.NewSocialMediaPostService(repository.NewSocialMediaPostRepository(db), fileStorage)),
		DirectorProfile:   handler.NewDirectorProfileResource(service.NewDirectorProfileService(repository.NewDirectorProfileRepository(db), tx, fileStorage)),
		Contacts:          handler.NewContactResource(contactService),
		ActivityLogs:      handler.ActivityLogList(activityLogService),
	}

	engine := router.NewRouter(
		handlers,
		middleware.NewAuthMiddleware(authService, sessions),
		cacheService,
		activityLogService,
		config,
	).SetupRoutes(uploadRoot)

	srv := &http.Server{
		Addr:              ":" + config.App.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.App.Timeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.GetLogger().Error("Server forced to shutdown", zap.Error(err))
	}
	logger.GetLogger().Info("Server exited")
}
