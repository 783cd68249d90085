package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"anicms/database"
	"anicms/internal/authz"
	"anicms/internal/cache"
	"anicms/internal/config"
	"anicms/internal/handler"
	"anicms/internal/middleware"
	"anicms/internal/models"
	"anicms/internal/repository"
	"anicms/internal/service"
	"anicms/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Seed(db, cfg, logger); err != nil {
		logger.Error("Database seeding failed", "error", err)
		os.Exit(1)
	}

	blobs, err := storage.NewDiskStore(cfg.StoragePath)
	if err != nil {
		logger.Error("Blob storage init failed", "error", err)
		os.Exit(1)
	}

	// The cache is optional: a nil *cache.Cache disables caching without
	// touching any call site.
	var cch *cache.Cache
	if cfg.RedisURL != "" {
		cch, err = cache.New(context.Background(), cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
		if err != nil {
			logger.Warn("Redis unavailable, running without cache", "error", err)
			cch = nil
		} else {
			logger.Info("Connected to Redis cache")
		}
	}

	// Repositories
	animeRepo := repository.NewAnimeRepo(db)
	episodeRepo := repository.NewEpisodeRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	seasonRepo := repository.NewLookupRepo[models.Season](db)
	studioRepo := repository.NewLookupRepo[models.Studio](db)
	languageRepo := repository.NewLookupRepo[models.Language](db)
	typeRepo := repository.NewLookupRepo[models.Type](db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)
	postRepo := repository.NewPostRepo(db)

	// Services
	lookupResolver := service.NewLookupResolver(studioRepo, languageRepo, typeRepo)
	animeSvc := service.NewAnimeService(animeRepo, episodeRepo, lookupResolver, blobs, cch)
	episodeSvc := service.NewEpisodeService(episodeRepo, animeRepo, blobs, cch)
	categorySvc := service.NewCategoryService(categoryRepo)
	seasonSvc := service.NewLookupService[models.Season, *models.Season](seasonRepo)
	studioSvc := service.NewLookupService[models.Studio, *models.Studio](studioRepo)
	languageSvc := service.NewLookupService[models.Language, *models.Language](languageRepo)
	typeSvc := service.NewLookupService[models.Type, *models.Type](typeRepo)
	userSvc := service.NewUserService(userRepo, blobs)
	roleSvc := service.NewRoleService(roleRepo)
	permissionSvc := service.NewPermissionService(permissionRepo)
	postSvc := service.NewPostService(postRepo, blobs)
	authSvc := service.NewAuthService(userRepo, cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	// Uploaded blobs are served straight off disk.
	r.Static("/storage", cfg.StoragePath)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PerIPRateLimit(rate.Limit(1), 5))
	handler.NewAuthHandler(authSvc).RegisterRoutes(authGroup)

	public := api.Group("/")
	handler.NewPublicHandler(animeSvc, episodeSvc).RegisterRoutes(public)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	handler.NewAnimeHandler(animeSvc).RegisterRoutes(admin.Group("/animes"))
	handler.NewEpisodeHandler(episodeSvc).RegisterRoutes(admin.Group("/episodes"))
	handler.NewCategoryHandler(categorySvc).RegisterRoutes(admin.Group("/categories"))
	handler.NewLookupHandler(seasonSvc, "season", "/admin/seasons", handler.LookupCapabilities{
		Page: authz.CapPageSeason, Create: authz.CapCreateSeason, Update: authz.CapUpdateSeason, Delete: authz.CapDeleteSeason,
	}).RegisterRoutes(admin.Group("/seasons"))
	handler.NewLookupHandler(studioSvc, "studio", "/admin/studios", handler.LookupCapabilities{
		Page: authz.CapPageStudio, Create: authz.CapCreateStudio, Update: authz.CapUpdateStudio, Delete: authz.CapDeleteStudio,
	}).RegisterRoutes(admin.Group("/studios"))
	handler.NewLookupHandler(languageSvc, "language", "/admin/languages", handler.LookupCapabilities{
		Page: authz.CapPageLanguage, Create: authz.CapCreateLanguage, Update: authz.CapUpdateLanguage, Delete: authz.CapDeleteLanguage,
	}).RegisterRoutes(admin.Group("/languages"))
	handler.NewLookupHandler(typeSvc, "type", "/admin/types", handler.LookupCapabilities{
		Page: authz.CapPageType, Create: authz.CapCreateType, Update: authz.CapUpdateType, Delete: authz.CapDeleteType,
	}).RegisterRoutes(admin.Group("/types"))
	handler.NewUserHandler(userSvc).RegisterRoutes(admin.Group("/users"))
	handler.NewRoleHandler(roleSvc, permissionSvc).RegisterRoutes(admin)
	handler.NewPostHandler(postSvc).RegisterRoutes(admin.Group("/posts"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Starting API server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
