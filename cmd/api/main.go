package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/draftmark/draftmark-backend/internal/config"
	"github.com/draftmark/draftmark-backend/internal/handler"
	"github.com/draftmark/draftmark-backend/internal/middleware"
	"github.com/draftmark/draftmark-backend/internal/migration"
	"github.com/draftmark/draftmark-backend/internal/repository"
	"github.com/draftmark/draftmark-backend/internal/routes"
	"github.com/draftmark/draftmark-backend/internal/service"
	pkgcache "github.com/draftmark/draftmark-backend/pkg/cache"
	"github.com/draftmark/draftmark-backend/pkg/jwt"
	pkglogger "github.com/draftmark/draftmark-backend/pkg/logger"
	pkgredis "github.com/draftmark/draftmark-backend/pkg/redis"
)

// @title           Draftmark Backend API
// @version         1.0
// @description     Content management backend with revision history and undo/redo
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional: without it the cache degrades to a no-op.
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without cache)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}
	cacheService := pkgcache.NewService(redisClient)

	jwtManager := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)

	// Repositories
	contentRepo := repository.NewContentRepository(db)
	revisionRepo := repository.NewRevisionRepository(db)
	collaboratorRepo := repository.NewCollaboratorRepository(db)
	userRepo := repository.NewUserRepository(db)
	siteRepo := repository.NewSiteRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	accessService := service.NewAccessService(collaboratorRepo)
	contentService := service.NewContentService(contentRepo, revisionRepo, cacheService)
	revisionService := service.NewRevisionService(revisionRepo, cacheService)
	collaboratorService := service.NewCollaboratorService(contentRepo, collaboratorRepo, userRepo)
	siteService := service.NewSiteService(siteRepo)
	templateService := service.NewTemplateService(templateRepo)
	provisioningService := service.NewProvisioningService(userRepo, settingsRepo)

	// Handlers
	contentHandler := handler.NewContentHandler(contentService, accessService)
	revisionHandler := handler.NewRevisionHandler(contentService, revisionService, accessService)
	collaboratorHandler := handler.NewCollaboratorHandler(contentService, collaboratorService, accessService)
	siteHandler := handler.NewSiteHandler(siteService)
	templateHandler := handler.NewTemplateHandler(templateService)
	provisioningHandler := handler.NewProvisioningHandler(provisioningService)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", healthz(db, cacheService))

	routes.Setup(
		router,
		contentHandler,
		revisionHandler,
		collaboratorHandler,
		siteHandler,
		templateHandler,
		provisioningHandler,
		jwtManager,
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthz(db *gorm.DB, cacheService pkgcache.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok"}

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status["status"] = "degraded"
			status["database"] = "down"
		} else {
			status["database"] = "up"
		}

		if cacheService.IsAvailable() && cacheService.Ping(c.Request.Context()) == nil {
			status["redis"] = "up"
		} else {
			status["redis"] = "down"
		}

		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}

// initDB opens the MySQL connection through gorm with pool settings applied.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg, err := mysqldriver.ParseDSN(cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	logMode := gormlogger.Warn
	if os.Getenv("APP_ENV") == "local" {
		logMode = gormlogger.Info
	}
	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	return db, nil
}
