package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"laundry-scout.backend/internal/config"
	"laundry-scout.backend/internal/infrastructure/authapi"
	"laundry-scout.backend/internal/infrastructure/jobs"
	"laundry-scout.backend/internal/infrastructure/realtime"
	"laundry-scout.backend/internal/infrastructure/repositories"
	"laundry-scout.backend/internal/infrastructure/storage"
	"laundry-scout.backend/internal/interfaces/http/handlers"
	"laundry-scout.backend/internal/interfaces/http/middleware"
	"laundry-scout.backend/internal/usecases"
	"laundry-scout.backend/pkg/jwt"
	"laundry-scout.backend/pkg/logger"
	"laundry-scout.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	businessRepo := repositories.NewBusinessRepository(db)
	userRepo := repositories.NewUserProfileRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	qrScanRepo := repositories.NewQRScanRepository(db)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	resolver := storage.NewResolver(cfg.Storage.BaseURL)
	authAPIClient := authapi.NewClient(cfg.AuthAPI.BaseURL, cfg.AuthAPI.ServiceKey, cfg.AuthAPI.Timeout)
	hub := realtime.NewHub()
	searchHistory := redis.NewSearchHistoryStore()

	// Usecases
	authUsecase := usecases.NewAuthUsecase(adminRepo, jwtService, sessionStore, cfg.JWT.RefreshExpiry, cfg.Security.ResetTokenTTL)
	applicationUsecase := usecases.NewApplicationUsecase(businessRepo, resolver, hub, cfg.Storage.DocumentsBucket)
	clientUsecase := usecases.NewClientUsecase(businessRepo, resolver, cfg.Storage.DocumentsBucket)
	userUsecase := usecases.NewUserUsecase(userRepo, authAPIClient)
	historyUsecase := usecases.NewHistoryUsecase(businessRepo)
	feedbackUsecase := usecases.NewFeedbackUsecase(feedbackRepo)
	dashboardUsecase := usecases.NewDashboardUsecase(userRepo, businessRepo, qrScanRepo, feedbackRepo)
	notificationUsecase := usecases.NewNotificationUsecase(userRepo, businessRepo)
	pushUsecase := usecases.NewPushUsecase(userRepo)
	profileUsecase := usecases.NewProfileUsecase(adminRepo, resolver, cfg.Storage.AvatarsBucket)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	applicationHandler := handlers.NewApplicationHandler(applicationUsecase)
	clientHandler := handlers.NewClientHandler(clientUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	historyHandler := handlers.NewHistoryHandler(historyUsecase)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackUsecase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase, pushUsecase, hub, jwtService)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	searchHistoryHandler := handlers.NewSearchHistoryHandler(searchHistory)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Background work: the realtime hub fan-out and the registration
	// watcher that feeds it.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx)

	watcher := jobs.NewRegistrationWatcher(businessRepo, userRepo, hub, cfg.Watcher.Interval)
	go watcher.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:          authHandler,
		applicationHandler:   applicationHandler,
		clientHandler:        clientHandler,
		userHandler:          userHandler,
		historyHandler:       historyHandler,
		feedbackHandler:      feedbackHandler,
		dashboardHandler:     dashboardHandler,
		notificationHandler:  notificationHandler,
		profileHandler:       profileHandler,
		searchHistoryHandler: searchHistoryHandler,
		authMiddleware:       authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		watcher.Stop()
		cancel()
	}()

	log.Printf("🚀 Laundry Scout Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
