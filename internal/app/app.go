package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"insurai_backend/internal/auth"
	"insurai_backend/internal/config"
	"insurai_backend/internal/handlers"
	"insurai_backend/internal/logger"
	"insurai_backend/internal/middleware"
	"insurai_backend/internal/models"
	"insurai_backend/internal/repositories"
	"insurai_backend/internal/routes"
	"insurai_backend/internal/services"
	"insurai_backend/internal/validator"
	"insurai_backend/internal/workers"
	"insurai_backend/ws"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := models.AutoMigrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed first admin user", "error", err)
	}

	policyWorker := workers.NewPolicyWorker(gormDB)
	policyWorker.Start(context.Background())

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	wsManager := ws.NewManager()
	go wsManager.Run()
	wsHandler := ws.NewHandler(wsManager)

	serviceContainer := initializeServices(gormDB, wsManager)
	appHandlers := initializeHandlers(serviceContainer)

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers, wsHandler)

	return router
}

func initializeServices(gormDB *gorm.DB, broadcaster services.Broadcaster) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	availabilityRepo := repositories.NewAvailabilityRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	policyRepo := repositories.NewPolicyRepository(gormDB)
	claimRepo := repositories.NewClaimRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo, broadcaster)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, notificationService)
	availabilityService := services.NewAvailabilityService(availabilityRepo, userRepo, notificationService)
	policyService := services.NewPolicyService(policyRepo, notificationService)
	claimService := services.NewClaimService(claimRepo, policyRepo, notificationService)
	queryService := services.NewQueryService()

	return &services.ServiceContainer{
		AuthService:         authService,
		AvailabilityService: availabilityService,
		NotificationService: notificationService,
		PolicyService:       policyService,
		ClaimService:        claimService,
		QueryService:        queryService,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	return handlers.NewAppHandlers(validator.New(), serviceContainer)
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("admin email or password not configured, skipping admin seeding")
		return nil
	}

	var admin models.User
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		logger.Info("admin user already exists", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	newAdmin := &models.User{
		FirstName:    "Admin",
		Email:        adminEmail,
		PasswordHash: hash,
		Category:     models.UserCategoryAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("created first admin user", "email", adminEmail)
	return nil
}
