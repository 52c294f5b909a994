package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pitchplan_backend/internal/config"
	"pitchplan_backend/internal/email"
	"pitchplan_backend/internal/generator"
	"pitchplan_backend/internal/handlers"
	"pitchplan_backend/internal/logger"
	"pitchplan_backend/internal/middleware"
	"pitchplan_backend/internal/models"
	"pitchplan_backend/internal/repositories"
	"pitchplan_backend/internal/routes"
	"pitchplan_backend/internal/services"
	"pitchplan_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(&models.User{}, &models.TrainingSession{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
// Shared with the test server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	sessionRepo := repositories.NewSessionRepository(gormDB)

	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		smtpProvider, err := email.NewSMTPProvider(email.Config{
			SMTPHost: cfg.Email.SMTPHost,
			SMTPPort: cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailProvider = smtpProvider
	} else {
		logger.Warn("SMTP not configured, using mock email provider")
		emailProvider = &MockEmailProvider{}
	}

	// The generator is chosen once here; the handler's dev-only ?mock=false
	// escape still reaches the live client through the generation service.
	liveGenerator := generator.NewOpenAIGenerator(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second,
	)
	var primary generator.Generator = liveGenerator
	if cfg.OpenAI.UseMock {
		logger.Info("Mock generation enabled")
		primary = generator.NewMockGenerator()
	}

	quotaService := services.NewQuotaService(userRepo)

	return &services.ServiceContainer{
		AuthService:       services.NewAuthService(userRepo, emailProvider),
		QuotaService:      quotaService,
		GenerationService: services.NewGenerationService(quotaService, primary, liveGenerator),
		SessionService:    services.NewSessionService(sessionRepo),
		UserService:       services.NewUserService(userRepo, sessionRepo),
		BillingService:    services.NewBillingService(userRepo, emailProvider, cfg.Stripe.SecretKey, cfg.Stripe.PriceID),
		EmailService:      emailProvider,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		SessionHandler: handlers.NewSessionHandler(baseHandler, serviceContainer.GenerationService, serviceContainer.SessionService),
		UserHandler:    handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		BillingHandler: handlers.NewBillingHandler(baseHandler, serviceContainer.BillingService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
