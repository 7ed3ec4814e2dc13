package app

import (
	"fmt"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/database"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"
)

func Run() {
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}
	logger.Info("database connected")

	// Первый запуск: сид дефолтного админа, публичной регистрации нет
	authService := services.NewAuthService(repositories.NewAdminRepository(db))
	if err := authService.SeedFirstAdmin(cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		logger.Fatal("failed to seed first admin", "error", err)
	}

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := middleware.NewSessionStore(cfg.Session.Secret)
	notifier := email.NewNotifier(cfg)

	appHandlers := initializeHandlers(db, notifier, store)

	ginRouter := gin.New()
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(gin.Recovery())

	routes.RegisterRoutes(ginRouter, appHandlers, store)

	return ginRouter
}

func initializeHandlers(db *gorm.DB, notifier email.Notifier, store sessions.Store) *handlers.AppHandlers {
	submissionRepo := repositories.NewSubmissionRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	portfolioRepo := repositories.NewPortfolioRepository(db)
	blogRepo := repositories.NewBlogRepository(db)

	contactService := services.NewContactService(submissionRepo, notifier)
	submissionService := services.NewSubmissionService(submissionRepo)
	authService := services.NewAuthService(adminRepo)
	chatService := services.NewChatService()
	contentService := services.NewContentService(portfolioRepo, blogRepo)

	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		Contact: handlers.NewContactHandler(base, contactService),
		Chat:    handlers.NewChatHandler(base, chatService),
		Auth:    handlers.NewAuthHandler(base, authService, store),
		Admin:   handlers.NewAdminHandler(base, submissionService),
		Content: handlers.NewContentHandler(base, contentService),
	}
}
