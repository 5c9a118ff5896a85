package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"agua-be-svc/docs"
	"agua-be-svc/internal/config"
	"agua-be-svc/internal/database"
	"agua-be-svc/internal/handler"
	"agua-be-svc/internal/middleware"
	"agua-be-svc/internal/repository"
	"agua-be-svc/internal/scheduler"
	"agua-be-svc/internal/service"
	"agua-be-svc/pkg/logger"
)

// @title Agua Backend Service API
// @version 1.0
// @description RESTful API for condominium water billing with tiered tariffs
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Agua Backend Service API"
	docs.SwaggerInfo.Description = "RESTful API for condominium water billing with tiered tariffs"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Agua Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	moradorRepo := repository.NewMoradorRepository(db.DB)
	periodoRepo := repository.NewPeriodoRepository(db.DB)
	consumoRepo := repository.NewConsumoRepository(db.DB)
	pagamentoRepo := repository.NewPagamentoRepository(db.DB)
	configRepo := repository.NewConfiguracaoRepository(db.DB)
	usuarioRepo := repository.NewUsuarioRepository(db.DB)
	envioRepo := repository.NewCobrancaEnvioRepository(db.DB)
	resumoRepo := repository.NewResumoRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)

	// Initialize services
	billingService := service.NewBillingService(periodoRepo, moradorRepo, consumoRepo, configRepo, pagamentoRepo, appLogger)
	periodoService := service.NewPeriodoService(periodoRepo, appLogger)
	moradorService := service.NewMoradorService(moradorRepo, configRepo, billingService, appLogger)
	pagamentoService := service.NewPagamentoService(pagamentoRepo, consumoRepo, appLogger)
	configService := service.NewConfiguracaoService(configRepo, appLogger)
	notificationService := service.NewNotificationService(billingService, periodoRepo, configRepo, envioRepo, appLogger)
	authService := service.NewAuthService(usuarioRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.TokenTTLHours)*time.Hour, appLogger)
	resumoService := service.NewResumoService(resumoRepo, periodoRepo)
	exportService := service.NewExportService(billingService, periodoRepo, appLogger)

	// Start the period-opening scheduler
	periodoScheduler := scheduler.NewPeriodoScheduler(periodoService, schedulerLogRepo, appLogger, cfg.Scheduler.PeriodoCronExpression)
	if err := periodoScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start period scheduler")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		moradorService,
		periodoService,
		billingService,
		pagamentoService,
		configService,
		notificationService,
		resumoService,
		exportService,
		appLogger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop the scheduler before refusing new requests
	periodoScheduler.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
