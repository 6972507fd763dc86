// cmd/chat-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/ahmedali8/near-bootcamp-project/internal/api/rest/v1"
	"github.com/ahmedali8/near-bootcamp-project/internal/app"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence/models"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/config"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application services
	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	account    accounts.AccountService
	friendship friendships.FriendshipService
	messaging  messages.MessagingService
}

// initializeServices sets up all application components
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.AccountModel{}, &models.FriendshipModel{}, &models.MessageModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	accountRepo, err := persistence.NewGormAccountRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account repository: %w", err)
	}

	friendshipRepo, err := persistence.NewGormFriendshipRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create friendship repository: %w", err)
	}

	messageRepo, err := persistence.NewGormMessageRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create message repository: %w", err)
	}

	// Initialize services
	accountService, err := app.NewAccountService(accountRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	friendshipService, err := app.NewFriendshipService(accountRepo, friendshipRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create friendship service: %w", err)
	}

	messagingService, err := app.NewMessagingService(accountRepo, friendshipService, messageRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		account:    accountService,
		friendship: friendshipService,
		messaging:  messagingService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, services.account, services.friendship, services.messaging)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
