// Package main is the entry point for the chat-grpc-api application.
// It sets up and starts the gRPC server.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/ahmedali8/near-bootcamp-project/internal/api/grpc/v1"
	"github.com/ahmedali8/near-bootcamp-project/internal/app"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence"
	"github.com/ahmedali8/near-bootcamp-project/internal/infrastructure/persistence/models"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/config"
	"github.com/ahmedali8/near-bootcamp-project/internal/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
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
		configPath = "../../configs/grpc-app.yaml"
	}

	grpcConfig, err := config.InitializeGrpcConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&grpcConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application services
	services, err := initializeServices(grpcConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Start server with graceful shutdown
	return startServerWithGracefulShutdown(grpcConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	account    accounts.AccountService
	friendship friendships.FriendshipService
	messaging  messages.MessagingService
}

// initializeServices sets up all application components
func initializeServices(cfg *config.GrpcConfig, log logger.Logger) (*appServices, error) {
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

// startServerWithGracefulShutdown starts the gRPC server with graceful shutdown
func startServerWithGracefulShutdown(cfg *config.GrpcConfig, services *appServices, log logger.Logger) error {
	chatServer, err := v1.NewChatServer(services.account, services.friendship, services.messaging)
	if err != nil {
		return fmt.Errorf("failed to create chat server: %w", err)
	}

	// Create gRPC server
	grpcServer := grpc.NewServer()

	// Register services
	v1.RegisterChatServer(grpcServer, chatServer)

	// Enable reflection for grpcurl
	reflection.Register(grpcServer)

	// Start gRPC server
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}

	grpcErrors := make(chan error, 1)
	go func() {
		log.Info("gRPC server starting on port ", cfg.Port)
		log.Info("Use 'grpcurl -plaintext localhost:", cfg.Port, " list' to see available services")
		if err := grpcServer.Serve(lis); err != nil {
			grpcErrors <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until error or signal
	select {
	case err := <-grpcErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout fallback
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		grpcServer.Stop()
	}

	log.Info("Server stopped gracefully")
	return nil
}
