package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	"sockchat/emoji"
	grpc2 "sockchat/grpc"
	"sockchat/moderation"
	"sockchat/observability"
	v1 "sockchat/proto/chat"
	"sockchat/repositories"
	"sockchat/runtime"
	"sockchat/runtime/workers"
	"sockchat/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() error {
	// 1. Configuration & Logger
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Text pipeline (emoji shorthand + censored words)
	replacer, err := emoji.NewReplacer()
	if err != nil {
		return fmt.Errorf("emoji replacer failed to build: %w", err)
	}
	censored, err := moderation.LoadCensoredWords()
	if err != nil {
		return fmt.Errorf("censored word lists failed to load: %w", err)
	}
	moderator, err := moderation.NewModerator(censored.Words, config.ModerationCharReplacement, log)
	if err != nil {
		return fmt.Errorf("moderator failed to build: %w", err)
	}

	// 4. Setup Supervision & Engine
	sup := workers.NewSupervisor(log, config.RestartInterval)
	registry := runtime.NewRegistry()
	metrics := observability.NewMetrics()
	historyRepository := repositories.NewHistoryRepository(db, log)
	userRepository := repositories.NewUserRepository(db)

	engine := runtime.NewEngine(
		log, sup, registry, historyRepository, userRepository,
		replacer, moderator, metrics,
		config.BufferSize, config.HistoryLimit,
		config.StorageTimeout, config.SinkTimeout,
	)

	telemetry, err := workers.NewTelemetry(log, metrics, config.TelemetryInterval)
	if err != nil {
		return fmt.Errorf("telemetry worker failed to build: %w", err)
	}
	sup.Add(workers.NewBadgerGC(db, log, config.GCInterval), telemetry)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Start the Engine
	if err = engine.Start(ctx); err != nil {
		return fmt.Errorf("engine failed to start: %w", err)
	}

	// 7. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer()
	chatService := services.NewChatService(engine)
	server := grpc2.NewChatServer(log, chatService, config.ConnectionBufferSize)
	v1.RegisterChatServiceServer(s, server)

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	s.GracefulStop()
	engine.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
