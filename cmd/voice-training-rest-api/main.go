// cmd/voice-training-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/voice-training/voice-training-service/internal/api/rest/v1"
	"github.com/voice-training/voice-training-service/internal/app"
	"github.com/voice-training/voice-training-service/internal/domain/community"
	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/domain/sessions"
	"github.com/voice-training/voice-training-service/internal/domain/transcripts"
	"github.com/voice-training/voice-training-service/internal/domain/users"
	"github.com/voice-training/voice-training-service/internal/infrastructure/analysis"
	"github.com/voice-training/voice-training-service/internal/infrastructure/connector"
	"github.com/voice-training/voice-training-service/internal/infrastructure/persistence"
	"github.com/voice-training/voice-training-service/internal/infrastructure/transcription"
	"github.com/voice-training/voice-training-service/internal/pkg/config"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
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
		configPath = "configs/rest-app.yaml"
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

	ctx := context.Background()

	// Initialize application dependencies
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database", "error", err)
		}
		// the whisper.cpp engine holds a loaded model
		if closer, ok := deps.transcriber.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Warn("Failed to release transcriber", "error", err)
			}
		}
	}()

	seeded, err := deps.services.Modules.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed training modules: %w", err)
	}
	if seeded > 0 {
		log.Info("Seeded default training modules", "count", seeded)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db          *gorm.DB
	transcriber transcripts.Transcriber
	services    v1.Services
}

type repositories struct {
	users    users.UserRepository
	sessions sessions.AudioSessionRepository
	modules  modules.ModuleRepository
	posts    community.PostRepository
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully", "type", cfg.Database.Type)

	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, err
	}

	// Initialize audio store, speech-to-text engine and analyzer
	audioConnector, err := connector.NewAudioConnector(ctx, &cfg.AudioConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio connector: %w", err)
	}

	transcriber, err := transcription.NewTranscriber(&cfg.Transcription, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcriber: %w", err)
	}

	analyzer, err := analysis.NewAnalyzer(&cfg.Analysis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}
	log.Info("Audio pipeline initialized successfully",
		"storage", cfg.AudioConnector.CloudProvider,
		"transcription", cfg.Transcription.Provider)

	// Initialize services
	userService, err := app.NewUserService(repos.users, repos.sessions, repos.posts, audioConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	uploadService, err := app.NewAudioUploadService(
		repos.users, repos.modules, repos.sessions,
		audioConnector, transcriber, analyzer,
		&cfg.Upload, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio upload service: %w", err)
	}

	sessionService, err := app.NewAudioSessionService(repos.sessions, audioConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio session service: %w", err)
	}

	progressService, err := app.NewProgressService(repos.sessions, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress service: %w", err)
	}

	moduleService, err := app.NewModuleService(repos.modules, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create module service: %w", err)
	}

	postService, err := app.NewPostService(repos.posts, repos.users, repos.sessions, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:          db,
		transcriber: transcriber,
		services: v1.Services{
			Users:    userService,
			Upload:   uploadService,
			Sessions: sessionService,
			Progress: progressService,
			Modules:  moduleService,
			Posts:    postService,
		},
	}, nil
}

func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	sessionRepo, err := persistence.NewGormAudioSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio session repository: %w", err)
	}

	moduleRepo, err := persistence.NewGormModuleRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create module repository: %w", err)
	}

	postRepo, err := persistence.NewGormPostRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create post repository: %w", err)
	}

	return &repositories{users: userRepo, sessions: sessionRepo, modules: moduleRepo, posts: postRepo}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, cfg.Upload.MaxBytes, log)

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
		log.Info("Starting server", "port", cfg.Port)
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
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
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
