package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"swimset/swim-app/internal/api"
	"swimset/swim-app/internal/config"
	"swimset/swim-app/internal/repository"
	"swimset/swim-app/internal/repository/memory"
	"swimset/swim-app/internal/repository/mongo"
	"swimset/swim-app/internal/service"
	"swimset/swim-app/internal/storage"
)

// @title Swimset API
// @version 1.0
// @description Interprets, generates and exports swim workouts written in coach shorthand.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting Swimset Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Printf("Configuration loaded (database=%s, storage=%s).", cfg.Database.Driver, cfg.S3.Driver)

	// --- Repositories ---
	var (
		userRepo    repository.UserRepository
		workoutRepo repository.WorkoutRepository
		exportRepo  repository.ExportRepository
		health      api.HealthCheck
	)
	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Println("WARN: Using in-memory repositories; data is lost on restart.")
		userRepo = memory.NewUserRepository()
		workoutRepo = memory.NewWorkoutRepository()
		exportRepo = memory.NewExportRepository()
	default:
		dbClient, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Println("Database connection established.")

		log.Println("Ensuring database indexes...")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongo.EnsureIndexes(ctx, appDB)
			log.Println("Index creation process completed.")
		}()

		userRepo = mongo.NewMongoUserRepository(appDB)
		workoutRepo = mongo.NewMongoWorkoutRepository(appDB)
		exportRepo = mongo.NewMongoExportRepository(appDB)
		health = func(ctx context.Context) error { return mongo.Ping(ctx, dbClient) }
	}

	// --- Storage ---
	var fileStorage storage.FileStorage
	switch cfg.S3.Driver {
	case config.DriverMemory:
		log.Println("WARN: Using in-memory sheet storage.")
		fileStorage = storage.NewMemoryStorage()
	default:
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	}

	// --- Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	workoutService, err := service.NewWorkoutService(workoutRepo, cfg.Interpreter.CacheSize)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize workout service: %v", err)
	}
	generatorService := service.NewGeneratorService(workoutService)
	exportService := service.NewExportService(workoutService, exportRepo, fileStorage, cfg.S3.URLExpiry)

	// --- Gin Engine ---
	if cfg.Server.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	api.SetupRoutes(router, cfg.JWT.Secret, cfg.Server.MaxBodyBytes, health, api.Services{
		Auth:      authService,
		Workouts:  workoutService,
		Generator: generatorService,
		Exports:   exportService,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
