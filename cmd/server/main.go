package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"healieve/health-app/internal/airquality"
	"healieve/health-app/internal/api"
	"healieve/health-app/internal/assets"
	"healieve/health-app/internal/chat"
	"healieve/health-app/internal/config"
	"healieve/health-app/internal/logger"
	"healieve/health-app/internal/render"
	"healieve/health-app/internal/report"
	"healieve/health-app/internal/repository/mongo"
	"healieve/health-app/internal/service"
	"healieve/health-app/internal/storage"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		os.Stderr.WriteString("FATAL: could not load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		os.Stderr.WriteString("FATAL: could not initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting health app server", "address", cfg.Server.Address)

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatal("could not connect to MongoDB", "error", err)
	}
	defer func() {
		log.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Error("failed to disconnect MongoDB", "error", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info("database connection established", "db", cfg.Database.Name)

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureUserIndexes(ctx, appDB.Collection("users")); err != nil {
			log.Error("failed to ensure user indexes", "error", err)
		}
		if err := mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises")); err != nil {
			log.Error("failed to ensure exercise indexes", "error", err)
		}
	}()

	// --- Initialize Storage ---
	// The object store is optional: without a bucket, s3:// asset refs are
	// simply unresolvable and render as omitted images.
	var objectStore storage.ObjectStore
	if cfg.S3.BucketName != "" {
		objectStore, err = storage.NewS3Store(cfg.S3, log)
		if err != nil {
			log.Fatal("failed to initialize S3 storage", "error", err)
		}
		log.Info("object storage initialized", "bucket", cfg.S3.BucketName)
	} else {
		log.Warn("no S3 bucket configured, media uploads are disabled and s3:// asset references will be skipped")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)

	// --- Initialize Report Pipeline ---
	resolver := assets.NewResolver(cfg.Assets.Root, objectStore, log)
	builder := report.NewBuilder(resolver, cfg.Assets)
	renderer := render.NewChromeRenderer(cfg.Renderer, log)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	exerciseService := service.NewExerciseService(exerciseRepo, objectStore)
	reportService := service.NewReportService(builder, renderer, log)
	chatService := service.NewChatService(chat.NewClient(cfg.Gemini), log)
	advisoryService := service.NewAdvisoryService(airquality.NewClient(cfg.Weather), log)

	// --- Initialize Gin Engine ---
	if cfg.Log.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, authService, exerciseService, reportService, chatService, advisoryService)

	// --- Start HTTP Server ---
	// Report rendering drives a headless browser, so the write timeout has
	// to cover a full render, not just a JSON reply.
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Renderer.PageTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server listening", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen and serve failed", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("server forced to shutdown", "error", err)
	}

	log.Info("server exiting")
}
