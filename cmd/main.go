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

	"github.com/joho/godotenv"

	"github.com/yungbote/placement-backend/internal/analysis"
	"github.com/yungbote/placement-backend/internal/cache"
	"github.com/yungbote/placement-backend/internal/catalog"
	"github.com/yungbote/placement-backend/internal/data/db"
	analysisrepo "github.com/yungbote/placement-backend/internal/data/repos/analysis"
	studentrepo "github.com/yungbote/placement-backend/internal/data/repos/student"
	"github.com/yungbote/placement-backend/internal/http/handlers"
	"github.com/yungbote/placement-backend/internal/http/middleware"
	"github.com/yungbote/placement-backend/internal/platform/envutil"
	"github.com/yungbote/placement-backend/internal/platform/logger"
	"github.com/yungbote/placement-backend/internal/platform/openai"
	"github.com/yungbote/placement-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	logMode := envutil.Get("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	jwtSecretKey := envutil.Get("JWT_SECRET_KEY", "")
	if jwtSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Redis cache; optional, everything degrades to straight DB reads.
	cacheService, err := cache.New(log)
	if err != nil {
		if errors.Is(err, cache.ErrNotConfigured) {
			log.Info("Redis not configured, running without cache")
		} else {
			log.Warn("Redis init failed, running without cache", "error", err)
		}
		cacheService = nil
	}

	// Repos
	log.Info("Setting up repos...")
	students := studentrepo.NewRepo(thePG, log)
	requirements := analysisrepo.NewRequirementRepo(thePG, log)
	gapAnalyses := analysisrepo.NewGapAnalysisRepo(thePG, log)
	learningPaths := analysisrepo.NewLearningPathRepo(thePG, log)

	// Text generation; absence of a key is a valid degraded state.
	aiClient, err := openai.NewClient(log)
	if err != nil {
		if errors.Is(err, openai.ErrNotConfigured) {
			log.Warn("OpenAI not configured, analyses will use deterministic fallbacks")
		} else {
			log.Warn("OpenAI init failed, analyses will use deterministic fallbacks", "error", err)
		}
		aiClient = nil
	}

	// Services
	log.Info("Setting up services...")
	requirementProvider := catalog.NewRequirementProvider(requirements, log)
	resourceProvider := catalog.NewResourceProvider()
	classifier := analysis.NewClassifier(aiClient, log)
	generator := analysis.NewPathGenerator(learningPaths, resourceProvider, log)
	analysisService := analysis.NewService(
		thePG,
		log,
		students,
		gapAnalyses,
		learningPaths,
		requirementProvider,
		classifier,
		generator,
		cacheService,
	)
	tracker := analysis.NewProgressTracker(learningPaths, log, cacheService)

	// HTTP
	router := server.NewRouter(server.RouterConfig{
		Log:             log,
		AuthMiddleware:  middleware.NewAuthMiddleware(log, jwtSecretKey),
		HealthHandler:   handlers.NewHealthHandler(),
		AnalysisHandler: handlers.NewAnalysisHandler(log, analysisService, tracker),
	})

	addr := ":" + envutil.Get("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Shutdown failed", "error", err)
	}
	if cacheService != nil {
		_ = cacheService.Close()
	}
}
