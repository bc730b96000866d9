package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/reporadar/reporadar/internal/analysis"
	"github.com/reporadar/reporadar/internal/api"
	"github.com/reporadar/reporadar/internal/config"
	"github.com/reporadar/reporadar/internal/github"
)

// @title RepoRadar API
// @version 1.0
// @description API for GitHub repository dashboards and originality analysis
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.GitHub.Token == "" {
		logger.Warn("GITHUB_TOKEN not set, GitHub requests are unauthenticated and limited to 60 per hour")
	}

	// Initialize services
	githubClient := github.NewGitHubClient(
		cfg.GitHub.Token,
		logger,
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithTimeout(cfg.GitHub.Timeout.ToDuration()),
	)
	aggregator := github.NewAggregator(githubClient, &cfg.Fetch, logger)
	searcher := github.NewSearcher(githubClient, &cfg.Search, logger)
	analysisClient := analysis.NewClient(&cfg.Backend, logger)

	apiHandler := api.NewHandler(aggregator, analysisClient, searcher, githubClient, logger)

	gin.SetMode(gin.ReleaseMode)
	router := api.SetupRouter(apiHandler, logger)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(router)

	// The backend may take up to its timeout to answer an analysis request.
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Backend.Timeout.ToDuration() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":    cfg.Port,
			"backend": cfg.Backend.URL,
			"github":  cfg.GitHub.APIBaseURL,
		}).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}
