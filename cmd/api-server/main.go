package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"leaguehub/database"
	"leaguehub/internal/config"
	"leaguehub/internal/http-api/handler"
	"leaguehub/internal/http-api/middleware"
	"leaguehub/internal/http-api/repository"
	"leaguehub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("could not get database instance: %v", err)
	}
	defer sqlDB.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	leagueRepo := repository.NewLeagueRepository(db)
	leagueVoteRepo := repository.NewLeagueVoteRepository(db)
	comparisonRepo := repository.NewComparisonVoteRepository(db)
	threadRepo := repository.NewThreadRepository(db)
	replyRepo := repository.NewReplyRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	voteService := service.NewVoteService(leagueRepo, leagueVoteRepo)
	comparisonService := service.NewComparisonService(comparisonRepo)
	forumService := service.NewForumService(threadRepo, replyRepo)

	// Heal any reply_count drift left over from partial failures, then
	// keep doing so periodically.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reconcileReplyCounts(forumService, logger)
	if cfg.ReconcileInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.ReconcileInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					reconcileReplyCounts(forumService, logger)
				}
			}
		}()
	}

	// HTTP
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	authRequired := middleware.AuthRequired(authService)
	adminRequired := middleware.AdminRequired()

	api := r.Group("/api")
	handler.NewAuthHandler(authService, logger).RegisterRoutes(api.Group("/auth"), authRequired)
	handler.NewLeagueHandler(voteService, logger).RegisterRoutes(api.Group("/leagues"), authRequired)
	handler.NewForumHandler(forumService, logger).RegisterRoutes(api.Group("/forum"), authRequired, adminRequired)
	handler.NewComparisonHandler(comparisonService, logger).RegisterRoutes(api.Group("/comparison"), authRequired)

	// Static frontend; anything that is not an API route falls through
	// to the public directory.
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.PublicDir))))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("Server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}

func reconcileReplyCounts(forumService service.ForumService, logger *slog.Logger) {
	healed, err := forumService.ReconcileReplyCounts()
	if err != nil {
		logger.Error("reply count reconciliation failed", "error", err)
		return
	}
	if healed > 0 {
		logger.Warn("healed drifted reply counts", "threads", healed)
	}
}
