package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fitlog/internal/auth"
	"fitlog/internal/config"
	apphttp "fitlog/internal/http"
	"fitlog/internal/repository/sqlite"
	"fitlog/internal/service"
)

const sessionTTL = 24 * time.Hour

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Session.Secret) == "" {
		logger.Fatalf("session secret is required (set FITLOG_SESSION_SECRET)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := workoutRepo.Init(ctx); err != nil {
		logger.Fatalf("init workout repository: %v", err)
	}

	sessions := auth.NewSessions(cfg.Session.Secret, sessionTTL)
	authService := service.NewAuthService(userRepo, logger)
	workoutService := service.NewWorkoutService(workoutRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), apphttp.RequestLogger(logger))
	handler := apphttp.NewHandler(
		authService,
		workoutService,
		sessions,
		cfg.Static.Dir,
		cfg.Static.Index,
	)
	handler.RegisterRoutes(router, cfg.CORS.Origins)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
