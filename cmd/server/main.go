package main

import (
	"alcyxob/fitness-tracker/internal/api"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/repository/postgres"
	"alcyxob/fitness-tracker/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.Info("Starting Fitness Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.WithError(err).Fatal("Could not load config")
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT secret is not configured (set JWT_SECRET or jwt.secret)")
	}
	logger.Info("Configuration loaded.")

	// --- Database Connection ---
	db, err := postgres.ConnectDB(cfg.Database.DSN)
	if err != nil {
		logger.WithError(err).Fatal("Could not connect to PostgreSQL")
	}
	logger.Info("Database connection established.")

	// --- Schema Migration ---
	if err := postgres.Migrate(db); err != nil {
		logger.WithError(err).Fatal("Could not run database migrations")
	}
	logger.Info("Database schema up to date.")

	// --- Initialize Repositories ---
	userRepo := postgres.NewPostgresUserRepository(db)
	groupRepo := postgres.NewPostgresGroupRepository(db)
	workoutRepo := postgres.NewPostgresWorkoutRepository(db)
	planRepo := postgres.NewPostgresWorkoutPlanRepository(db)
	progressRepo := postgres.NewPostgresProgressRepository(db)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	groupService := service.NewGroupService(groupRepo)
	workoutService := service.NewWorkoutService(workoutRepo)
	planService := service.NewWorkoutPlanService(planRepo, workoutRepo, groupRepo)
	progressService := service.NewProgressService(progressRepo, workoutRepo, groupRepo)

	// --- Router ---
	router := api.SetupRouter(api.RouterDeps{
		Logger:          logger,
		CookieName:      cfg.JWT.CookieName,
		AuthService:     authService,
		GroupService:    groupService,
		WorkoutService:  workoutService,
		PlanService:     planService,
		ProgressService: progressService,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.WithField("address", cfg.Server.Address).Info("Server starting")

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Info("Server exiting.")
}
