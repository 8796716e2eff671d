package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"taskvault.com/taskvault/internal/auth"
	config "taskvault.com/taskvault/internal/configs"
	httpapi "taskvault.com/taskvault/internal/http"
	middleware "taskvault.com/taskvault/internal/http/middlewares"
	"taskvault.com/taskvault/internal/logger"
	repository "taskvault.com/taskvault/internal/repositories"
	"taskvault.com/taskvault/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logrusLogger := logger.Init("taskvault")

		database := config.New(cfg.DatabaseDSN)
		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

		authService := services.NewAuthService(userRepo, tokens)
		taskService := services.NewTaskService(taskRepo, userRepo)

		e := echo.New()
		e.HideBanner = true
		e.HTTPErrorHandler = httpapi.ErrorHandler(logrusLogger)
		e.Use(middleware.RequestLogger(logrusLogger))

		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			e.Use(middleware.RedisRateLimiter(redisClient, cfg.RateLimit, time.Minute))
		} else {
			e.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))
		}

		handler := httpapi.NewHandler(authService, taskService, logrusLogger)
		httpapi.Register(e, handler, tokens)

		go func() {
			logrusLogger.WithField("addr", cfg.AppURL).Info("HTTP server listening")
			if err := e.Start(cfg.AppURL); err != nil {
				logrusLogger.WithError(err).Info("server stopped")
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		logrusLogger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
